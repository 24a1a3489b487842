package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// PasswordResetToken is the clear-text value given to the user. Only its
// hash is ever persisted.
type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

type ResetTokenHash string

func HashResetToken(token PasswordResetToken) ResetTokenHash {
	sum := sha256.Sum256([]byte(token))
	return ResetTokenHash(hex.EncodeToString(sum[:]))
}

type PasswordResetTokenGenerator interface {
	GenerateResetToken() PasswordResetToken
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
