package passwordresettoken

import (
	"crypto/rand"
	"encoding/hex"
	"roomie/internal/core/domain/user"
)

const TOKEN_BYTES = 32

// Generator produces crypto-random reset tokens. The token itself is opaque;
// only its SHA-256 hash is ever stored.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.PasswordResetToken {
	b := make([]byte, TOKEN_BYTES)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return user.PasswordResetToken(hex.EncodeToString(b))
}
