package user

import "time"

// AccessToken is a signed, self-contained bearer credential.
type AccessToken string

type AccessTokenClaims struct {
	UserID   ID
	IssuedAt time.Time
}

type AccessTokenIssuer interface {
	IssueToken(userID ID) (AccessToken, error)
	// VerifyToken checks the signature and expiry and returns the claims;
	// it returns ErrInvalidAccessToken for any token it cannot trust.
	VerifyToken(token AccessToken) (AccessTokenClaims, error)
}
