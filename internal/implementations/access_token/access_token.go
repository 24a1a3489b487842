package accesstoken

import (
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HMAC issues and verifies HS256-signed JWTs carrying the user ID as the
// subject claim.
type HMAC struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewHMAC(secretKey string, validDuration time.Duration, now func() time.Time) *HMAC {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &HMAC{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (h *HMAC) IssueToken(userID user.ID) (user.AccessToken, error) {
	now := h.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.validDuration)),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secretKey)
	if err != nil {
		return "", err
	}
	return user.AccessToken(signed), nil
}

func (h *HMAC) VerifyToken(token user.AccessToken) (claims user.AccessTokenClaims, err error) {
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return h.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(h.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil || !parsed.Valid {
		return claims, user.ErrInvalidAccessToken
	}
	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.IssuedAt == nil {
		return claims, user.ErrInvalidAccessToken
	}
	rawUserID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return claims, user.ErrInvalidAccessToken
	}
	claims.UserID = user.ID(rawUserID)
	claims.IssuedAt = registered.IssuedAt.Time
	return claims, nil
}
