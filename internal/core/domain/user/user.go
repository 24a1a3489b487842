package user

import (
	"fmt"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID                     ID
	Name                   string
	Email                  c.Email
	PasswordHash           PasswordHash
	Role                   Role
	ProfilePicture         c.Optional[string]
	About                  c.Optional[string]
	Age                    c.Optional[int]
	College                c.Optional[string]
	IsActive               bool
	CreatedAt              time.Time
	PasswordChangedAt      c.Optional[time.Time]
	PasswordResetTokenHash c.Optional[ResetTokenHash]
	PasswordResetExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if !u.Role.IsValid() {
		return e.NewInvalidStateError(fmt.Sprintf("invalid role %q for user %d", u.Role, u.ID))
	}
	return nil
}

// PasswordChangedAfter reports whether the password was changed after the
// given moment. Comparison is second-granular so that a token issued in the
// same second as the change remains valid.
func (u *User) PasswordChangedAfter(at time.Time) bool {
	if !u.PasswordChangedAt.IsPresent {
		return false
	}
	return at.Unix() < u.PasswordChangedAt.Value.Unix()
}
