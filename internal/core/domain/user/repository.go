package user

import (
	"context"
	c "roomie/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Name           string
	Email          c.Email
	PasswordHash   PasswordHash
	Role           Role
	ProfilePicture c.Optional[string]
	About          c.Optional[string]
	Age            c.Optional[int]
	College        c.Optional[string]
	CreatedAt      time.Time
}

type UpdateUserInput struct {
	ID                     ID
	DoNameUpdate           bool
	Name                   string
	DoEmailUpdate          bool
	Email                  c.Email
	DoProfilePictureUpdate bool
	ProfilePicture         c.Optional[string]
	DoAboutUpdate          bool
	About                  c.Optional[string]
	DoAgeUpdate            bool
	Age                    c.Optional[int]
	DoCollegeUpdate        bool
	College                c.Optional[string]
}

type SetPasswordInput struct {
	UserID       ID
	PasswordHash PasswordHash
	ChangedAt    time.Time
}

type SetPasswordResetTokenInput struct {
	UserID    ID
	TokenHash ResetTokenHash
	ExpiresAt time.Time
}

// UserRepository reads return only active users; deactivated records stay in
// the store but behave as if they do not exist.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// GetByResetTokenHash matches only a token whose expiry is after now.
	GetByResetTokenHash(ctx context.Context, hash ResetTokenHash, now time.Time) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	// SetPassword also records the change timestamp and clears any pending
	// reset token.
	SetPassword(ctx context.Context, input SetPasswordInput) error
	// SetPasswordResetToken replaces any previously issued token.
	SetPasswordResetToken(ctx context.Context, input SetPasswordResetTokenInput) error
	ClearPasswordResetToken(ctx context.Context, id ID) error
	Deactivate(ctx context.Context, id ID) error
}
