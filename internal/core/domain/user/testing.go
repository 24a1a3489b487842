package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "roomie/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePasswordResetTokenGenerator struct {
	Token PasswordResetToken
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GenerateResetToken() PasswordResetToken {
	return g.Token
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	user User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, user)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}

// FakeAccessTokenIssuer issues tokens of the form "token-<userID>-<unix>" and
// trusts every token it issued.
type FakeAccessTokenIssuer struct {
	Now         func() time.Time
	ReturnError bool
	issued      map[AccessToken]AccessTokenClaims
	lock        sync.Mutex
}

func NewFakeAccessTokenIssuer(now func() time.Time) *FakeAccessTokenIssuer {
	return &FakeAccessTokenIssuer{
		Now:    now,
		issued: make(map[AccessToken]AccessTokenClaims),
	}
}

func (g *FakeAccessTokenIssuer) IssueToken(userID ID) (AccessToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not issue access token for user %d", userID)
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	issuedAt := g.Now()
	token := AccessToken(fmt.Sprintf("token-%d-%d-%d", userID, issuedAt.Unix(), len(g.issued)))
	g.issued[token] = AccessTokenClaims{UserID: userID, IssuedAt: issuedAt}
	return token, nil
}

func (g *FakeAccessTokenIssuer) VerifyToken(token AccessToken) (AccessTokenClaims, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	claims, ok := g.issued[token]
	if !ok {
		return AccessTokenClaims{}, ErrInvalidAccessToken
	}
	return claims, nil
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:             maxID + 1,
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   input.PasswordHash,
		Role:           input.Role,
		ProfilePicture: input.ProfilePicture,
		About:          input.About,
		Age:            input.Age,
		College:        input.College,
		IsActive:       true,
		CreatedAt:      input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id && u.IsActive {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByResetTokenHash(
	ctx context.Context,
	hash ResetTokenHash,
	now time.Time,
) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if !u.IsActive || !u.PasswordResetTokenHash.IsPresent {
			continue
		}
		if u.PasswordResetTokenHash.Value != hash {
			continue
		}
		if u.PasswordResetExpiresAt.IsPresent && u.PasswordResetExpiresAt.Value.After(now) {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, 0, len(r.Users))
	for _, u := range r.Users {
		if u.IsActive {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID != input.ID || !u.IsActive {
			continue
		}
		if input.DoNameUpdate {
			r.Users[ix].Name = input.Name
		}
		if input.DoEmailUpdate {
			r.Users[ix].Email = input.Email
		}
		if input.DoProfilePictureUpdate {
			r.Users[ix].ProfilePicture = input.ProfilePicture
		}
		if input.DoAboutUpdate {
			r.Users[ix].About = input.About
		}
		if input.DoAgeUpdate {
			r.Users[ix].Age = input.Age
		}
		if input.DoCollegeUpdate {
			r.Users[ix].College = input.College
		}
		return r.Users[ix], nil
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, input SetPasswordInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.UserID {
			r.Users[ix].PasswordHash = input.PasswordHash
			r.Users[ix].PasswordChangedAt = c.NewOptional(input.ChangedAt, true)
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(ResetTokenHash(""), false)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	input SetPasswordResetTokenInput,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password reset token for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.UserID {
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(input.TokenHash, true)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(input.ExpiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ClearPasswordResetToken(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(ResetTokenHash(""), false)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(time.Time{}, false)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Deactivate(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id && u.IsActive {
			r.Users[ix].IsActive = false
			return nil
		}
	}
	return ErrUserDoesNotExist
}
