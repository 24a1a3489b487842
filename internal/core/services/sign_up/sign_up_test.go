package signup

import (
	"context"
	c "roomie/internal/core/domain/common"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2023, 3, 15, 12, 30, 0, 0, time.UTC)

type suite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	hasher      *user.FakePasswordHasher
	tokenIssuer *user.FakeAccessTokenIssuer
}

func setupSuite() *suite {
	return &suite{
		log:         logging.NewFakeLogger(),
		userRepo:    user.NewFakeUserRepository(),
		hasher:      user.NewFakePasswordHasher(),
		tokenIssuer: user.NewFakeAccessTokenIssuer(func() time.Time { return NOW }),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, s.tokenIssuer, func() time.Time { return NOW })
}

func TestSuccessfulSignUp(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{
			Name:     "Jane",
			Email:    c.NewEmail("jane@test.com"),
			Password: user.RawPassword("password-1"),
			Age:      c.NewOptional(23, true),
			College:  c.NewOptional("Test College", true),
		},
	)

	// Verify ---
	require.NoError(t, err)
	require.NotEqual(t, user.AccessToken(""), result.Token)

	u := result.User
	require.Equal(t, "Jane", u.Name)
	require.Equal(t, c.Email("jane@test.com"), u.Email)
	require.Equal(t, user.RoleUser, u.Role)
	require.True(t, u.IsActive)
	require.Equal(t, NOW, u.CreatedAt)
	require.Equal(t, c.NewOptional(23, true), u.Age)
	require.Equal(t, c.NewOptional("Test College", true), u.College)
	require.False(t, u.PasswordResetTokenHash.IsPresent)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("password-1"), u.PasswordHash))

	claims, err := suite.tokenIssuer.VerifyToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestNewUserGetsDefaultRole(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{
			Name:     "Mallory",
			Email:    c.NewEmail("mallory@test.com"),
			Password: user.RawPassword("password-1"),
		},
	)

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.RoleUser, result.User.Role)
}

func TestEmailAlreadyExists(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.Users = []user.User{
		{ID: 1, Email: c.NewEmail("jane@test.com"), IsActive: true},
	}
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{
			Name:     "Jane",
			Email:    c.NewEmail("jane@test.com"),
			Password: user.RawPassword("password-1"),
		},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestTokenIssuingFails(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.tokenIssuer.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{
			Name:     "Jane",
			Email:    c.NewEmail("jane@test.com"),
			Password: user.RawPassword("password-1"),
		},
	)

	// Verify ---
	require.Error(t, err)
}
