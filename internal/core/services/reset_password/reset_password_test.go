package resetpassword

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

const (
	USER_ID     = 42
	RESET_TOKEN = "test-reset-token"
)

var NOW = time.Date(2023, 3, 15, 12, 30, 0, 0, time.UTC)

type suite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	hasher      *user.FakePasswordHasher
	tokenIssuer *user.FakeAccessTokenIssuer
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{
			ID:                     USER_ID,
			Email:                  c.NewEmail("jane@test.com"),
			Role:                   user.RoleUser,
			IsActive:               true,
			PasswordResetTokenHash: c.NewOptional(user.HashResetToken(RESET_TOKEN), true),
			PasswordResetExpiresAt: c.NewOptional(NOW.Add(5*time.Minute), true),
		},
	}
	return &suite{
		log:         logging.NewFakeLogger(),
		userRepo:    userRepo,
		hasher:      user.NewFakePasswordHasher(),
		tokenIssuer: user.NewFakeAccessTokenIssuer(func() time.Time { return NOW }),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, s.tokenIssuer, func() time.Time { return NOW })
}

func TestSuccessfulPasswordReset(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: "new-password"},
	)

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), result.User.ID)

	claims, err := suite.tokenIssuer.VerifyToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), claims.UserID)

	u := suite.userRepo.Users[0]
	require.True(t, suite.hasher.ValidatePassword("new-password", u.PasswordHash))
	require.False(t, u.PasswordResetTokenHash.IsPresent)
	require.False(t, u.PasswordResetExpiresAt.IsPresent)
	require.Equal(t, c.NewOptional(NOW, true), u.PasswordChangedAt)
}

func TestTokenCanNotBeReused(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	_, err := service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: "new-password"},
	)
	require.NoError(t, err)

	// Exercise ---
	_, err = service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: "another-password"},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetToken)
}

func TestInvalidToken(t *testing.T) {
	cases := []struct {
		id    string
		token string
	}{
		{id: "unknown token", token: "unknown-token"},
		{id: "empty token", token: ""},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(
				context.Background(),
				Input{Token: user.PasswordResetToken(testcase.token), NewPassword: "new-password"},
			)

			// Verify ---
			require.ErrorIs(t, err, user.ErrInvalidPasswordResetToken)
		})
	}
}

func TestExpiredToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.Users[0].PasswordResetExpiresAt = c.NewOptional(NOW.Add(-time.Second), true)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Token: RESET_TOKEN, NewPassword: "new-password"},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetToken)
}
