package login

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
	USER_ID  = 42
	EMAIL    = "jane@test.com"
	PASSWORD = "correct-password"
)

var NOW = time.Date(2023, 3, 15, 12, 30, 0, 0, time.UTC)

type suite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	hasher      *user.FakePasswordHasher
	tokenIssuer *user.FakeAccessTokenIssuer
}

func setupSuite() *suite {
	hasher := user.NewFakePasswordHasher()
	passwordHash, err := hasher.HashPassword(PASSWORD)
	if err != nil {
		panic(err)
	}
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{
			ID:           USER_ID,
			Email:        c.NewEmail(EMAIL),
			PasswordHash: passwordHash,
			Role:         user.RoleUser,
			IsActive:     true,
		},
	}
	return &suite{
		log:         logging.NewFakeLogger(),
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: user.NewFakeAccessTokenIssuer(func() time.Time { return NOW }),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, s.tokenIssuer)
}

func TestSuccessfulLogIn(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), result.User.ID)

	claims, err := suite.tokenIssuer.VerifyToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), claims.UserID)
}

func TestInvalidCredentials(t *testing.T) {
	cases := []struct {
		id       string
		email    string
		password string
	}{
		{id: "wrong password", email: EMAIL, password: "wrong-password"},
		{id: "unknown email", email: "unknown@test.com", password: PASSWORD},
		{id: "both wrong", email: "unknown@test.com", password: "wrong-password"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(
				context.Background(),
				Input{Email: c.NewEmail(testcase.email), Password: user.RawPassword(testcase.password)},
			)

			// Verify ---
			require.ErrorIs(t, err, user.ErrInvalidCredentials)
		})
	}
}

func TestDeactivatedUserCanNotLogIn(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.Users[0].IsActive = false
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD)},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}
