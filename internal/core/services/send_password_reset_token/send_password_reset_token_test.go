package sendpasswordresettoken

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
	EMAIL       = "jane@test.com"
	RESET_TOKEN = "test-reset-token"
)

var NOW = time.Date(2023, 3, 15, 12, 30, 0, 0, time.UTC)

const VALID_DURATION = 10 * time.Minute

type suite struct {
	log            *logging.FakeLogger
	userRepo       *user.FakeUserRepository
	tokenGenerator *user.FakePasswordResetTokenGenerator
	tokenSender    *user.FakePasswordResetTokenSender
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{ID: USER_ID, Email: c.NewEmail(EMAIL), Role: user.RoleUser, IsActive: true},
	}
	return &suite{
		log:            logging.NewFakeLogger(),
		userRepo:       userRepo,
		tokenGenerator: user.NewFakePasswordResetTokenGenerator(RESET_TOKEN),
		tokenSender:    user.NewFakePasswordResetTokenSender(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.userRepo,
		s.tokenGenerator,
		s.tokenSender,
		VALID_DURATION,
		func() time.Time { return NOW },
	)
}

func TestTokenSentAndHashPersisted(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.PasswordResetToken(RESET_TOKEN), result.Token)

	require.Equal(t, 1, suite.tokenSender.SentCount())
	require.Equal(t, user.PasswordResetToken(RESET_TOKEN), suite.tokenSender.Sent[0])
	require.Equal(t, user.ID(USER_ID), suite.tokenSender.SentTo[0].ID)

	u := suite.userRepo.Users[0]
	require.True(t, u.PasswordResetTokenHash.IsPresent)
	require.Equal(t, user.HashResetToken(RESET_TOKEN), u.PasswordResetTokenHash.Value)
	require.True(t, u.PasswordResetExpiresAt.IsPresent)
	require.Equal(t, NOW.Add(VALID_DURATION), u.PasswordResetExpiresAt.Value)
}

func TestNewTokenReplacesPreviousOne(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.userRepo.Users[0].PasswordResetTokenHash = c.NewOptional(
		user.HashResetToken("previous-token"),
		true,
	)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.NoError(t, err)
	require.Equal(
		t,
		user.HashResetToken(RESET_TOKEN),
		suite.userRepo.Users[0].PasswordResetTokenHash.Value,
	)
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail("unknown@test.com")})

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
	require.Equal(t, 0, suite.tokenSender.SentCount())
}

func TestTokenStateRolledBackWhenSendingFails(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.tokenSender.ReturnError = true
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	// Verify ---
	require.ErrorIs(t, err, user.ErrResetTokenNotSent)
	u := suite.userRepo.Users[0]
	require.False(t, u.PasswordResetTokenHash.IsPresent)
	require.False(t, u.PasswordResetExpiresAt.IsPresent)
}
