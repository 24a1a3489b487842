package deactivateuser

import (
	"context"
	c "roomie/internal/core/domain/common"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

const USER_ID = 42

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{
		{ID: USER_ID, Email: c.NewEmail("jane@test.com"), Role: user.RoleUser, IsActive: true},
	}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo)
}

func TestUserIsDeactivated(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	input := Input{}
	input.User = suite.userRepo.Users[0]
	_, err := service.Run(context.Background(), input)

	// Verify ---
	require.NoError(t, err)
	require.False(t, suite.userRepo.Users[0].IsActive)
}

func TestDeactivatedUserIsInvisibleToReads(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	input := Input{}
	input.User = suite.userRepo.Users[0]
	_, err := service.Run(context.Background(), input)
	require.NoError(t, err)

	// Exercise ---
	_, errByID := suite.userRepo.GetByID(context.Background(), USER_ID)
	_, errByEmail := suite.userRepo.GetByEmail(context.Background(), c.NewEmail("jane@test.com"))
	users, errList := suite.userRepo.List(context.Background())

	// Verify ---
	require.ErrorIs(t, errByID, user.ErrUserDoesNotExist)
	require.ErrorIs(t, errByEmail, user.ErrUserDoesNotExist)
	require.NoError(t, errList)
	require.Empty(t, users)
}
