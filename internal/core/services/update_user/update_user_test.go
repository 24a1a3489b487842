package updateuser

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
		{
			ID:       USER_ID,
			Name:     "Jane",
			Email:    c.NewEmail("jane@test.com"),
			Role:     user.RoleUser,
			About:    c.NewOptional("old about", true),
			IsActive: true,
		},
	}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo)
}

func TestOnlyFlaggedFieldsAreUpdated(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{
			UserID:       USER_ID,
			DoNameUpdate: true,
			Name:         "Janet",
			DoAgeUpdate:  true,
			Age:          c.NewOptional(25, true),
		},
	)

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Janet", result.User.Name)
	require.Equal(t, c.NewOptional(25, true), result.User.Age)
	require.Equal(t, c.NewEmail("jane@test.com"), result.User.Email)
	require.Equal(t, c.NewOptional("old about", true), result.User.About)
}

func TestFieldCanBeCleared(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(
		context.Background(),
		Input{UserID: USER_ID, DoAboutUpdate: true, About: c.Optional[string]{}},
	)

	// Verify ---
	require.NoError(t, err)
	require.False(t, result.User.About.IsPresent)
}

func TestEmptyPatchChangesNothing(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: USER_ID})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Jane", result.User.Name)
	require.Equal(t, c.NewEmail("jane@test.com"), result.User.Email)
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{UserID: USER_ID + 1, DoNameUpdate: true, Name: "Janet"},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
