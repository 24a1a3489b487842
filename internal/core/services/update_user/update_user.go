package updateuser

import (
	"context"
	"errors"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"roomie/internal/core/services/auth"
)

// Input carries only self-service profile fields. Credential fields are
// rejected upstream and have no representation here.
type Input struct {
	UserID                 user.ID
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

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{log: log, userRepository: userRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                     input.UserID,
			DoNameUpdate:           input.DoNameUpdate,
			Name:                   input.Name,
			DoEmailUpdate:          input.DoEmailUpdate,
			Email:                  input.Email,
			DoProfilePictureUpdate: input.DoProfilePictureUpdate,
			ProfilePicture:         input.ProfilePicture,
			DoAboutUpdate:          input.DoAboutUpdate,
			About:                  input.About,
			DoAgeUpdate:            input.DoAgeUpdate,
			Age:                    input.Age,
			DoCollegeUpdate:        input.DoCollegeUpdate,
			College:                input.College,
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User profile successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
