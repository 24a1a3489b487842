package deactivateuser

import (
	"context"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"roomie/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

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
	// Soft delete only; the record stays in the store.
	if err := s.userRepository.Deactivate(ctx, input.User.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User account has been deactivated.",
		logging.Entry("userID", input.User.ID),
	)
	return result, nil
}
