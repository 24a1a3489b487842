package getuser

import (
	"context"
	"errors"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/listing"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"roomie/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
	User   user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User     user.User
	Listings []listing.Listing
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	listingRepository listing.Repository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	listingRepository listing.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if listingRepository == nil {
		panic(e.NewNilArgumentError("listingRepository"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		listingRepository: listingRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByID(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	listings, err := s.listingRepository.ListByOwner(ctx, u.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	result.User = u
	result.Listings = listings
	return result, nil
}
