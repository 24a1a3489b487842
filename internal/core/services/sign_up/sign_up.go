package signup

import (
	"context"
	"errors"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/logging"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"time"
)

type Input struct {
	Name           string
	Email          c.Email
	Password       user.RawPassword
	ProfilePicture c.Optional[string]
	About          c.Optional[string]
	Age            c.Optional[int]
	College        c.Optional[string]
}

type Result struct {
	User  user.User
	Token user.AccessToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	tokenIssuer    user.AccessTokenIssuer
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	tokenIssuer user.AccessTokenIssuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	// Credential-management fields are never caller-settable; the new record
	// always starts with the default role and no reset state.
	u, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		Role:           user.RoleUser,
		ProfilePicture: input.ProfilePicture,
		About:          input.About,
		Age:            input.Age,
		College:        input.College,
		CreatedAt:      s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.tokenIssuer.IssueToken(u.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue access token for new user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New user has signed up.",
		logging.Entry("userID", u.ID),
	)
	return Result{User: u, Token: token}, nil
}
