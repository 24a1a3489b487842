package getcurrentuser

import (
	"context"
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

type Result struct {
	User user.User
}

type service struct{}

// New returns the service behind GET /me. The authentication decorator does
// all the work; this only hands the resolved user back.
func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{User: input.User}, nil
}
