package auth

import (
	"context"
	"errors"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type InputWithUser interface {
	Input
	AuthenticatedUser() user.User
}

type service[T Input, S any] struct {
	tokenIssuer    user.AccessTokenIssuer
	userRepository user.UserRepository
	inner          services.Service[T, S]
}

// WithAuthentication verifies the bearer token placed in the context by the
// HTTP layer, resolves the user it was issued to and passes it to the inner
// service. Tokens issued before the user's last password change are rejected.
func WithAuthentication[T Input, S any](
	tokenIssuer user.AccessTokenIssuer,
	userRepository user.UserRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		tokenIssuer:    tokenIssuer,
		userRepository: userRepository,
		inner:          inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.AccessToken)
	if !ok {
		return result, user.ErrInvalidAccessToken
	}
	claims, err := s.tokenIssuer.VerifyToken(authToken)
	if err != nil {
		return result, user.ErrInvalidAccessToken
	}
	u, err := s.userRepository.GetByID(ctx, claims.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidAccessToken
	}
	if err != nil {
		return result, err
	}
	if u.PasswordChangedAfter(claims.IssuedAt) {
		return result, user.ErrInvalidAccessToken
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}

type roleRestrictedService[T InputWithUser, S any] struct {
	allowedRoles []user.Role
	inner        services.Service[T, S]
}

// WithRoleRestriction guards the inner service with an allowed-role set. It
// must sit inside WithAuthentication so the input already carries the
// resolved user.
func WithRoleRestriction[T InputWithUser, S any](
	allowedRoles []user.Role,
	inner services.Service[T, S],
) services.Service[T, S] {
	if len(allowedRoles) == 0 {
		panic(e.NewInvalidStateError("allowedRoles must not be empty"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &roleRestrictedService[T, S]{allowedRoles: allowedRoles, inner: inner}
}

func (s *roleRestrictedService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	role := input.AuthenticatedUser().Role
	for _, allowed := range s.allowedRoles {
		if role == allowed {
			return s.inner.Run(ctx, input)
		}
	}
	return result, user.ErrPermissionDenied
}
