package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidAccessToken        = errors.New("invalid access token")
	ErrPermissionDenied          = errors.New("permission denied")
	ErrInvalidPasswordResetToken = errors.New("invalid password reset token")
	ErrResetTokenNotSent         = errors.New("could not send password reset token")
)
