package services

import (
	"roomie/internal/app/deps"
	drl "roomie/internal/core/domain/rate_limiter"
	"roomie/internal/core/domain/user"
	"roomie/internal/core/services"
	"roomie/internal/core/services/auth"
	changepassword "roomie/internal/core/services/change_password"
	deactivateuser "roomie/internal/core/services/deactivate_user"
	getcurrentuser "roomie/internal/core/services/get_current_user"
	getuser "roomie/internal/core/services/get_user"
	listusers "roomie/internal/core/services/list_users"
	login "roomie/internal/core/services/log_in"
	ratelimiting "roomie/internal/core/services/rate_limiting"
	resetpassword "roomie/internal/core/services/reset_password"
	sendpasswordresettoken "roomie/internal/core/services/send_password_reset_token"
	signup "roomie/internal/core/services/sign_up"
	updateuser "roomie/internal/core/services/update_user"
)

type Services struct {
	SignUp                 services.Service[signup.Input, signup.Result]
	LogIn                  services.Service[login.Input, login.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
	GetCurrentUser         services.Service[getcurrentuser.Input, getcurrentuser.Result]
	GetUser                services.Service[getuser.Input, getuser.Result]
	ListUsers              services.Service[listusers.Input, listusers.Result]
	UpdateUser             services.Service[updateuser.Input, updateuser.Result]
	DeactivateUser         services.Service[deactivateuser.Input, deactivateuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenIssuer,
		deps.Now,
	)
	s.LogIn = ratelimiting.New(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.AccessTokenIssuer,
		),
	)
	s.SendPasswordResetToken = ratelimiting.New(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenIssuer,
		deps.Now,
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.AccessTokenIssuer,
			deps.Now,
		),
	)
	s.GetCurrentUser = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		getcurrentuser.New(),
	)
	s.GetUser = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		getuser.New(
			deps.Logger,
			deps.UserRepository,
			deps.ListingRepository,
		),
	)
	s.ListUsers = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		auth.WithRoleRestriction(
			[]user.Role{user.RoleAdmin},
			listusers.New(
				deps.Logger,
				deps.UserRepository,
			),
		),
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.DeactivateUser = auth.WithAuthentication(
		deps.AccessTokenIssuer,
		deps.UserRepository,
		deactivateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	return s
}
