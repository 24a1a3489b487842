package app

import (
	"fmt"
	"net/http"
	"roomie/internal/app/deps"
	"roomie/internal/app/services"
	"roomie/internal/http/handlers/auth"
	login "roomie/internal/http/handlers/auth/log_in"
	resetpassword "roomie/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "roomie/internal/http/handlers/auth/send_password_reset_token"
	signup "roomie/internal/http/handlers/auth/sign_up"
	changepassword "roomie/internal/http/handlers/user/change_password"
	deactivateuser "roomie/internal/http/handlers/user/deactivate_user"
	getuser "roomie/internal/http/handlers/user/get_user"
	listusers "roomie/internal/http/handlers/user/list_users"
	me "roomie/internal/http/handlers/user/me"
	updateuser "roomie/internal/http/handlers/user/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	userRouter := chi.NewRouter()
	userRouter.Use(auth.SetAuthTokenToContext)

	userRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	userRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	userRouter.Method(
		http.MethodPost,
		"/forgotPassword",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	userRouter.Method(http.MethodPatch, "/resetPassword/{token}", resetpassword.New(s.ResetPassword))

	userRouter.Method(http.MethodGet, "/me", me.New(s.GetCurrentUser))
	userRouter.Method(http.MethodPatch, "/updateMe", updateuser.New(s.UpdateUser))
	userRouter.Method(http.MethodPatch, "/updateMyPassword", changepassword.New(s.ChangePassword))
	userRouter.Method(http.MethodDelete, "/deleteMe", deactivateuser.New(s.DeactivateUser))

	userRouter.Method(http.MethodGet, "/", listusers.New(s.ListUsers))
	userRouter.Method(http.MethodGet, "/{userID:[0-9]+}", getuser.New(s.GetUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api/v1/users", userRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
