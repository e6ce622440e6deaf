package app

import (
	"accountd/internal/app/deps"
	"accountd/internal/app/services"
	loginwithemail "accountd/internal/http/handlers/auth/log_in_with_email"
	logout "accountd/internal/http/handlers/auth/log_out"
	me "accountd/internal/http/handlers/auth/me"
	resetpassword "accountd/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "accountd/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "accountd/internal/http/handlers/auth/sign_up_with_email"
	verifypasswordresetproof "accountd/internal/http/handlers/auth/verify_password_reset_proof"
	createuser "accountd/internal/http/handlers/users/create_user"
	deleteuser "accountd/internal/http/handlers/users/delete_user"
	getuser "accountd/internal/http/handlers/users/get_user"
	listusers "accountd/internal/http/handlers/users/list_users"
	updateuser "accountd/internal/http/handlers/users/update_user"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodPost, "/password-reset/send", sendpasswordresettoken.New(s.SendPasswordResetToken))
	authRouter.Method(http.MethodPost, "/password-reset/verify", verifypasswordresetproof.New(s.VerifyPasswordResetProof))
	authRouter.Method(http.MethodPost, "/password-reset", resetpassword.New(s.ResetPassword))

	usersRouter := chi.NewRouter()
	usersRouter.Method(http.MethodPost, "/", createuser.New(s.SignUpWithEmail))
	usersRouter.Method(http.MethodGet, "/", listusers.New(s.ListUsers))
	usersRouter.Method(http.MethodGet, "/{email}", getuser.New(s.GetUserByEmail))
	usersRouter.Method(http.MethodPut, "/{email}", updateuser.New(s.UpdateUser))
	usersRouter.Method(http.MethodDelete, "/{email}", deleteuser.New(s.DeleteUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/users", usersRouter)

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.Addr,
	}
}
