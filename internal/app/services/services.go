package services

import (
	"accountd/internal/app/deps"
	drl "accountd/internal/core/domain/rate_limiter"
	"accountd/internal/core/services"
	deleteuser "accountd/internal/core/services/delete_user"
	getuserbyemail "accountd/internal/core/services/get_user_by_email"
	getuserbysessiontoken "accountd/internal/core/services/get_user_by_session_token"
	listusers "accountd/internal/core/services/list_users"
	loginwithemail "accountd/internal/core/services/log_in_with_email"
	logout "accountd/internal/core/services/log_out"
	ratelimiting "accountd/internal/core/services/rate_limiting"
	resetpassword "accountd/internal/core/services/reset_password"
	sendpasswordresettoken "accountd/internal/core/services/send_password_reset_token"
	signupwithemail "accountd/internal/core/services/sign_up_with_email"
	updateuser "accountd/internal/core/services/update_user"
	verifypasswordresetproof "accountd/internal/core/services/verify_password_reset_proof"
)

type Services struct {
	SignUpWithEmail          services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail           services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                   services.Service[logout.Input, logout.Result]
	GetUserBySessionToken    services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	SendPasswordResetToken   services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	VerifyPasswordResetProof services.Service[verifypasswordresetproof.Input, verifypasswordresetproof.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]

	GetUserByEmail services.Service[getuserbyemail.Input, getuserbyemail.Result]
	UpdateUser     services.Service[updateuser.Input, updateuser.Result]
	DeleteUser     services.Service[deleteuser.Input, deleteuser.Result]
	ListUsers      services.Service[listusers.Input, listusers.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.SessionRepository,
		deps.PasswordHasher,
		deps.SessionTokenGenerator,
		deps.Now,
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetProofCodec,
			deps.PasswordResetSender,
			deps.Now,
		),
	)
	s.VerifyPasswordResetProof = verifypasswordresetproof.New(
		deps.Logger,
		deps.PasswordResetTokenRepository,
		deps.PasswordResetProofCodec,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetTokenRepository,
		deps.PasswordResetProofCodec,
		deps.PasswordHasher,
	)

	s.GetUserByEmail = getuserbyemail.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.UpdateUser = updateuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.DeleteUser = deleteuser.New(
		deps.Logger,
		deps.UserRepository,
	)
	s.ListUsers = listusers.New(
		deps.Logger,
		deps.UserRepository,
	)

	return s
}
