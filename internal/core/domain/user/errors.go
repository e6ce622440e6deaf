package user

import "errors"

var (
	ErrEmailAlreadyExists              = errors.New("email already exists")
	ErrUserDoesNotExist                = errors.New("user does not exist")
	ErrInvalidCredentials              = errors.New("invalid credentials")
	ErrSessionDoesNotExist             = errors.New("session does not exist")
	ErrInvalidPasswordResetProof       = errors.New("invalid password reset proof")
	ErrPasswordResetTokenAlreadyExists = errors.New("password reset token already exists")
	ErrPasswordResetTokenDoesNotExist  = errors.New("password reset token does not exist")
	ErrPasswordResetDelivery           = errors.New("could not deliver password reset email")
)
