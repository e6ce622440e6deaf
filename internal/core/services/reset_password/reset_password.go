package resetpassword

import (
	e "accountd/internal/core/domain/errors"
	"accountd/internal/core/domain/logging"
	"accountd/internal/core/domain/user"
	"accountd/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Proof       user.PasswordResetProof
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	proofCodec      user.ProofCodec
	passwordHasher  user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	proofCodec user.ProofCodec,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if proofCodec == nil {
		panic(e.NewNilArgumentError("proofCodec"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		proofCodec:      proofCodec,
		passwordHasher:  passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	claims, err := s.proofCodec.Decode(input.Proof)
	if err != nil {
		return result, user.ErrInvalidPasswordResetProof
	}

	tokenUserID, err := s.tokenRepository.GetByToken(ctx, claims.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		return result, user.ErrInvalidPasswordResetProof
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up password reset token.", logging.Entry("err", err))
		return result, err
	}

	u, err := s.userRepository.GetByID(ctx, tokenUserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("userID", tokenUserID))
		return result, user.ErrInvalidPasswordResetProof
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("userID", tokenUserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	// The signature only binds email to token; the token row decides which
	// account it actually belongs to.
	if u.Email != claims.Email {
		return result, user.ErrInvalidPasswordResetProof
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		// The token is intentionally left in place so the user can retry.
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.tokenRepository.Delete(ctx, claims.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		// A concurrent reset with the same token won the conditional delete;
		// exactly one caller gets the success.
		return result, user.ErrInvalidPasswordResetProof
	}
	if err != nil {
		// The password has already changed, so the reset succeeded; the
		// leaked single-use token is a cleanup defect, not a security one.
		s.log.Error(
			ctx,
			"Could not delete consumed password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", u.ID))
	return result, nil
}
