package sendpasswordresettoken

import (
	c "accountd/internal/core/domain/common"
	e "accountd/internal/core/domain/errors"
	"accountd/internal/core/domain/logging"
	"accountd/internal/core/domain/user"
	"accountd/internal/core/services"
	"context"
	"errors"
	"fmt"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

type Result struct {
	User user.User
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	tokenGenerator  user.PasswordResetTokenGenerator
	proofCodec      user.ProofCodec
	sender          user.PasswordResetSender
	now             func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	proofCodec user.ProofCodec,
	sender user.PasswordResetSender,
	now func() time.Time,
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
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if proofCodec == nil {
		panic(e.NewNilArgumentError("proofCodec"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenGenerator:  tokenGenerator,
		proofCodec:      proofCodec,
		sender:          sender,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.getOrCreateToken(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not obtain password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	proof, err := s.proofCodec.Encode(user.PasswordResetClaims{Email: u.Email, Token: token})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not encode password reset proof.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The token row is durable at this point: a failed or interrupted send
	// leaves a valid proof behind, and a retried request reuses it.
	if err := s.sender.SendPasswordReset(ctx, u, proof); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not send password reset email.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, fmt.Errorf("%w: %v", user.ErrPasswordResetDelivery, err)
	}

	s.log.Info(ctx, "Password reset email has been sent.", logging.Entry("userID", u.ID))
	return Result{User: u}, nil
}

// getOrCreateToken returns the outstanding token for the user, creating one
// if none exists. Issuance is idempotent: a concurrent create resolved by
// the unique constraint on user_id falls back to re-reading the winner.
func (s *service) getOrCreateToken(ctx context.Context, userID user.ID) (user.PasswordResetToken, error) {
	token, err := s.tokenRepository.GetByUserID(ctx, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		return "", err
	}

	token = s.tokenGenerator.GeneratePasswordResetToken()
	err = s.tokenRepository.Create(ctx, user.CreatePasswordResetTokenInput{
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now(),
	})
	if errors.Is(err, user.ErrPasswordResetTokenAlreadyExists) {
		return s.tokenRepository.GetByUserID(ctx, userID)
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
