package verifypasswordresetproof

import (
	e "accountd/internal/core/domain/errors"
	"accountd/internal/core/domain/logging"
	"accountd/internal/core/domain/user"
	"accountd/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Proof user.PasswordResetProof
}

type Result struct {
	Claims user.PasswordResetClaims
}

type service struct {
	log             logging.Logger
	tokenRepository user.PasswordResetTokenRepository
	proofCodec      user.ProofCodec
}

func New(
	log logging.Logger,
	tokenRepository user.PasswordResetTokenRepository,
	proofCodec user.ProofCodec,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if proofCodec == nil {
		panic(e.NewNilArgumentError("proofCodec"))
	}
	return &service{
		log:             log,
		tokenRepository: tokenRepository,
		proofCodec:      proofCodec,
	}
}

// Run checks the proof without consuming it: the signature authenticates the
// claims, the persisted token decides whether the proof is still live.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	claims, err := s.proofCodec.Decode(input.Proof)
	if err != nil {
		return result, user.ErrInvalidPasswordResetProof
	}

	_, err = s.tokenRepository.GetByToken(ctx, claims.Token)
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

	return Result{Claims: claims}, nil
}
