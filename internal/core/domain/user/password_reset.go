package user

import (
	c "accountd/internal/core/domain/common"
	"context"
)

// PasswordResetToken is the opaque lookup token persisted server-side.
// It is the source of truth for proof validity and one-time use.
type PasswordResetToken string

// PasswordResetProof is the signed, self-contained form the user receives
// in the reset link. It embeds the email and the lookup token.
type PasswordResetProof string

type PasswordResetClaims struct {
	Email c.Email
	Token PasswordResetToken
}

// ProofCodec only authenticates which email claims which token. Validity
// is still decided by the persisted token.
type ProofCodec interface {
	Encode(claims PasswordResetClaims) (PasswordResetProof, error)
	Decode(proof PasswordResetProof) (PasswordResetClaims, error)
}

type PasswordResetSender interface {
	SendPasswordReset(ctx context.Context, u User, proof PasswordResetProof) error
}

type PasswordResetTokenGenerator interface {
	GeneratePasswordResetToken() PasswordResetToken
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
