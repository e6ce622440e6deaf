package passwordresetproof

import (
	c "accountd/internal/core/domain/common"
	"accountd/internal/core/domain/user"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "accountd"

type proofClaims struct {
	ResetToken string `json:"prt"`
	jwt.RegisteredClaims
}

// JWTCodec signs {email, token} with HMAC-SHA256. The signature only stops
// tampering with which email claims which token; the persisted token row
// stays the source of truth for validity. No expiry claim is set: a proof
// lives until it is consumed.
type JWTCodec struct {
	secretKey []byte
}

func NewJWTCodec(secretKey string) *JWTCodec {
	return &JWTCodec{secretKey: []byte(secretKey)}
}

func (codec *JWTCodec) Encode(claims user.PasswordResetClaims) (proof user.PasswordResetProof, err error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, proofClaims{
		ResetToken: string(claims.Token),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: string(claims.Email),
		},
	})
	signed, err := token.SignedString(codec.secretKey)
	if err != nil {
		return proof, fmt.Errorf("could not sign password reset proof: %w", err)
	}
	return user.PasswordResetProof(signed), nil
}

func (codec *JWTCodec) Decode(proof user.PasswordResetProof) (claims user.PasswordResetClaims, err error) {
	var parsed proofClaims
	token, err := jwt.ParseWithClaims(
		string(proof),
		&parsed,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return codec.secretKey, nil
		},
		jwt.WithIssuer(issuer),
	)
	if err != nil || !token.Valid {
		return claims, user.ErrInvalidPasswordResetProof
	}
	if parsed.Subject == "" || parsed.ResetToken == "" {
		return claims, user.ErrInvalidPasswordResetProof
	}
	return user.PasswordResetClaims{
		Email: c.Email(parsed.Subject),
		Token: user.PasswordResetToken(parsed.ResetToken),
	}, nil
}
