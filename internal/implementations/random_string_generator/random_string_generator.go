package randomstringgenerator

import (
	"accountd/internal/core/domain/user"
	"crypto/rand"
	"math/big"
)

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const sessionTokenLength = 32
const passwordResetTokenLength = 32

// Generator produces bearer tokens, so it draws from crypto/rand.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	return user.SessionToken(randomString(sessionTokenLength))
}

func (g *Generator) GeneratePasswordResetToken() user.PasswordResetToken {
	return user.PasswordResetToken(randomString(passwordResetTokenLength))
}

func randomString(length int) string {
	max := big.NewInt(int64(len(chars)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = chars[n.Int64()]
	}
	return string(b)
}
