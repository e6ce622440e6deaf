package randomstringgenerator

import (
	"accountd/internal/core/domain/user"
	"testing"
)

func TestSessionTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	sessionTokens := make(map[user.SessionToken]struct{})
	for i := 0; i < 100; i++ {
		sessionToken := generator.GenerateSessionToken()
		if string(sessionToken) == "" {
			t.Fatal("sessionToken must not be empty")
		}
		if len(sessionToken) != sessionTokenLength {
			t.Fatalf("unexpected sessionToken length: %v", sessionToken)
		}
		if _, ok := sessionTokens[sessionToken]; ok {
			t.Fatalf("sessionToken %v already exists (%v)", sessionToken, sessionTokens)
		}
		sessionTokens[sessionToken] = struct{}{}
	}
}

func TestPasswordResetTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	resetTokens := make(map[user.PasswordResetToken]struct{})
	for i := 0; i < 100; i++ {
		resetToken := generator.GeneratePasswordResetToken()
		if string(resetToken) == "" {
			t.Fatal("resetToken must not be empty")
		}
		if len(resetToken) != passwordResetTokenLength {
			t.Fatalf("unexpected resetToken length: %v", resetToken)
		}
		if _, ok := resetTokens[resetToken]; ok {
			t.Fatalf("resetToken %v already exists (%v)", resetToken, resetTokens)
		}
		resetTokens[resetToken] = struct{}{}
	}
}
