package resetpassword

import (
	c "accountd/internal/core/domain/common"
	"accountd/internal/core/domain/logging"
	"accountd/internal/core/domain/user"
	"accountd/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const RESET_TOKEN = "test-reset-token"

var NOW = time.Date(2023, 2, 2, 15, 30, 0, 0, time.UTC)

type suite struct {
	log       *logging.FakeLogger
	userRepo  *user.FakeUserRepository
	tokenRepo *user.FakePasswordResetTokenRepository
	hasher    *user.FakePasswordHasher
}

func setupSuite() *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		userRepo:  user.NewFakeUserRepository(),
		tokenRepo: user.NewFakePasswordResetTokenRepository(),
		hasher:    user.NewFakePasswordHasher(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.tokenRepo, user.NewFakeProofCodec(), s.hasher)
}

func (s *suite) createUserWithToken(t *testing.T, email string, password string) user.User {
	t.Helper()
	hash, err := s.hasher.HashPassword(user.RawPassword(password))
	require.NoError(t, err)
	u, err := s.userRepo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		Name:         "Alice",
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	err = s.tokenRepo.Create(context.Background(), user.CreatePasswordResetTokenInput{
		UserID:    u.ID,
		Token:     user.PasswordResetToken(RESET_TOKEN),
		CreatedAt: NOW,
	})
	require.NoError(t, err)
	return u
}

func proofFor(email string) user.PasswordResetProof {
	return user.PasswordResetProof(email + "::" + RESET_TOKEN)
}

func TestPasswordResetSucceedsOnce(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	u := suite.createUserWithToken(t, "alice@example.com", "pw1")

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Proof:       proofFor("alice@example.com"),
		NewPassword: user.RawPassword("newpw"),
	})

	// Verify: password changed, token consumed.
	require.NoError(t, err)

	stored, err := suite.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("newpw"), stored.PasswordHash))
	require.Empty(t, suite.tokenRepo.Tokens)

	// Replay with the same proof must fail.
	_, err = service.Run(context.Background(), Input{
		Proof:       proofFor("alice@example.com"),
		NewPassword: user.RawPassword("anything"),
	})
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetProof)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("newpw"), stored.PasswordHash))
}

func TestUnknownTokenDoesNotMutate(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	u := suite.createUserWithToken(t, "alice@example.com", "pw1")

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Proof:       user.PasswordResetProof("alice@example.com::unknown-token"),
		NewPassword: user.RawPassword("newpw"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetProof)

	stored, err := suite.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("pw1"), stored.PasswordHash))
	require.Len(t, suite.tokenRepo.Tokens, 1)
}

func TestMalformedProofDoesNotMutate(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	u := suite.createUserWithToken(t, "alice@example.com", "pw1")

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Proof:       user.PasswordResetProof("garbage"),
		NewPassword: user.RawPassword("newpw"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetProof)

	stored, err := suite.userRepo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("pw1"), stored.PasswordHash))
}

func TestEmailClaimMismatchRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	suite.createUserWithToken(t, "alice@example.com", "pw1")

	// Exercise: valid token paired with a different email claim.
	_, err := service.Run(context.Background(), Input{
		Proof:       proofFor("mallory@example.com"),
		NewPassword: user.RawPassword("newpw"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidPasswordResetProof)
	require.Len(t, suite.tokenRepo.Tokens, 1)
}

func TestPasswordUpdateFailureKeepsToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	suite.createUserWithToken(t, "alice@example.com", "pw1")
	suite.userRepo.ReturnError = true

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Proof:       proofFor("alice@example.com"),
		NewPassword: user.RawPassword("newpw"),
	})

	// Verify: the proof stays valid so the user can retry.
	require.Error(t, err)
	require.Len(t, suite.tokenRepo.Tokens, 1)
}
