package loginwithemail

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

const SESSION_TOKEN = "test-session-token"

var NOW = time.Date(2023, 2, 2, 15, 30, 0, 0, time.UTC)

type suite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	sessionRepo *user.FakeSessionRepository
	hasher      *user.FakePasswordHasher
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	return &suite{
		log:         logging.NewFakeLogger(),
		userRepo:    userRepo,
		sessionRepo: user.NewFakeSessionRepository(userRepo),
		hasher:      user.NewFakePasswordHasher(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.userRepo,
		s.sessionRepo,
		s.hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)
}

func (s *suite) createUser(t *testing.T, email string, password string) user.User {
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
	return u
}

func TestSuccessfulLogIn(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	created := suite.createUser(t, "alice@example.com", "pw1")

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Password: user.RawPassword("pw1"),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, created, result.User)
	require.Equal(t, user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := suite.sessionRepo.GetUserByToken(context.Background(), result.Token)
	require.NoError(t, err)
	require.Equal(t, created, sessionUser)
}

func TestInvalidPassword(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	suite.createUser(t, "alice@example.com", "pw1")

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Password: user.RawPassword("wrong"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	require.Empty(t, suite.sessionRepo.Sessions)
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("ghost@example.com"),
		Password: user.RawPassword("pw1"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	require.Empty(t, suite.sessionRepo.Sessions)
}
