package signupwithemail

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

var NOW = time.Date(2023, 2, 2, 15, 30, 0, 0, time.UTC)

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
}

func setupSuite() *suite {
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
		hasher:   user.NewFakePasswordHasher(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher, func() time.Time { return NOW })
}

func TestUserCreated(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Name:     "Alice",
		Password: user.RawPassword("pw1"),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, c.Email("alice@example.com"), result.User.Email)
	require.Equal(t, "Alice", result.User.Name)
	require.Equal(t, NOW, result.User.CreatedAt)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("pw1"), result.User.PasswordHash))
}

func TestEmailAlreadyExists(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	first, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Name:     "Alice",
		Password: user.RawPassword("pw1"),
	})
	require.NoError(t, err)

	// Exercise ---
	_, err = service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Name:     "Another Alice",
		Password: user.RawPassword("pw2"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	stored, err := suite.userRepo.GetByEmail(context.Background(), c.NewEmail("alice@example.com"))
	require.NoError(t, err)
	require.Equal(t, first.User, stored)
}
