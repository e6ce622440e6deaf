package updateuser

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
	return New(s.log, s.userRepo, s.hasher)
}

func TestUserUpdated(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	_, err := suite.userRepo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail("alice@example.com"),
		Name:         "Alice",
		PasswordHash: user.PasswordHash("old-hash"),
		CreatedAt:    NOW,
	})
	require.NoError(t, err)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("alice@example.com"),
		Name:     "Alice Cooper",
		Password: user.RawPassword("newpw"),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", result.User.Name)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword("newpw"), result.User.PasswordHash))
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Email:    c.NewEmail("ghost@example.com"),
		Name:     "Ghost",
		Password: user.RawPassword("pw"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
