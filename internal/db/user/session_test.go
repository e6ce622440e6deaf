package user

import (
	c "accountd/internal/core/domain/common"
	"accountd/internal/core/domain/user"
	"accountd/internal/db"
	"context"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = "test-session-token"

type sessionTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	userRepo *PgxUserRepository
	repo     *PgxSessionRepository
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepo = NewPgxRepository(suite.pool)
	suite.repo = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	if db.TestPostgresURL() == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(sessionTestSuite))
}

func (s *sessionTestSuite) TestGetUserByTokenSuccess() {
	created := s.createUserWithSession()

	u, err := s.repo.GetUserByToken(context.Background(), user.SessionToken(SESSION_TOKEN))

	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(created.Email, u.Email)
	s.Equal(created.Name, u.Name)
}

func (s *sessionTestSuite) TestGetUserByTokenNotFound() {
	s.createUserWithSession()

	_, err := s.repo.GetUserByToken(context.Background(), user.SessionToken("unknown-token"))

	s.ErrorIs(err, user.ErrSessionDoesNotExist)
}

func (s *sessionTestSuite) TestDeleteSuccess() {
	created := s.createUserWithSession()

	userID, err := s.repo.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))

	s.Nil(err)
	s.Equal(created.ID, userID)

	_, err = s.repo.GetUserByToken(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.ErrorIs(err, user.ErrSessionDoesNotExist)
}

func (s *sessionTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(context.Background(), user.SessionToken("unknown-token"))
	s.ErrorIs(err, user.ErrSessionDoesNotExist)
}

func (s *sessionTestSuite) createUserWithSession() user.User {
	u, err := s.userRepo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Name:         NAME,
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)

	err = s.repo.Create(context.Background(), user.CreateSessionInput{
		UserID:    u.ID,
		Token:     user.SessionToken(SESSION_TOKEN),
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	return u
}
