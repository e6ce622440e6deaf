package me

import (
	c "accountd/internal/core/domain/common"
	"accountd/internal/core/domain/user"
	service "accountd/internal/core/services/get_user_by_session_token"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:        user.ID(1),
		Email:     c.Email("test@test.test"),
		Name:      "Test User",
		CreatedAt: time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC),
	}
	return result, nil
}

func TestSuccess(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	request.Header.Set("Authorization", "Bearer test-session-token")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, user.SessionToken("test-session-token"), stub.input.Token)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, stub.input)
}

func TestUnauthorizedWithUnknownToken(t *testing.T) {
	stub := &stubService{err: user.ErrSessionDoesNotExist}
	handler := New(stub)

	request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	request.Header.Set("Authorization", "Bearer unknown-token")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
