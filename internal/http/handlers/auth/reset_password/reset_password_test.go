package resetpassword

import (
	"accountd/internal/core/domain/user"
	service "accountd/internal/core/services/reset_password"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
	return result, nil
}

func TestSuccess(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	body := `{"proof": "test-proof", "password": "new-password"}`
	request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, user.PasswordResetProof("test-proof"), stub.input.Proof)
	assert.Equal(t, user.RawPassword("new-password"), stub.input.NewPassword)
}

func TestInvalidProof(t *testing.T) {
	stub := &stubService{err: user.ErrInvalidPasswordResetProof}
	handler := New(stub)

	body := `{"proof": "invalid-proof", "password": "new-password"}`
	request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestUserDoesNotExist(t *testing.T) {
	stub := &stubService{err: user.ErrUserDoesNotExist}
	handler := New(stub)

	body := `{"proof": "test-proof", "password": "new-password"}`
	request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestInvalidRequestData(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "empty", body: ""},
		{id: "no-proof", body: `{"password": "new-password"}`},
		{id: "no-password", body: `{"proof": "test-proof"}`},
		{id: "short-password", body: `{"proof": "test-proof", "password": "abc"}`},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub)

			request := httptest.NewRequest(http.MethodPost, "/auth/password-reset", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Nil(t, stub.input)
		})
	}
}
