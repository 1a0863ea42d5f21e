// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/service"
	"github.com/jmoreno/datebook/internal/store"
	"github.com/jmoreno/datebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validCredentials is a convenience fixture used across multiple tests.
var validCredentials = models.User{
	Email:    "alice@example.com",
	Password: "secret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return stubToken("signed-jwt"), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, models.User{})))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return user, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_HTTPSuccess(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Email: user.Email}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(7), user.UserID)
			return stubToken("signed-jwt"), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "user not found", err: store.ErrNoUserWasFound},
		{name: "wrong password", err: service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(ctx context.Context, user models.User) (models.User, error) {
					return models.User{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validCredentials)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnexpectedError(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
