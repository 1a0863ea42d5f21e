package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmoreno/datebook/internal/config"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/store"
	"github.com/jmoreno/datebook/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "datebook-test",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(t *testing.T, repo store.UserRepository) AuthService {
	t.Helper()
	svc, err := NewAuthService(repo, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return svc
}

// ─────────────────────────────────────────────
// Constructor
// ─────────────────────────────────────────────

func TestNewAuthService_MissingTokenMaterial(t *testing.T) {
	_, err := NewAuthService(&mockUserRepository{}, config.App{TokenIssuer: "issuer"}, logger.Nop())
	require.ErrorIs(t, err, ErrMissingTokenMaterial)

	_, err = NewAuthService(&mockUserRepository{}, config.App{TokenSignKey: "key"}, logger.Nop())
	require.ErrorIs(t, err, ErrMissingTokenMaterial)
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(t, repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "dana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// the repository must only ever see the bcrypt hash
	assert.Empty(t, persisted.Password)
	require.NotEmpty(t, persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("secret")))
}

func TestRegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{name: "bad email", user: models.User{Email: "not-an-email", Password: "secret"}},
		{name: "empty password", user: models.User{Email: "dana@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "dana@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	user, err := svc.Login(context.Background(), models.User{
		Email:    "dana@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "dana@example.com", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err = svc.Login(context.Background(), models.User{
		Email:    "dana@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "ghost@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7, Email: "dana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "dana@example.com", parsed.TokenClaims.Email)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	otherCfg := testAppConfig()
	otherCfg.TokenIssuer = "someone-else"
	other, err := NewAuthService(&mockUserRepository{}, otherCfg, logger.Nop())
	require.NoError(t, err)

	token, err := other.CreateToken(context.Background(), models.User{UserID: 7, Email: "dana@example.com"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenDuration = -time.Minute
	expiredIssuer, err := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())
	require.NoError(t, err)

	token, err := expiredIssuer.CreateToken(context.Background(), models.User{UserID: 7, Email: "dana@example.com"})
	require.NoError(t, err)

	svc := newTestAuthService(t, &mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRegisterUser_RepoErrorIsWrapped(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, repoErr
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "dana@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, repoErr)
}
