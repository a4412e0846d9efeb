package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/devconnector/devconnector/internal/config"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/store"
	"github.com/devconnector/devconnector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "devconnector-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var createdUser models.User
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createdUser = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(users)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "John Doe", createdUser.Name)
	assert.Equal(t, "john@example.com", createdUser.Email)

	// password must be stored as a bcrypt hash of the submitted plaintext
	assert.NotEqual(t, "secret123", createdUser.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret123")))

	// avatar is derived deterministically from the email
	assert.True(t, strings.HasPrefix(createdUser.Avatar, "//www.gravatar.com/avatar/"))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: "john@example.com"}, nil
		},
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("CreateUser should not be called when the email is taken")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "john@example.com"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_LookupError(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUserWithPassword(t *testing.T, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		UserID:   42,
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "john@example.com", email)
			return storedUserWithPassword(t, "secret123"), nil
		},
	}
	svc := newTestAuthService(users)

	found, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return storedUserWithPassword(t, "secret123"), nil
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "john@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CurrentUser
// ─────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			return models.User{UserID: 42, Name: "John Doe"}, nil
		},
	}
	svc := newTestAuthService(users)

	user, err := svc.CurrentUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
}

func TestCurrentUser_NotFound(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users)

	_, err := svc.CurrentUser(context.Background(), 42)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	expiredIssuer := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "devconnector-test",
		TokenDuration: -time.Hour,
	}, logger.Nop())
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := expiredIssuer.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	otherIssuer := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "devconnector-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := otherIssuer.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestCreateToken_NoSignKey(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, config.App{
		TokenIssuer:   "devconnector-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 42})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
