package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/goalboard/goalboard/internal/db"
	"github.com/goalboard/goalboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "goalboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close(database))
	})
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	return NewAuthService(repository.NewUserRepository(database), "test-secret", false, time.Hour)
}

func TestAuthRegisterLogin(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("User@Example.com ", "orange-turbine-42")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "orange-turbine-42", *user.PasswordHash)

	got, err := auth.Login("user@example.com", "orange-turbine-42")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = auth.Login("user@example.com", "wrong-guess-00")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "orange-turbine-42")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthRegister_DuplicateAndInvalid(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register("user@example.com", "orange-turbine-42")
	require.NoError(t, err)

	_, err = auth.Register("USER@example.com", "violet-canyon-77")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = auth.Register("not-an-email", "orange-turbine-42")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = auth.Register("short@example.com", "short")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAuthJWTRoundTrip(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register("user@example.com", "orange-turbine-42")
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])

	other := NewAuthService(nil, "different-secret", false, time.Hour)
	_, err = other.VerifyJWT(token)
	assert.Error(t, err)
}
