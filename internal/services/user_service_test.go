package services_test

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quilljot/quilljot-be/internal/database"
	"github.com/quilljot/quilljot-be/internal/services"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateAndAuthenticateUser(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	created, err := svc.CreateUser("Alice", "alice@example.com", 30, "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.PasswordHash)

	user, err := svc.AuthenticateUser("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 30, user.Age)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	_, err := svc.CreateUser("Alice", "alice@example.com", 30, "s3cret")
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrWrongCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	_, err := svc.AuthenticateUser("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrWrongCredentials)
}

func TestDuplicateEmailsUseEarliestMatch(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	first, err := svc.CreateUser("Alice", "alice@example.com", 30, "first-pass")
	require.NoError(t, err)
	_, err = svc.CreateUser("Imposter", "alice@example.com", 44, "second-pass")
	require.NoError(t, err)

	user, err := svc.AuthenticateUser("alice@example.com", "first-pass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)

	// The later registration's password does not match the earliest record.
	_, err = svc.AuthenticateUser("alice@example.com", "second-pass")
	assert.ErrorIs(t, err, services.ErrWrongCredentials)
}

func TestListUsersIncludesPasswordHash(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	_, err := svc.CreateUser("Alice", "alice@example.com", 30, "s3cret")
	require.NoError(t, err)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, strings.HasPrefix(users[0].PasswordHash, "$2"), "expected a bcrypt hash, got %q", users[0].PasswordHash)
}

func TestGetUserByIDOmitsHash(t *testing.T) {
	svc := services.NewUserService(newTestDB(t))

	created, err := svc.CreateUser("Alice", "alice@example.com", 30, "s3cret")
	require.NoError(t, err)

	user, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUserByID("missing-id")
	assert.Error(t, err)
}
