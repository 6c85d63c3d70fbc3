package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quilljot/quilljot-be/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenExpired(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate("user-123")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotUserID = claims.UserID
	})
	handler := svc.Middleware()(next)

	t.Run("missing token rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, err := svc.Generate("user-456")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-456", gotUserID)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, auth.CheckPassword("hunter2", hash))
	assert.False(t, auth.CheckPassword("hunter3", hash))
	assert.False(t, auth.CheckPassword("hunter2", "not-a-hash"))
}
