package app_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithcamp/medcamp-backend/internal/auth"
	userHttp "github.com/zenithcamp/medcamp-backend/internal/user/http"
)

func TestSignInThenFetchUser(t *testing.T) {
	clearTables()
	createTestUser(t, "u1", false)

	var token string

	t.Run("Sign In", func(t *testing.T) {
		w := executeRequest(http.MethodPost, "/jwt/sign-in", map[string]string{"uid": "u1", "email": "u1@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		for _, c := range w.Result().Cookies() {
			if c.Name == auth.TokenCookieName {
				token = c.Value
				assert.True(t, c.HttpOnly)
			}
		}
		require.NotEmpty(t, token, "sign-in must set the token cookie")
		assert.NotContains(t, w.Body.String(), token)
	})

	t.Run("Fetch Own Record", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/user/u1", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[userHttp.UserResponse](t, w)
		assert.Equal(t, "u1", resp.UID)
		assert.Equal(t, "user", resp.Role)
	})

	t.Run("Without Credential", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/user/u1", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Tampered Credential", func(t *testing.T) {
		w := executeRequest(http.MethodGet, "/user/u1", nil, token+"x")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Sign Out", func(t *testing.T) {
		w := executeRequest(http.MethodPost, "/jwt/sign-out", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		for _, c := range w.Result().Cookies() {
			if c.Name == auth.TokenCookieName {
				assert.Empty(t, c.Value)
				assert.Less(t, c.MaxAge, 0)
			}
		}
	})
}

func TestGoogleSignInIdempotent(t *testing.T) {
	clearTables()
	body := map[string]string{"uid": "g1", "email": "G1@Example.com"}

	w := executeRequest(http.MethodPost, "/users/google-sign-in", body, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode[userHttp.GoogleSignInResponse](t, w).Inserted)

	w = executeRequest(http.MethodPost, "/users/google-sign-in", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[userHttp.GoogleSignInResponse](t, w).Inserted)

	var n int
	require.NoError(t, testPool.QueryRow(context.Background(), "SELECT count(*) FROM public.users WHERE uid = 'g1'").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestAdminDecisionReadsCurrentRole(t *testing.T) {
	clearTables()
	adminToken := createTestUser(t, "boss", true)
	userToken := createTestUser(t, "u1", false)

	w := executeRequest(http.MethodGet, "/users", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = executeRequest(http.MethodGet, "/users", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]userHttp.UserResponse](t, w), 2)

	// Demotion takes effect on the very next request with the same token.
	_, err := testPool.Exec(context.Background(), "UPDATE public.users SET role = 'user' WHERE uid = 'boss'")
	require.NoError(t, err)

	w = executeRequest(http.MethodGet, "/users", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserOwnership(t *testing.T) {
	clearTables()
	adminToken := createTestUser(t, "boss", true)
	createTestUser(t, "u1", false)

	w := executeRequest(http.MethodGet, "/user/u1", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code, "admins do not bypass ownership")

	w = executeRequest(http.MethodGet, "/users/admin/boss", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[userHttp.AdminStatusResponse](t, w).Admin)

	w = executeRequest(http.MethodPost, "/users", map[string]string{"uid": "u1"}, generateToken("u1"))
	assert.Equal(t, http.StatusConflict, w.Code)

	name := "Renamed"
	w = executeRequest(http.MethodPatch, "/user/u1", userHttp.UpdateUserRequest{Name: &name}, generateToken("u1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decode[userHttp.UserResponse](t, w).Name)
}
