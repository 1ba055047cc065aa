package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
)

func newRouter(transport auth.Transport) (*gin.Engine, *auth.JWTManager) {
	gin.SetMode(gin.TestMode)
	m := auth.NewJWTManager("secret")
	r := gin.New()
	noLimit := func(c *gin.Context) { c.Next() }
	RegisterRoutes(r.Group(""), NewHandler(m, transport, false), noLimit)
	return r, m
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignInCookieTransport(t *testing.T) {
	r, m := newRouter(auth.CookieTransport)

	w := post(r, "/jwt/sign-in", `{"uid":"u1","email":"u1@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Token, "cookie transport must not leak the token in the body")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.TokenCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	id, err := m.ParseAndValidate(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)
}

func TestSignInHeaderTransport(t *testing.T) {
	r, m := newRouter(auth.HeaderTransport)

	w := post(r, "/jwt/sign-in", `{"uid":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Empty(t, w.Result().Cookies())

	id, err := m.ParseAndValidate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)
}

func TestSignInRejectsMalformedBody(t *testing.T) {
	r, _ := newRouter(auth.CookieTransport)

	w := post(r, "/jwt/sign-in", `{"uid":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInRequiresUID(t *testing.T) {
	r, _ := newRouter(auth.HeaderTransport)

	for _, body := range []string{`{"email":"u1@example.com"}`, `{"uid":42}`, `{"uid":""}`} {
		w := post(r, "/jwt/sign-in", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.NotContains(t, w.Body.String(), "token\":", body)
	}
}

func TestSignOutClearsCookie(t *testing.T) {
	r, _ := newRouter(auth.CookieTransport)

	w := post(r, "/jwt/sign-out", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}
