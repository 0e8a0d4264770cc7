package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitmanager-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGate(t *testing.T, a *Authenticator) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.GET("/private", a.AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UsernameKey))
	})
	return r
}

func TestCheckCredentials(t *testing.T) {
	a := NewAuthenticator(config.AuthConfig{Username: "admin", Password: "s3cret"})
	assert.True(t, a.CheckCredentials("admin", "s3cret"))
	assert.False(t, a.CheckCredentials("admin", "wrong"))
	assert.False(t, a.CheckCredentials("root", "s3cret"))
	assert.False(t, a.CheckCredentials("", ""))
}

func TestCheckCredentialsWithHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	a := NewAuthenticator(config.AuthConfig{Username: "admin", Password: "ignored", PasswordHash: hash})
	assert.True(t, a.CheckCredentials("admin", "s3cret"))
	assert.False(t, a.CheckCredentials("admin", "ignored"))
}

func TestAuthMiddlewareBasic(t *testing.T) {
	r := newGate(t, NewAuthenticator(config.AuthConfig{Username: "admin", Password: "s3cret"}))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.SetBasicAuth("admin", "s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	for _, header := range []string{"", "Basic Zm9vOmJhcg==", "Bearer whatever"} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, `Basic realm="fitmanager"`, w.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := NewAuthenticator(config.AuthConfig{Username: "admin", Password: "s3cret", JWTSecret: "test-secret", JWTExpiry: time.Hour})
	require.True(t, a.TokensEnabled())

	token, expiresAt, err := a.GenerateToken("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := a.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newGate(t, a).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseTokenRejects(t *testing.T) {
	a := NewAuthenticator(config.AuthConfig{Username: "admin", JWTSecret: "test-secret", JWTExpiry: time.Minute})

	expired, _, err := a.GenerateToken("admin")
	require.NoError(t, err)
	a.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = a.ParseToken(expired)
	assert.Error(t, err, "expired")
	a.now = time.Now

	other := NewAuthenticator(config.AuthConfig{Username: "admin", JWTSecret: "another-secret"})
	forged, _, err := other.GenerateToken("admin")
	require.NoError(t, err)
	_, err = a.ParseToken(forged)
	assert.Error(t, err, "wrong key")

	stranger, _, err := a.GenerateToken("someone-else")
	require.NoError(t, err)
	_, err = a.ParseToken(stranger)
	assert.Error(t, err, "unknown subject")

	disabled := NewAuthenticator(config.AuthConfig{Username: "admin", Password: "x"})
	assert.False(t, disabled.TokensEnabled())
	_, _, err = disabled.GenerateToken("admin")
	assert.Error(t, err)
}
