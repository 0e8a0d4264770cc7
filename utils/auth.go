// utils/auth.go
package utils

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"fitmanager-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UsernameKey is the gin context key holding the authenticated caller.
const UsernameKey = "username"

const realm = `Basic realm="fitmanager"`

// Authenticator checks the shared credential pair and, when a JWT secret is
// configured, issues and verifies bearer tokens for it.
type Authenticator struct {
	username     string
	password     string
	passwordHash []byte
	jwtSecret    []byte
	jwtExpiry    time.Duration
	now          func() time.Time
}

func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	a := &Authenticator{
		username:  cfg.Username,
		password:  cfg.Password,
		jwtSecret: []byte(cfg.JWTSecret),
		jwtExpiry: cfg.JWTExpiry,
		now:       time.Now,
	}
	if cfg.PasswordHash != "" {
		a.passwordHash = []byte(cfg.PasswordHash)
	}
	if a.jwtExpiry <= 0 {
		a.jwtExpiry = 24 * time.Hour
	}
	return a
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckCredentials compares both halves of the pair; both are always evaluated.
func (a *Authenticator) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1

	var passOK bool
	if len(a.passwordHash) > 0 {
		passOK = bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}
	return userOK && passOK
}

func (a *Authenticator) TokensEnabled() bool {
	return len(a.jwtSecret) > 0
}

// GenerateToken signs an HS256 token for username.
func (a *Authenticator) GenerateToken(username string) (string, time.Time, error) {
	if !a.TokensEnabled() {
		return "", time.Time{}, errors.New("JWT_SECRET not set")
	}
	now := a.now()
	expiresAt := now.Add(a.jwtExpiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies tokenString and returns its subject.
func (a *Authenticator) ParseToken(tokenString string) (string, error) {
	if !a.TokensEnabled() {
		return "", errors.New("JWT_SECRET not set")
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	if subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(a.username)) != 1 {
		return "", errors.New("token subject does not match configured user")
	}
	return claims.Subject, nil
}

// AuthMiddleware rejects requests that carry neither valid Basic credentials
// nor a valid bearer token.
func (a *Authenticator) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, password, ok := c.Request.BasicAuth(); ok {
			if a.CheckCredentials(username, password) {
				c.Set(UsernameKey, username)
				c.Next()
				return
			}
		} else if header := c.GetHeader("Authorization"); a.TokensEnabled() && len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			if subject, err := a.ParseToken(strings.TrimSpace(header[7:])); err == nil {
				c.Set(UsernameKey, subject)
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", realm)
		RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
	}
}
