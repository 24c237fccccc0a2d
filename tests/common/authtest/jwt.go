//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testSecret signs tokens the way the hotel API would. The console never checks it.
const testSecret = "hotel-api-test-secret"

type tokenClaims struct {
	Roles []string `json:"roles,omitempty"`
	gojwt.RegisteredClaims
}

// GenerateToken returns an API-style token for username with roles, valid for ttl.
func GenerateToken(t *testing.T, username string, ttl time.Duration, roles ...string) string {
	t.Helper()
	return sign(t, username, time.Now().Add(ttl), roles)
}

func CreateExpiredToken(t *testing.T, username string, roles ...string) string {
	t.Helper()
	return sign(t, username, time.Now().Add(-time.Hour), roles)
}

func sign(t *testing.T, username string, exp time.Time, roles []string) string {
	t.Helper()
	claims := tokenClaims{
		Roles: roles,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  gojwt.NewNumericDate(exp.Add(-time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
