//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-console/internal/pkg/jwt"
	"hotel-console/tests/common/authtest"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Read(t *testing.T) {
	reader := jwt.NewReader(nil)

	t.Run("reads subject, roles and expiry", func(t *testing.T) {
		token := authtest.GenerateToken(t, "admin01", time.Hour, "ROLE_ADMIN")

		claims, err := reader.Read(token)

		require.NoError(t, err)
		assert.Equal(t, "admin01", claims.Subject)
		assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Roles)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), *claims.ExpiresAt, time.Minute)
	})

	t.Run("signature is not checked", func(t *testing.T) {
		token := authtest.GenerateToken(t, "admin01", time.Hour)
		tampered := token[:len(token)-4] + "AAAA"

		claims, err := reader.Read(tampered)

		require.NoError(t, err)
		assert.Equal(t, "admin01", claims.Subject)
	})

	t.Run("expired token still yields its claims", func(t *testing.T) {
		token := authtest.CreateExpiredToken(t, "recepcion1", "USER")

		claims, err := reader.Read(token)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
		require.NotNil(t, claims)
		assert.Equal(t, "recepcion1", claims.Subject)
	})

	t.Run("role and authorities claims are merged", func(t *testing.T) {
		raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
			"sub":         "admin01",
			"role":        "ADMIN",
			"authorities": []string{"USER"},
		})
		token, err := raw.SignedString([]byte("any"))
		require.NoError(t, err)

		claims, err := reader.Read(token)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ADMIN", "USER"}, claims.Roles)
		assert.Nil(t, claims.ExpiresAt)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, token := range []string{"", "not-a-token", "a.b.c"} {
			_, err := reader.Read(token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken, token)
		}
	})

	t.Run("clock is injectable", func(t *testing.T) {
		token := authtest.GenerateToken(t, "admin01", time.Hour)
		later := jwt.NewReader(func() time.Time { return time.Now().Add(2 * time.Hour) })

		_, err := later.Read(token)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
