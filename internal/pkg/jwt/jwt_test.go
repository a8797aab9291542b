package jwt_test

import (
	"testing"
	"time"

	"umrah-service/config"
	"umrah-service/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMaker(t *testing.T) {
	maker := jwt.NewMaker(&config.JWTConfig{SecretKey: "test-secret", TokenTTL: time.Hour})

	t.Run("round trip", func(t *testing.T) {
		token, err := maker.GenerateToken(1, "test@test.com", "customer")
		assert.NoError(t, err)

		claims, err := maker.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "test@test.com", claims.Email)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
			"user_id": 1,
			"role":    "admin",
		})
		tokenStr, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = maker.ParseToken(tokenStr)
		assert.Error(t, err)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := jwt.NewMaker(&config.JWTConfig{SecretKey: "other-secret", TokenTTL: time.Hour})
		token, err := other.GenerateToken(1, "test@test.com", "customer")
		assert.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})
}
