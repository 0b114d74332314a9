package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTLifecycle(t *testing.T) {
	t.Run("issued token validates", func(t *testing.T) {
		token, err := GenerateJWT("secret")
		require.NoError(t, err)

		claims, err := ValidateJWT("secret", token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateJWT("secret")
		require.NoError(t, err)

		_, err = ValidateJWT("other-secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ValidateJWT("secret", "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
