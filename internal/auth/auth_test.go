package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()
	// Min cost keeps the test fast; the algorithm is the same.
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("Password1")
	require.NoError(t, err)
	assert.NotEqual(t, "Password1", hash)

	assert.True(t, h.Verify("Password1", hash))
	assert.False(t, h.Verify("password1", hash))
	assert.False(t, h.Verify("Password1", "not-a-hash"))
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	t.Parallel()
	issuer := NewJWTIssuer("test-secret")

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTIssuer_UniqueTokens(t *testing.T) {
	t.Parallel()
	issuer := NewJWTIssuer("test-secret")

	t1, err := issuer.Issue(1)
	require.NoError(t, err)
	t2, err := issuer.Issue(1)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2, "jti should make every token unique")
}

func TestJWTIssuer_Invalid(t *testing.T) {
	t.Parallel()
	issuer := NewJWTIssuer("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTIssuer("other-secret")
		token, err := other.Issue(7)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := &JWTIssuer{Secret: "test-secret", TTL: -time.Hour}
		token, err := expired.Issue(7)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("empty secret refuses to sign", func(t *testing.T) {
		empty := &JWTIssuer{Secret: "", TTL: time.Hour}
		_, err := empty.Issue(7)
		assert.Error(t, err)
	})
}
