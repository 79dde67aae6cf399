package password_test

import (
	"testing"

	"tabaro3-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
)

// TestHashAndVerify verifies a hashed password verifies against the original
// and the hash never equals the plaintext.
func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")

	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, password.Verify("correct horse battery staple", hash))
	assert.False(t, password.Verify("wrong password", hash))
}

// TestHashIsSalted verifies two hashes of the same password differ.
func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-password")
	assert.NoError(t, err)

	second, err := password.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestVerifyGarbageHash verifies a malformed stored hash never verifies.
func TestVerifyGarbageHash(t *testing.T) {
	assert.False(t, password.Verify("anything", "not-a-bcrypt-hash"))
}

// TestHashToken verifies the refresh token digest is deterministic and does
// not leak the token.
func TestHashToken(t *testing.T) {
	digest := password.HashToken("some-refresh-token")

	assert.NotEqual(t, "some-refresh-token", digest)
	assert.Equal(t, digest, password.HashToken("some-refresh-token"))
	assert.NotEqual(t, digest, password.HashToken("other-token"))
}

// TestValidate covers the minimum length rule.
func TestValidate(t *testing.T) {
	assert.True(t, password.Validate("12345678"))
	assert.True(t, password.Validate("a much longer passphrase"))
	assert.False(t, password.Validate("1234567"))
	assert.False(t, password.Validate(""))
}
