package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hasher := NewPasswordHasher(4) // min cost keeps the test fast

	digest, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", digest)

	assert.True(t, hasher.Verify("Str0ng!Pass", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}

func TestPasswordHashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("same-plaintext")
	require.NoError(t, err)
	second, err := hasher.Hash("same-plaintext")
	require.NoError(t, err)

	// Random salt: different digests, both verify
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-plaintext", first))
	assert.True(t, hasher.Verify("same-plaintext", second))
}

func TestPasswordVerifyAgainstOtherDigest(t *testing.T) {
	hasher := NewPasswordHasher(4)

	digest, err := hasher.Hash("password-one")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("password-two", digest))
}

func TestNewPasswordHasherClampsCost(t *testing.T) {
	// Out-of-range cost falls back to the bcrypt default instead of
	// failing on every hash
	hasher := NewPasswordHasher(99)
	digest, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("pw", digest))
}
