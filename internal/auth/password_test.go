package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/vintage-books/internal/auth"
)

func TestLegacyHasherMatchesOriginalChecksum(t *testing.T) {
	hasher := auth.LegacyHasher{}

	// Values produced by the original storefront's hash function.
	got, err := hasher.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "96354", got)

	got, err = hasher.Hash("")
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}

func TestLegacyHasherCompare(t *testing.T) {
	hasher := auth.LegacyHasher{}

	stored, err := hasher.Hash("rahasia123")
	require.NoError(t, err)

	assert.True(t, hasher.Compare(stored, "rahasia123"))
	assert.False(t, hasher.Compare(stored, "salah"))
	assert.False(t, hasher.Compare(stored, ""))
}

func TestBcryptHasher(t *testing.T) {
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}

	stored, err := hasher.Hash("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", stored)

	assert.True(t, hasher.Compare(stored, "rahasia123"))
	assert.False(t, hasher.Compare(stored, "salah"))
}

func TestHasherForScheme(t *testing.T) {
	assert.IsType(t, auth.BcryptHasher{}, auth.HasherForScheme("bcrypt", 10))
	assert.IsType(t, auth.LegacyHasher{}, auth.HasherForScheme("legacy", 10))
	assert.IsType(t, auth.LegacyHasher{}, auth.HasherForScheme("", 10))
}
