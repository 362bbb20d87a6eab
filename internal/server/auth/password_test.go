package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.False(t, h.Verify("s3cret", "not-a-hash"))
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewHasher_CostBounds(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewHasher(0).cost)
	assert.Equal(t, DefaultBcryptCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func TestHasher_DefaultCostRecorded(t *testing.T) {
	hash, err := NewHasher(DefaultBcryptCost).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestHasher_TooLongPassword(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash(strings.Repeat("x", 80))
	assert.Error(t, err)
}
