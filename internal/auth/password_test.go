package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", hash)

	assert.True(t, CheckPassword(hash, "p1"))
	assert.False(t, CheckPassword(hash, "p2"))
}

func TestCheckPasswordRejectsPlainTextStorage(t *testing.T) {
	// A raw password stored where a hash belongs never verifies.
	assert.False(t, CheckPassword("p1", "p1"))
}
