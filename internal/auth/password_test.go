package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-value")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-value", hash)
	assert.True(t, CheckPassword(hash, "s3cret-value"))
	assert.False(t, CheckPassword(hash, "wrong-value"))
}

func TestCheckPasswordBadHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
