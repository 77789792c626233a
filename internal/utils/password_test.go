package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesAndSaltsFreshly(t *testing.T) {
	for _, password := range []string{"secret1", "", "päßwörd with spaces"} {
		first, err := HashPassword(password)
		require.NoError(t, err)
		second, err := HashPassword(password)
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "each digest must use a fresh salt")
		assert.True(t, CheckPassword(password, first))
		assert.True(t, CheckPassword(password, second))
		assert.False(t, CheckPassword(password+"x", first))
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPassword("secret1", ""))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("secret1", "$2a$10$short"))
}
