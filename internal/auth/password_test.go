package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("s3cret")
	require.NoError(t, err)
	second, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", first)
	assert.NotEqual(t, first, second, "salted hashes must differ per call")
	assert.True(t, CheckPassword("s3cret", first))
	assert.True(t, CheckPassword("s3cret", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{"correct password", "correct-horse", hash, true},
		{"wrong password", "battery-staple", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "correct-horse", "not-a-bcrypt-hash", false},
		{"empty hash", "correct-horse", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.plain, tt.hash))
		})
	}
}
