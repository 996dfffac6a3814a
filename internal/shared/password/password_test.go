package password_test

import (
	"testing"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/password"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("Secret#123", bcrypt.MinCost)

	assert.NoError(t, err)
	assert.True(t, password.Compare(hash, "Secret#123"))
	assert.False(t, password.Compare(hash, "secret#123"))
	assert.False(t, password.Compare("", "Secret#123"))
}

func TestValidateStrength(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want error
	}{
		{"ok", "Secret#123", nil},
		{"too short", "Se#1", password.ErrTooShort},
		{"no lower", "SECRET#123", password.ErrMissingLower},
		{"no upper", "secret#123", password.ErrMissingUpper},
		{"no digit", "Secret#abc", password.ErrMissingDigit},
		{"no special", "Secret1234", password.ErrMissingSpecial},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, password.ValidateStrength(tc.pw))
		})
	}
}

func TestGenerateTemporary(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := password.GenerateTemporary(password.TemporaryLength)

		assert.NoError(t, err)
		assert.Len(t, pw, password.TemporaryLength)
		assert.NoError(t, password.ValidateStrength(pw))
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1)
}
