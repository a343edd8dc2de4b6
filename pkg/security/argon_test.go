package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromPassword_RoundTrip(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("Xy12345!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "Xy12345!")

	ok, err := a.VerifyPasswd("Xy12345!", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswd_WrongPassword(t *testing.T) {
	a := New()

	hash, err := a.GenerateFromPassword("correct horse")
	require.NoError(t, err)

	for _, candidate := range []string{"correct horsE", "correct hors", "", "correct horse "} {
		ok, err := a.VerifyPasswd(candidate, hash)
		require.NoError(t, err)
		assert.False(t, ok, "password %q must not verify", candidate)
	}
}

func TestGenerateFromPassword_UniqueSalt(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("same password")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswd_BadHashFormat(t *testing.T) {
	a := New()

	_, err := a.VerifyPasswd("whatever", "not-a-phc-string")
	assert.Error(t, err)
}
