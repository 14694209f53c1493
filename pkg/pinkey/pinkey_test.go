package pinkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_Deterministic(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)

	k1, err := Derive("142032", salt)
	require.NoError(t, err)
	k2, err := Derive("142032", salt)
	require.NoError(t, err)

	assert.Equal(t, 0, k1.D.Cmp(k2.D))
	assert.Equal(t, Hash(salt, &k1.PublicKey), Hash(salt, &k2.PublicKey))
}

func TestDerive_DifferentPinDifferentKey(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)

	k1, err := Derive("142032", salt)
	require.NoError(t, err)
	k2, err := Derive("000000", salt)
	require.NoError(t, err)

	assert.NotEqual(t, k1.D.Cmp(k2.D), 0)
}

func TestHash_MatchesInvariant(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key, err := Derive("599123", salt)
	require.NoError(t, err)

	want := Hash(salt, &key.PublicKey)
	got := Hash(salt, &key.PublicKey)
	assert.Equal(t, want, got)
	assert.Len(t, want, 32)
}
