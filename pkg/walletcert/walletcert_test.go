package walletcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	wpKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	hwKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	pinHash := sha256.Sum256([]byte("salt+pinpubkey"))

	tok, err := Issue("wp.example", "wallet-123", &hwKey.PublicKey, pinHash[:], wpKey, "wp-key-1")
	require.NoError(t, err)

	claims, err := Parse(tok, &wpKey.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, "wallet-123", claims.WalletID)
	assert.Equal(t, "wp.example", claims.Issuer)
	assert.Equal(t, Version, claims.Version)

	gotHash, err := claims.PinPubKeyHashBytes()
	require.NoError(t, err)
	assert.Equal(t, pinHash[:], gotHash)

	gotHW, err := claims.HWPublicKeyBytes()
	require.NoError(t, err)
	assert.Equal(t, sec1(&hwKey.PublicKey), gotHW)
}

func TestParse_WrongKeyRejected(t *testing.T) {
	wpKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	otherKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	hwKey, _ := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)

	tok, err := Issue("wp.example", "wallet-123", &hwKey.PublicKey, []byte("hash"), wpKey, "")
	require.NoError(t, err)

	_, err = Parse(tok, &otherKey.PublicKey)
	assert.Error(t, err)
}
