package apiv1

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/edi-wallet/core/internal/walletprovider/db"
)

// sealPrivateKey wraps a holder key's scalar under c.hsmKey, the way
// pkg/storagecrypt seals values under its own AES-256-GCM key. A real
// deployment performs this wrap (and the matching unwrap in
// unsealPrivateKey) inside an HSM; here both are an in-process stand-in.
func (c *Client) sealPrivateKey(priv *ecdsa.PrivateKey) (nonce, ciphertext []byte, err error) {
	block, err := aes.NewCipher(c.hsmKey[:])
	if err != nil {
		return nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	return nonce, gcm.Seal(nil, nonce, priv.D.Bytes(), nil), nil
}

func (c *Client) unsealPrivateKey(rec *db.GeneratedKey) (*ecdsa.PrivateKey, error) {
	block, err := aes.NewCipher(c.hsmKey[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	plain, err := gcm.Open(nil, rec.Nonce, rec.SealedPrivateKey, nil)
	if err != nil {
		return nil, fmt.Errorf("walletprovider: unseal key %s: %w", rec.KeyID, err)
	}

	curve := elliptic.P256()
	priv := new(ecdsa.PrivateKey)
	priv.Curve = curve
	priv.D = new(big.Int).SetBytes(plain)
	priv.PublicKey.X = new(big.Int).SetBytes(rec.PublicKeyX)
	priv.PublicKey.Y = new(big.Int).SetBytes(rec.PublicKeyY)
	return priv, nil
}

// generateAndStoreKey mints a fresh P-256 holder key, seals its scalar
// under c.hsmKey, and persists it keyed by a random key_identifier (spec
// §8: "the holder key ... is a WP-generated key referenced by a stored
// key_identifier").
func (c *Client) generateAndStoreKey(ctx context.Context, walletID string) (*ecdsa.PrivateKey, string, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, "", err
	}

	idBytes := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, idBytes); err != nil {
		return nil, "", err
	}
	keyID := fmt.Sprintf("%x", idBytes)

	nonce, sealed, err := c.sealPrivateKey(priv)
	if err != nil {
		return nil, "", err
	}

	rec := db.GeneratedKey{
		WalletID:         walletID,
		KeyID:            keyID,
		Nonce:            nonce,
		SealedPrivateKey: sealed,
		PublicKeyX:       priv.PublicKey.X.Bytes(),
		PublicKeyY:       priv.PublicKey.Y.Bytes(),
	}
	if err := c.db.CreateGeneratedKey(ctx, rec); err != nil {
		return nil, "", err
	}

	return priv, keyID, nil
}
