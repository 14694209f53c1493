// Package pinkey derives the wallet's PIN-protected ECDSA signing key from
// a user PIN and a per-wallet salt (spec §3 "PIN Key", §4.1).
//
// The private scalar is never persisted: every instruction re-derives it
// from the PIN typed by the user and the salt stored in the wallet
// (spec §3 invariant: the salt is stored in the wallet; the PIN is only
// in memory for the duration of one instruction). Derivation uses
// HKDF-SHA256 the way dc4eu-vc's pkg/jose treats key material as opaque
// byte strings, rejection-sampled onto the P-256 scalar field per
// FIPS 186-4 Appendix B.4.1.
package pinkey

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// SaltLength is the size in bytes of a freshly generated PIN-key salt.
const SaltLength = 16

// NewSalt generates a fresh random salt for a new wallet registration.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Derive deterministically derives the ECDSA P-256 PIN key from (pin, salt).
// The same (pin, salt) pair always yields the same key, and a wrong PIN
// yields an unrelated, equally plausible-looking key (there is no way to
// tell a wrong PIN apart from a correct one without the bound ciphertext
// or the WP's stored pin_pubkey_hash).
func Derive(pin string, salt []byte) (*ecdsa.PrivateKey, error) {
	curve := elliptic.P256()
	order := curve.Params().N

	kdf := hkdf.New(sha256.New, []byte(pin), salt, []byte("eudi-wallet-pin-key-v1"))

	for attempt := 0; attempt < 256; attempt++ {
		buf := make([]byte, 32)
		if _, err := io.ReadFull(kdf, buf); err != nil {
			return nil, err
		}
		d := new(big.Int).SetBytes(buf)
		if d.Sign() == 0 || d.Cmp(order) >= 0 {
			continue // reject and draw the next 32 bytes from the same stream
		}
		priv := new(ecdsa.PrivateKey)
		priv.Curve = curve
		priv.D = d
		priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(d.Bytes())
		return priv, nil
	}
	return nil, errors.New("pinkey: failed to derive a valid scalar")
}

// SEC1PublicKey encodes the PIN key's public half in uncompressed SEC1 form.
func SEC1PublicKey(pub *ecdsa.PublicKey) []byte {
	return elliptic.Marshal(pub.Curve, pub.X, pub.Y)
}

// Hash computes pin_pubkey_hash = SHA256(salt || SEC1(pin_pubkey.pub))
// (spec §3 invariant).
func Hash(salt []byte, pub *ecdsa.PublicKey) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write(SEC1PublicKey(pub))
	return h.Sum(nil)
}
