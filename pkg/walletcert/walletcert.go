// Package walletcert implements the Wallet Certificate (spec §3, §4.1): a
// WP-signed JWT binding {wallet_id, hw_pubkey, pin_pubkey_hash, version}.
//
// Grounded on wallet_core/wallet_account/src/messages/registration.rs
// (WalletCertificateClaims) for the claim shape, and dc4eu-vc's pkg/jose
// (golang-jwt/jwt/v5-based MakeJWT/signing-method helpers) for how the
// teacher mints and verifies its own JWTs.
package walletcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Version is the current Wallet Certificate schema version.
const Version = 1

// Claims are the Wallet Certificate's JWT claims (spec §3).
type Claims struct {
	jwt.RegisteredClaims

	WalletID      string `json:"wallet_id"`
	HWPubKey      string `json:"hw_pubkey"` // base64url SEC1 uncompressed
	PinPubKeyHash string `json:"pin_pubkey_hash"` // base64url SHA-256
	Version       int    `json:"version"`
}

// Issue mints a Wallet Certificate signed by the WP's certificate key.
func Issue(issuer, walletID string, hwPubKey *ecdsa.PublicKey, pinPubKeyHash []byte, signingKey *ecdsa.PrivateKey, keyID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		WalletID:      walletID,
		HWPubKey:      base64.RawURLEncoding.EncodeToString(sec1(hwPubKey)),
		PinPubKeyHash: base64.RawURLEncoding.EncodeToString(pinPubKeyHash),
		Version:       Version,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	if keyID != "" {
		token.Header["kid"] = keyID
	}
	return token.SignedString(signingKey)
}

// Parse parses and verifies a Wallet Certificate against the WP's public
// certificate key.
func Parse(tokenString string, verifyKey *ecdsa.PublicKey) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("walletcert: unexpected signing method %v", t.Header["alg"])
		}
		return verifyKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walletcert: parse: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("walletcert: invalid token")
	}
	return claims, nil
}

// HWPublicKeyBytes returns the decoded SEC1 hardware public key bytes.
func (c *Claims) HWPublicKeyBytes() ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(c.HWPubKey)
}

// PinPubKeyHashBytes returns the decoded PIN public key hash.
func (c *Claims) PinPubKeyHashBytes() ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(c.PinPubKeyHash)
}

func sec1(pub *ecdsa.PublicKey) []byte {
	return elliptic.Marshal(pub.Curve, pub.X, pub.Y)
}
