// Package wua implements the Wallet Unit Attestation (spec §3, §4.6): a
// short-lived JWT issued by the WP after a successful CheckPin instruction,
// binding a fresh holder key (`cnf.jwk`) to the wallet id and a status-list
// position a verifier can resolve for liveness/revocation.
//
// Grounded on dc4eu-vc's pkg/tsl (status list bit allocation) and pkg/jose
// (JWT signing conventions), with the human-presentable revocation code
// idea taken from wallet_core/wallet/src/wallet/revocation_code.rs in
// original_source/ (a WUA status index made presentable for out-of-band
// device-lost revocation).
package wua

import (
	"crypto/ecdsa"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edi-wallet/core/pkg/jose"
	"github.com/edi-wallet/core/pkg/tsl"
)

// DefaultTTL is the WUA's lifetime (spec §4.6: "short exp (hours)").
const DefaultTTL = 1 * time.Hour

// StatusClaim is the (uri, index) pointer into a Status List Token
// (spec §3, §4.6).
type StatusClaim struct {
	URI string `json:"uri"`
	Idx int64  `json:"idx"`
}

// Claims are the WUA's JWT claims.
type Claims struct {
	jwt.RegisteredClaims

	Cnf struct {
		JWK jose.JWK `json:"jwk"`
	} `json:"cnf"`
	Status struct {
		StatusList StatusClaim `json:"status_list"`
	} `json:"status"`
}

// Issue mints a WUA bound to holderKey, with a freshly allocated status
// list position (spec §4.2 IssueWte, §4.6).
func Issue(issuerID, walletID string, holderKey *ecdsa.PublicKey, statusURI string, idx int64, signingKey *ecdsa.PrivateKey, keyID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerID,
			Subject:   walletID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	claims.Cnf.JWK = jose.JWK{
		KTY: "EC",
		CRV: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(holderKey.X.Bytes()),
		Y:   base64.RawURLEncoding.EncodeToString(holderKey.Y.Bytes()),
	}
	claims.Status.StatusList = StatusClaim{URI: statusURI, Idx: idx}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["typ"] = "wua+jwt"
	if keyID != "" {
		token.Header["kid"] = keyID
	}
	return token.SignedString(signingKey)
}

// Parse parses and verifies a WUA against the WP's WUA issuer public key.
func Parse(tokenString string, verifyKey *ecdsa.PublicKey) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return verifyKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("wua: parse: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("wua: invalid token")
	}
	return claims, nil
}

// CheckLiveness resolves the status list referenced by claims and returns
// whether the wallet unit is still valid (status == tsl.StatusValid) and
// the exp has not yet passed (spec §4.6: "verifiers resolve the status
// list to confirm non-revocation").
func CheckLiveness(claims *Claims, statuses []uint8) (bool, error) {
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return false, nil
	}
	status, err := tsl.GetStatus(statuses, int(claims.Status.StatusList.Idx))
	if err != nil {
		return false, err
	}
	return status == tsl.StatusValid, nil
}

// RevocationCode derives a short, human-presentable code from the WUA's
// status list index, for out-of-band "I lost my device" revocation
// (original_source/wallet_core/wallet/src/wallet/revocation_code.rs).
func RevocationCode(walletID string, idx int64) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%d", walletID, idx)
	enc := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(h.Sum(nil))
	if len(enc) > 8 {
		enc = enc[:8]
	}
	return enc
}
