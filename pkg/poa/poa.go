// Package poa implements the Proof of Association (spec §4.7, GLOSSARY):
// a JSON General Serialization JWS proving that N≥2 distinct public keys
// are all held by one wallet, used to bind multi-credential disclosures
// (spec §4.4) and OpenID4VCI batch issuance (spec §4.3).
//
// Grounded on wallet_core/lib/wscd/src/poa.rs and
// wallet_core/wallet_common/src/keys/poa.rs from original_source/
// (PoaPayload{payload, jwks}, one JWS signature per key, typ "poa+jwt"),
// rendered with dc4eu-vc's pkg/jose JWK shape and the JSON (non-compact)
// JWS serialization used nowhere else in the teacher but documented the
// same way the teacher documents its other JOSE helpers.
package poa

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/edi-wallet/core/pkg/jose"
)

// Typ is the "typ" header value for every per-key signature in a PoA.
const Typ = "poa+jwt"

// Payload is the shared PoA payload signed by every associated key.
type Payload struct {
	Aud   string     `json:"aud"`
	Iss   string     `json:"iss"`
	Nonce string     `json:"nonce"`
	Jwks  []jose.JWK `json:"jwks"`
}

// Signature is one entry in the PoA's JSON General Serialization
// "signatures" array.
type Signature struct {
	Protected string `json:"protected"`
	Signature string `json:"signature"`
}

// PoA is a flattened-JWS JSON object: one payload, N signatures in the
// same order as Payload.Jwks.
type PoA struct {
	Payload    string      `json:"payload"`
	Signatures []Signature `json:"signatures"`
}

func b64(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// Construct builds a PoA over the given keys, one signature per key in
// the order given. len(keys) must be >= 2 (spec §4.7: size ≥ 2 unique
// JWKs). The WP's ConstructPoa instruction drives this after unwrapping
// each key in the HSM (spec §4.2).
func Construct(aud, iss, nonce string, keys []*ecdsa.PrivateKey) (*PoA, error) {
	if len(keys) < 2 {
		return nil, errors.New("poa: at least 2 keys required")
	}

	jwks := make([]jose.JWK, 0, len(keys))
	seen := map[string]bool{}
	for _, k := range keys {
		j, err := toJWK(&k.PublicKey)
		if err != nil {
			return nil, err
		}
		key := j.X + j.Y
		if seen[key] {
			return nil, errors.New("poa: duplicate key in jwks")
		}
		seen[key] = true
		jwks = append(jwks, *j)
	}

	payload := Payload{Aud: aud, Iss: iss, Nonce: nonce, Jwks: jwks}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	payloadB64 := b64(payloadBytes)

	header := map[string]string{"typ": Typ, "alg": "ES256"}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	headerB64 := b64(headerBytes)

	signatures := make([]Signature, 0, len(keys))
	for _, k := range keys {
		signingInput := headerB64 + "." + payloadB64
		digest := sha256.Sum256([]byte(signingInput))
		r, s, err := ecdsaSign(k, digest[:])
		if err != nil {
			return nil, err
		}
		sig := append(r.FillBytes(make([]byte, 32)), s.FillBytes(make([]byte, 32))...)
		signatures = append(signatures, Signature{Protected: headerB64, Signature: b64(sig)})
	}

	return &PoA{Payload: payloadB64, Signatures: signatures}, nil
}

func ecdsaSign(key *ecdsa.PrivateKey, digest []byte) (*big.Int, *big.Int, error) {
	return ecdsa.Sign(rand.Reader, key, digest)
}

// Verify checks that a PoA associates exactly the expected set of public
// keys, that aud/nonce/iss match expectations, and that every signature
// verifies against the JWK at the same index (spec §4.4 step 4, §4.7).
func Verify(p *PoA, expectedAud, expectedIss, expectedNonce string, expectedKeys []*ecdsa.PublicKey) error {
	if len(p.Signatures) != len(expectedKeys) {
		return fmt.Errorf("poa: expected %d signatures, got %d", len(expectedKeys), len(p.Signatures))
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(p.Payload)
	if err != nil {
		return fmt.Errorf("poa: decode payload: %w", err)
	}
	var payload Payload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return fmt.Errorf("poa: unmarshal payload: %w", err)
	}

	if payload.Aud != expectedAud || payload.Iss != expectedIss || payload.Nonce != expectedNonce {
		return errors.New("poa: aud/iss/nonce mismatch")
	}
	if len(payload.Jwks) != len(expectedKeys) {
		return fmt.Errorf("poa: expected %d jwks, got %d", len(expectedKeys), len(payload.Jwks))
	}

	if err := verifyKeySetEquals(payload.Jwks, expectedKeys); err != nil {
		return err
	}

	for i, sig := range p.Signatures {
		headerBytes, err := base64.RawURLEncoding.DecodeString(sig.Protected)
		if err != nil {
			return fmt.Errorf("poa: decode header %d: %w", i, err)
		}
		var header map[string]string
		if err := json.Unmarshal(headerBytes, &header); err != nil {
			return fmt.Errorf("poa: unmarshal header %d: %w", i, err)
		}
		if header["typ"] != Typ {
			return fmt.Errorf("poa: signature %d has wrong typ %q", i, header["typ"])
		}

		pub, err := fromJWK(&payload.Jwks[i])
		if err != nil {
			return err
		}
		signingInput := sig.Protected + "." + p.Payload
		digest := sha256.Sum256([]byte(signingInput))
		sigBytes, err := base64.RawURLEncoding.DecodeString(sig.Signature)
		if err != nil {
			return fmt.Errorf("poa: decode signature %d: %w", i, err)
		}
		if len(sigBytes) != 64 {
			return fmt.Errorf("poa: signature %d has unexpected length %d", i, len(sigBytes))
		}
		r := new(big.Int).SetBytes(sigBytes[:32])
		s := new(big.Int).SetBytes(sigBytes[32:])
		if !ecdsa.Verify(pub, digest[:], r, s) {
			return fmt.Errorf("poa: signature %d does not verify", i)
		}
	}

	return nil
}

func verifyKeySetEquals(jwks []jose.JWK, expected []*ecdsa.PublicKey) error {
	if len(jwks) != len(expected) {
		return errors.New("poa: jwk set size mismatch")
	}
	remaining := make([]*ecdsa.PublicKey, len(expected))
	copy(remaining, expected)

	for _, j := range jwks {
		pub, err := fromJWK(&j)
		if err != nil {
			return err
		}
		found := -1
		for i, e := range remaining {
			if e != nil && pub.X.Cmp(e.X) == 0 && pub.Y.Cmp(e.Y) == 0 {
				found = i
				break
			}
		}
		if found == -1 {
			return errors.New("poa: jwks do not match the expected key set")
		}
		remaining[found] = nil
	}
	return nil
}

func toJWK(pub *ecdsa.PublicKey) (*jose.JWK, error) {
	return &jose.JWK{
		KTY: "EC",
		CRV: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(pub.X.FillBytes(make([]byte, 32))),
		Y:   base64.RawURLEncoding.EncodeToString(pub.Y.FillBytes(make([]byte, 32))),
	}, nil
}

func fromJWK(j *jose.JWK) (*ecdsa.PublicKey, error) {
	xBytes, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, fmt.Errorf("poa: decode jwk x: %w", err)
	}
	yBytes, err := base64.RawURLEncoding.DecodeString(j.Y)
	if err != nil {
		return nil, fmt.Errorf("poa: decode jwk y: %w", err)
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}, nil
}
