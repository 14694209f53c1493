// Package walletattest models the wallet's hardware-attested key and the
// WP-side verification of platform attestations binding that key to an
// installation (spec §3 "Attested Key", §4.1 Registration).
//
// Grounded on wallet_core/wallet_account/src/messages/registration.rs
// (RegistrationAttestation Apple|Google tagged enum) and
// wallet_core/android_attest/src/certificate.rs (key attestation OID) from
// original_source/, with the parsing style of dc4eu-vc's pkg/mdoc (COSE/CBOR
// helpers) and pkg/pki (X.509 chain loading).
package walletattest

import (
	"context"
	"crypto"
	"crypto/ecdsa"
)

// Kind tags which platform produced an attested key.
type Kind string

const (
	KindApple  Kind = "apple"
	KindGoogle Kind = "google"
)

// Source is the tagged variant for "where does a key come from"
// (spec §9 Key factories): Platform keys are attested hardware keys,
// Hsm keys are WP-side keys wrapped under an HSM wrapping key, Ephemeral
// keys exist only for the duration of one cryptographic operation (e.g.
// the PIN key derivation scratch key, or a DPoP proof key).
type Source int

const (
	SourcePlatform Source = iota
	SourceHSM
	SourceEphemeral
)

// Key is a reference to a private key that never leaves its origin;
// callers sign through it rather than extracting key material.
type Key interface {
	// Source reports where this key lives.
	Source() Source
	// PublicKey returns the public half.
	PublicKey() *ecdsa.PublicKey
	// Sign produces a signature over digest using the key.
	Sign(ctx context.Context, digest []byte) ([]byte, error)
}

// HsmKeyRef identifies a key wrapped under an HSM wrapping key, scoped to
// the owning wallet and a caller-chosen identifier (spec §4.2 GenerateKey).
type HsmKeyRef struct {
	WalletID      string
	Identifier    string
	WrappingKeyID string
}

// Attestation is the sum type over platform attestations presented at
// registration (spec §4.1), mirroring RegistrationAttestation in
// wallet_account/src/messages/registration.rs.
type Attestation struct {
	Kind   Kind
	Apple  *AppleAttestation
	Google *GoogleAttestation
}

// AppleAttestation carries the raw App Attest attestation object.
type AppleAttestation struct {
	Data []byte
}

// GoogleAttestation carries the key-attestation certificate chain and the
// Play Integrity verdict token.
type GoogleAttestation struct {
	CertificateChain    [][]byte
	IntegrityVerdictJWT string
}

// VerifiedAttestation is the result of successfully checking an Attestation
// against the configured trust roots: the public key the platform vouches
// for, bound to nonce = H(challenge).
type VerifiedAttestation struct {
	Kind      Kind
	PublicKey *ecdsa.PublicKey
	// Counter is the assertion/signature counter recorded by the platform.
	// Registration requires it to be exactly 0 (spec §4.1).
	Counter uint32
}

// Verifier validates a platform Attestation against a challenge nonce and
// returns the attested public key. Implementations: apple.Verifier,
// android.Verifier.
type Verifier interface {
	VerifyRegistration(ctx context.Context, att Attestation, nonce []byte) (*VerifiedAttestation, error)
}

// Signer is satisfied by a crypto.Signer whose public key is an ECDSA key;
// the HSM mediator and platform key stand-ins implement it.
type Signer interface {
	crypto.Signer
}
