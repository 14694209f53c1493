// Package apple verifies Apple App Attest attestation objects presented at
// wallet registration (spec §4.1).
//
// Grounded on the CBOR attestationObject structure from
// github.com/jyrodrigues/appattest (other_examples), adapted to the
// registration nonce scheme of wallet_core/wallet_account/src/messages/
// registration.rs (RegistrationAttestation::Apple{data}), using
// dc4eu-vc's pkg/mdoc CBOR decoder conventions (fxamacker/cbor/v2) and
// pkg/pki for X.509 chain handling.
package apple

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/edi-wallet/core/pkg/walletattest"
)

// appAttestExtensionOID is the Apple App Attest certificate extension
// (1.2.840.113635.100.8.2) carrying a DER SEQUENCE { OCTET STRING nonce }.
var appAttestExtensionOID = asn1.ObjectIdentifier{1, 2, 840, 113635, 100, 8, 2}

// attestationObject is the CBOR structure Apple's App Attest API produces,
// matching the "fmt"/"attStmt"/"authData" shape of a WebAuthn
// attestationObject specialized for format "apple-appattest".
type attestationObject struct {
	Fmt      string         `cbor:"fmt"`
	AttStmt  appleAttStmt   `cbor:"attStmt"`
	AuthData []byte         `cbor:"authData"`
}

type appleAttStmt struct {
	X5C    [][]byte `cbor:"x5c"`
	Receipt []byte  `cbor:"receipt"`
}

// AuthenticatorData is the parsed fixed-layout prefix of authData, per
// §6.1 of the WebAuthn spec (github.com/jyrodrigues/appattest conventions).
type AuthenticatorData struct {
	RPIDHash     [32]byte
	Flags        byte
	Counter      uint32
	AAGUID       [16]byte
	CredentialID []byte
}

const minAuthDataLength = 37

// ParseAuthenticatorData decodes the fixed-layout authData prefix and its
// attested credential data (App Attest always sets the AT flag at
// registration).
func ParseAuthenticatorData(raw []byte) (*AuthenticatorData, error) {
	if len(raw) < minAuthDataLength {
		return nil, errors.New("apple: authData too short")
	}
	ad := &AuthenticatorData{}
	copy(ad.RPIDHash[:], raw[0:32])
	ad.Flags = raw[32]
	ad.Counter = uint32(raw[33])<<24 | uint32(raw[34])<<16 | uint32(raw[35])<<8 | uint32(raw[36])

	const attestedCredentialData = 1 << 6
	if ad.Flags&attestedCredentialData == 0 {
		return ad, nil
	}
	if len(raw) < minAuthDataLength+16+2 {
		return nil, errors.New("apple: authData truncated before credential data")
	}
	rest := raw[minAuthDataLength:]
	copy(ad.AAGUID[:], rest[0:16])
	credIDLen := int(rest[16])<<8 | int(rest[17])
	rest = rest[18:]
	if len(rest) < credIDLen {
		return nil, errors.New("apple: authData truncated credential id")
	}
	ad.CredentialID = rest[:credIDLen]
	return ad, nil
}

// Config carries the trust material required to verify an App Attest
// attestation.
type Config struct {
	// Roots are the Apple App Attest root CAs.
	Roots *x509.CertPool
	// AppID is "<TeamID>.<BundleID>"; its SHA-256 must equal the RPID hash.
	AppID string
}

// Verifier validates App Attest attestation objects.
type Verifier struct {
	cfg Config
}

// New creates an App Attest Verifier.
func New(cfg Config) *Verifier {
	return &Verifier{cfg: cfg}
}

// Verify validates raw (the CBOR attestationObject bytes) against the
// registration nonce (spec §4.1: nonce == H(c)) and returns the attested
// public key and assertion counter, which must be 0 at registration.
func (v *Verifier) Verify(raw []byte, clientDataHash [32]byte) (*walletattest.VerifiedAttestation, error) {
	var obj attestationObject
	if err := cbor.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("apple: decode attestation object: %w", err)
	}
	if obj.Fmt != "apple-appattest" {
		return nil, fmt.Errorf("apple: unexpected fmt %q", obj.Fmt)
	}
	if len(obj.AttStmt.X5C) == 0 {
		return nil, errors.New("apple: missing certificate chain")
	}

	leaf, err := x509.ParseCertificate(obj.AttStmt.X5C[0])
	if err != nil {
		return nil, fmt.Errorf("apple: parse leaf certificate: %w", err)
	}
	intermediates := x509.NewCertPool()
	for _, der := range obj.AttStmt.X5C[1:] {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, fmt.Errorf("apple: parse intermediate certificate: %w", err)
		}
		intermediates.AddCert(cert)
	}
	if _, err := leaf.Verify(x509.VerifyOptions{
		Roots:         v.cfg.Roots,
		Intermediates: intermediates,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}); err != nil {
		return nil, fmt.Errorf("apple: certificate chain invalid: %w", err)
	}

	ad, err := ParseAuthenticatorData(obj.AuthData)
	if err != nil {
		return nil, err
	}
	if v.cfg.AppID != "" {
		wantHash := sha256.Sum256([]byte(v.cfg.AppID))
		if ad.RPIDHash != wantHash {
			return nil, errors.New("apple: app identifier mismatch")
		}
	}
	if ad.Counter != 0 {
		return nil, errors.New("apple: assertion counter must be 0 at registration")
	}

	// nonce = SHA256(authData || clientDataHash), compared against the
	// DER-wrapped OCTET STRING in the App Attest certificate extension.
	composite := sha256.Sum256(append(append([]byte{}, obj.AuthData...), clientDataHash[:]...))
	if err := verifyNonceExtension(leaf, composite); err != nil {
		return nil, err
	}

	pub, ok := leaf.PublicKey.(*ecdsa.PublicKey)
	if !ok || pub.Curve != elliptic.P256() {
		return nil, errors.New("apple: attested key is not a P-256 ECDSA key")
	}

	return &walletattest.VerifiedAttestation{
		Kind:      walletattest.KindApple,
		PublicKey: pub,
		Counter:   ad.Counter,
	}, nil
}

// VerifyAssertion validates a subsequent App Attest assertion (spec §4.2
// Round 1: the attested key signs over the challenge for every instruction,
// with a strictly increasing counter).
func (v *Verifier) VerifyAssertion(pub *ecdsa.PublicKey, clientDataHash [32]byte, authData []byte, signature []byte, previousCounter uint32) (uint32, error) {
	ad, err := ParseAuthenticatorDataNoCredential(authData)
	if err != nil {
		return 0, err
	}
	if ad.Counter <= previousCounter {
		return 0, fmt.Errorf("apple: assertion counter %d did not increase from %d", ad.Counter, previousCounter)
	}
	composite := sha256.Sum256(append(append([]byte{}, authData...), clientDataHash[:]...))
	digest := sha256.Sum256(composite[:])
	if !ecdsa.VerifyASN1(pub, digest[:], signature) {
		return 0, errors.New("apple: assertion signature invalid")
	}
	return ad.Counter, nil
}

// ParseAuthenticatorDataNoCredential parses the fixed 37-byte authData
// prefix used by assertions, which never carry attested credential data.
func ParseAuthenticatorDataNoCredential(raw []byte) (*AuthenticatorData, error) {
	if len(raw) < minAuthDataLength {
		return nil, errors.New("apple: authData too short")
	}
	ad := &AuthenticatorData{}
	copy(ad.RPIDHash[:], raw[0:32])
	ad.Flags = raw[32]
	ad.Counter = uint32(raw[33])<<24 | uint32(raw[34])<<16 | uint32(raw[35])<<8 | uint32(raw[36])
	return ad, nil
}

// nonceExtension is the App Attest nonce extension payload:
// SEQUENCE { [1] EXPLICIT OCTET STRING nonce }
type nonceExtension struct {
	Nonce asn1.RawValue `asn1:"explicit,tag:1"`
}

func verifyNonceExtension(cert *x509.Certificate, want [32]byte) error {
	for _, ext := range cert.Extensions {
		if !ext.Id.Equal(appAttestExtensionOID) {
			continue
		}
		var wrapper nonceExtension
		if _, err := asn1.Unmarshal(ext.Value, &wrapper); err != nil {
			return fmt.Errorf("apple: decode nonce extension: %w", err)
		}
		if string(wrapper.Nonce.Bytes) != string(want[:]) {
			return errors.New("apple: nonce mismatch")
		}
		return nil
	}
	return errors.New("apple: certificate missing App Attest nonce extension")
}
