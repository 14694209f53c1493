// Package apiv1 (this file) is the holder-side counterpart of
// internal/walletprovider/apiv1: it drives the two-round instruction
// protocol and the registration handshake against a remote wallet
// provider (spec §4.1, §4.2), keeping the PIN key ephemeral and the
// attested key's private half in pkg/storagecrypt-backed local storage.
package apiv1

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/edi-wallet/core/pkg/pinkey"
	"github.com/edi-wallet/core/pkg/storagecrypt"
	"github.com/edi-wallet/core/pkg/walletattest"
	"github.com/edi-wallet/core/pkg/walletproviderclient"
	"github.com/edi-wallet/core/pkg/logger"
	"github.com/edi-wallet/core/pkg/trace"
)

const (
	storageKeyWalletID    = "wallet_id"
	storageKeyCertificate = "wallet_certificate"
	storageKeyPinSalt     = "pin_salt"
	storageKeyAttestedKey = "attested_key_d"
	storageKeySequence    = "sequence_number"
)

// WalletSession drives registration and the instruction protocol for one
// on-device wallet against a remote wallet provider.
type WalletSession struct {
	client *walletproviderclient.Client
	store  *storagecrypt.Service
	log    *logger.Log
	tracer *trace.Tracer
}

// NewWalletSession builds a wallet session over an already-provisioned
// local encrypted store (pkg/storagecrypt) and wallet provider client.
func NewWalletSession(client *walletproviderclient.Client, store *storagecrypt.Service, tracer *trace.Tracer, log *logger.Log) *WalletSession {
	return &WalletSession{client: client, store: store, log: log.New("wallet_session"), tracer: tracer}
}

func encodeBigInt(pub *ecdsa.PublicKey) (x, y string) {
	return base64.RawURLEncoding.EncodeToString(pub.X.Bytes()), base64.RawURLEncoding.EncodeToString(pub.Y.Bytes())
}

// registrationInner mirrors the fields the wallet provider's
// RegistrationPayload is signed over, with JSON field names byte-for-byte
// identical to the server's default struct encoding so a digest computed
// here matches the one the server will recompute and verify against.
type registrationInner struct {
	Challenge       []byte
	AttestationKind string
	PinPubKeyX      string
	PinPubKeyY      string
	SequenceNumer   int
}

// Register performs the two-round wallet registration handshake
// (spec §4.1): it enrolls for a challenge, derives the PIN key from pin
// and a fresh salt, signs the registration payload, and persists the
// resulting wallet identity and attested key locally.
func (w *WalletSession) Register(ctx context.Context, pin string, attestedKey *ecdsa.PrivateKey, attestation walletattest.Attestation) (string, error) {
	ctx, span := w.tracer.Start(ctx, "wallet:register")
	defer span.End()

	enrollResp, err := w.client.Enroll(ctx)
	if err != nil {
		return "", err
	}
	challenge, err := base64.RawURLEncoding.DecodeString(enrollResp.Challenge)
	if err != nil {
		return "", err
	}

	salt, err := pinkey.NewSalt()
	if err != nil {
		return "", err
	}
	pinKey, err := pinkey.Derive(pin, salt)
	if err != nil {
		return "", err
	}
	pinX, pinY := encodeBigInt(&pinKey.PublicKey)

	inner := registrationInner{
		Challenge:       challenge,
		AttestationKind: string(attestation.Kind),
		PinPubKeyX:      pinX,
		PinPubKeyY:      pinY,
		SequenceNumer:   0,
	}
	innerBytes, err := json.Marshal(inner)
	if err != nil {
		return "", err
	}
	innerDigest := sha256.Sum256(innerBytes)

	pinSig, err := ecdsa.SignASN1(rand.Reader, pinKey, innerDigest[:])
	if err != nil {
		return "", err
	}

	req := walletproviderclient.RegisterRequest{
		Challenge:       base64.RawURLEncoding.EncodeToString(challenge),
		AttestationKind: string(attestation.Kind),
		PinPubKeyX:      pinX,
		PinPubKeyY:      pinY,
		PinSalt:         base64.RawURLEncoding.EncodeToString(salt),
		PinSignature:    base64.RawURLEncoding.EncodeToString(pinSig),
		InnerDigest:     base64.RawURLEncoding.EncodeToString(innerDigest[:]),
		SequenceNumber:  0,
	}
	if attestation.Apple != nil {
		req.AppleAttestationB64 = base64.RawURLEncoding.EncodeToString(attestation.Apple.Data)
	}
	if attestation.Google != nil {
		for _, der := range attestation.Google.CertificateChain {
			req.GoogleCertChainB64 = append(req.GoogleCertChainB64, base64.RawURLEncoding.EncodeToString(der))
		}
		req.GoogleIntegrityJWT = attestation.Google.IntegrityVerdictJWT
	}

	resp, err := w.client.Register(ctx, req)
	if err != nil {
		return "", err
	}

	if err := w.store.PutKeyed(ctx, storageKeyWalletID, []byte(resp.WalletID)); err != nil {
		return "", err
	}
	if err := w.store.PutKeyed(ctx, storageKeyCertificate, []byte(resp.WalletCertificate)); err != nil {
		return "", err
	}
	if err := w.store.PutKeyed(ctx, storageKeyPinSalt, salt); err != nil {
		return "", err
	}
	if err := w.store.PutKeyed(ctx, storageKeyAttestedKey, attestedKey.D.Bytes()); err != nil {
		return "", err
	}
	if err := w.store.PutKeyed(ctx, storageKeySequence, []byte{0, 0, 0, 0, 0, 0, 0, 0}); err != nil {
		return "", err
	}

	if err := w.AppendHistory(ctx, HistoryEvent{Kind: "registered", Timestamp: time.Now(), Detail: resp.WalletID}); err != nil {
		return "", err
	}

	return resp.WalletID, nil
}
