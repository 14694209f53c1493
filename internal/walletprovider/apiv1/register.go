package apiv1

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/edi-wallet/core/internal/walletprovider/db"
	"github.com/edi-wallet/core/pkg/pinkey"
	"github.com/edi-wallet/core/pkg/walletattest"
	"github.com/edi-wallet/core/pkg/walletcert"
	"github.com/edi-wallet/core/pkg/walleterrors"
)

// ChallengeLength is the size, in bytes, of the enrollment and
// instruction challenges (spec §4.1 step 1, §4.2 "generates 32-byte
// challenge").
const ChallengeLength = 32

// challengeTTL bounds how long an issued enrollment challenge remains
// redeemable (spec §4.1 failure taxonomy: ChallengeExpired).
const challengeTTL = 2 * time.Minute

// EnrollResponse is returned from round 1 of registration (spec §4.1
// step 1).
type EnrollResponse struct {
	Challenge []byte `json:"challenge"`
}

// Enroll issues a fresh enrollment challenge. The caller is expected to
// persist it transiently (keyed by a wallet marker the caller derives)
// until RegisterWithAttestation redeems it.
func (c *Client) Enroll(ctx context.Context) (*EnrollResponse, error) {
	ctx, span := c.tracer.Start(ctx, "walletprovider:enroll")
	defer span.End()

	challenge := make([]byte, ChallengeLength)
	if _, err := rand.Read(challenge); err != nil {
		return nil, err
	}

	if err := c.db.PutPendingEnrollment(ctx, challenge, time.Now().Add(challengeTTL)); err != nil {
		return nil, err
	}

	return &EnrollResponse{Challenge: challenge}, nil
}

// RegistrationPayload is the inner, PIN-key-signed payload of round 2 of
// registration (spec §4.1 step 2).
type RegistrationPayload struct {
	Attestation   walletattest.Attestation
	PinPubKey     *ecdsa.PublicKey
	PinSalt       []byte
	PinSignature  []byte // over sha256(canonical encoding of the rest of the payload)
	SequenceNumer int
}

// RegisterResult is returned on successful registration (spec §4.1 step 4).
type RegisterResult struct {
	WalletID          string
	WalletCertificate string
}

// RegisterWithAttestation redeems an outstanding enrollment challenge and
// completes registration: verifies the platform attestation binds
// nonce=H(challenge), verifies the PIN-key signature inside the envelope,
// and mints a Wallet Certificate (spec §4.1 steps 3-4).
func (c *Client) RegisterWithAttestation(ctx context.Context, challenge []byte, payload RegistrationPayload, innerDigest []byte) (*RegisterResult, error) {
	ctx, span := c.tracer.Start(ctx, "walletprovider:register")
	defer span.End()

	expiry, err := c.db.ConsumePendingEnrollment(ctx, challenge)
	if err != nil {
		return nil, walleterrors.New(walleterrors.KindChallengeExpired)
	}
	if time.Now().After(expiry) {
		return nil, walleterrors.New(walleterrors.KindChallengeExpired)
	}

	if payload.SequenceNumer != 0 {
		return nil, walleterrors.New(walleterrors.KindSequenceNumberExpectedZero)
	}

	nonce := sha256.Sum256(challenge)

	var verified *walletattest.VerifiedAttestation
	switch payload.Attestation.Kind {
	case walletattest.KindApple:
		if c.appleVerifier == nil || payload.Attestation.Apple == nil {
			return nil, walleterrors.New(walleterrors.KindAttestationInvalid)
		}
		verified, err = c.appleVerifier.Verify(payload.Attestation.Apple.Data, nonce)
	case walletattest.KindGoogle:
		if c.androidVerifier == nil || payload.Attestation.Google == nil {
			return nil, walleterrors.New(walleterrors.KindAttestationInvalid)
		}
		verified, err = c.androidVerifier.Verify(
			payload.Attestation.Google.CertificateChain,
			payload.Attestation.Google.IntegrityVerdictJWT,
			nonce[:],
			payload.PinPubKey,
		)
	default:
		return nil, walleterrors.New(walleterrors.KindAttestationInvalid)
	}
	if err != nil {
		return nil, walleterrors.New(walleterrors.KindAttestationInvalid)
	}
	if verified.Counter != 0 {
		return nil, walleterrors.New(walleterrors.KindAttestationInvalid)
	}

	if !ecdsaVerifyASN1(payload.PinPubKey, innerDigest, payload.PinSignature) {
		return nil, walleterrors.New(walleterrors.KindPinKeyVerificationFailed)
	}

	pinHash := pinkey.Hash(payload.PinSalt, payload.PinPubKey)
	walletIDHash := sha256.Sum256(pinkey.SEC1PublicKey(verified.PublicKey))
	walletID := base64.RawURLEncoding.EncodeToString(walletIDHash[:])

	cert, err := walletcert.Issue(c.cfg.WalletProvider.Identifier, walletID, verified.PublicKey, pinHash, c.certKey, c.cfg.WalletProvider.CertificateKeyID)
	if err != nil {
		return nil, err
	}

	if err := c.db.CreateWallet(ctx, db.WalletRecord{
		WalletID:        walletID,
		HWPubKey:        pinkey.SEC1PublicKey(verified.PublicKey),
		PinSalt:         payload.PinSalt,
		PinPubKeyHash:   pinHash,
		AttestationKind: string(payload.Attestation.Kind),
		Counter:         0,
		SequenceNumber:  0,
		PinState:        NewPinState(c.cfg.WalletProvider.PinPolicy),
	}); err != nil {
		return nil, err
	}

	return &RegisterResult{WalletID: walletID, WalletCertificate: cert}, nil
}

func ecdsaVerifyASN1(pub *ecdsa.PublicKey, digest, sig []byte) bool {
	if pub == nil {
		return false
	}
	return ecdsa.VerifyASN1(pub, digest, sig)
}
