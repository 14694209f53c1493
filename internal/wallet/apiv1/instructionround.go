package apiv1

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math/big"
	"time"

	"github.com/edi-wallet/core/pkg/pinkey"
	"github.com/edi-wallet/core/pkg/walleterrors"
	"github.com/edi-wallet/core/pkg/walletproviderclient"
)

// innerPayload mirrors internal/walletprovider/apiv1.InnerPayload's JSON
// shape field-for-field, so the digest computed here is over the exact
// bytes the wallet provider will reconstruct server-side.
type innerPayload struct {
	InstructionName string
	Args            []byte
	Challenge       []byte
	Sequence        int64
}

type signedEnvelope struct {
	Inner        innerPayload
	PinSignature string
}

func (w *WalletSession) loadUint64(ctx context.Context, key string) (uint64, error) {
	raw, err := w.store.GetKeyed(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, walleterrors.New(walleterrors.KindUnexpectedState)
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (w *WalletSession) storeUint64(ctx context.Context, key string, v uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return w.store.PutKeyed(ctx, key, buf)
}

func (w *WalletSession) loadAttestedKey(ctx context.Context) (*ecdsa.PrivateKey, error) {
	d, err := w.store.GetKeyed(ctx, storageKeyAttestedKey)
	if err != nil {
		return nil, err
	}
	key := new(ecdsa.PrivateKey)
	key.Curve = elliptic.P256()
	key.D = new(big.Int).SetBytes(d)
	key.PublicKey.X, key.PublicKey.Y = key.Curve.ScalarBaseMult(d)
	return key, nil
}

// Instruction runs one round of the instruction protocol end to end
// (spec §4.2): it fetches a fresh challenge, signs the named instruction
// first with the PIN key then the attested key, advances the locally
// tracked sequence number, and returns the wallet provider's result.
func (w *WalletSession) Instruction(ctx context.Context, pin, instructionName string, args []byte) (*walletproviderclient.InstructionResponse, error) {
	ctx, span := w.tracer.Start(ctx, "wallet:instruction")
	defer span.End()

	walletIDRaw, err := w.store.GetKeyed(ctx, storageKeyWalletID)
	if err != nil {
		return nil, err
	}
	walletID := string(walletIDRaw)

	certRaw, err := w.store.GetKeyed(ctx, storageKeyCertificate)
	if err != nil {
		return nil, err
	}
	salt, err := w.store.GetKeyed(ctx, storageKeyPinSalt)
	if err != nil {
		return nil, err
	}
	seq, err := w.loadUint64(ctx, storageKeySequence)
	if err != nil {
		return nil, err
	}
	attestedKey, err := w.loadAttestedKey(ctx)
	if err != nil {
		return nil, err
	}
	attestedX, attestedY := encodeBigInt(&attestedKey.PublicKey)

	challengeSigned, err := json.Marshal(struct {
		WalletID          string `json:"wallet_id"`
		NextSequence      int64  `json:"next_sequence"`
		WalletCertificate string `json:"wallet_certificate"`
	}{walletID, int64(seq), string(certRaw)})
	if err != nil {
		return nil, err
	}
	challengeDigest := sha256.Sum256(challengeSigned)
	challengeSig, err := ecdsa.SignASN1(rand.Reader, attestedKey, challengeDigest[:])
	if err != nil {
		return nil, err
	}

	challengeResp, err := w.client.Challenge(ctx, walletID, walletproviderclient.ChallengeRequest{
		NextSequence:      int64(seq),
		WalletCertificate: string(certRaw),
		AttestedPubKeyX:   attestedX,
		AttestedPubKeyY:   attestedY,
		AttestedSignature: base64.RawURLEncoding.EncodeToString(challengeSig),
	})
	if err != nil {
		return nil, err
	}
	challenge, err := base64.RawURLEncoding.DecodeString(challengeResp.Challenge)
	if err != nil {
		return nil, err
	}

	pinKey, err := pinkey.Derive(pin, salt)
	if err != nil {
		return nil, err
	}

	inner := innerPayload{
		InstructionName: instructionName,
		Args:            args,
		Challenge:       challenge,
		Sequence:        int64(seq),
	}
	innerBytes, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	innerDigest := sha256.Sum256(innerBytes)
	pinSig, err := ecdsa.SignASN1(rand.Reader, pinKey, innerDigest[:])
	if err != nil {
		return nil, err
	}

	envelopeBytes, err := json.Marshal(signedEnvelope{Inner: inner, PinSignature: base64.RawURLEncoding.EncodeToString(pinSig)})
	if err != nil {
		return nil, err
	}
	attestedDigest := sha256.Sum256(envelopeBytes)
	attestedSig, err := ecdsa.SignASN1(rand.Reader, attestedKey, attestedDigest[:])
	if err != nil {
		return nil, err
	}

	pinX, pinY := encodeBigInt(&pinKey.PublicKey)

	result, err := w.client.Instruction(ctx, walletID, walletproviderclient.InstructionRequest{
		InstructionName:   instructionName,
		Args:              base64.RawURLEncoding.EncodeToString(args),
		Challenge:         base64.RawURLEncoding.EncodeToString(challenge),
		Sequence:          int64(seq),
		PinPubKeyX:        pinX,
		PinPubKeyY:        pinY,
		PinSignature:      base64.RawURLEncoding.EncodeToString(pinSig),
		AttestedPubKeyX:   attestedX,
		AttestedPubKeyY:   attestedY,
		AttestedSignature: base64.RawURLEncoding.EncodeToString(attestedSig),
	})
	if err != nil {
		return nil, err
	}

	if err := w.storeUint64(ctx, storageKeySequence, seq+1); err != nil {
		return nil, err
	}

	if err := w.AppendHistory(ctx, HistoryEvent{Kind: instructionName, Timestamp: time.Now(), Detail: result.Name}); err != nil {
		return nil, err
	}

	return result, nil
}
