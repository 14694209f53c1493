package httpserver

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"math/big"

	"github.com/gin-gonic/gin"

	"github.com/edi-wallet/core/internal/walletprovider/apiv1"
	"github.com/edi-wallet/core/pkg/walletattest"
)

func newBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func decodeECPubKey(xB64, yB64 string) (*ecdsa.PublicKey, error) {
	x, err := base64.RawURLEncoding.DecodeString(xB64)
	if err != nil {
		return nil, err
	}
	y, err := base64.RawURLEncoding.DecodeString(yB64)
	if err != nil {
		return nil, err
	}
	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: newBigInt(x), Y: newBigInt(y)}, nil
}

func (s *Service) endpointHealth(ctx context.Context, c *gin.Context) (any, error) {
	return gin.H{"status": "ok"}, nil
}

func (s *Service) endpointEnroll(ctx context.Context, c *gin.Context) (any, error) {
	resp, err := s.apiv1.Enroll(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"challenge": base64.RawURLEncoding.EncodeToString(resp.Challenge)}, nil
}

// registerRequest is the wire shape of round 2 of registration
// (spec §4.1 step 2).
type registerRequest struct {
	Challenge           string   `json:"challenge" validate:"required"`
	AttestationKind     string   `json:"attestation_kind" validate:"required"`
	AppleAttestationB64 string   `json:"apple_attestation,omitempty"`
	GoogleCertChainB64  []string `json:"google_cert_chain,omitempty"`
	GoogleIntegrityJWT  string   `json:"google_integrity_jwt,omitempty"`
	PinPubKeyX          string   `json:"pin_pubkey_x" validate:"required"`
	PinPubKeyY          string   `json:"pin_pubkey_y" validate:"required"`
	PinSalt             string   `json:"pin_salt" validate:"required"`
	PinSignature        string   `json:"pin_signature" validate:"required"`
	InnerDigest         string   `json:"inner_digest" validate:"required"`
	SequenceNumber      int      `json:"sequence_number"`
}

func (s *Service) endpointRegister(ctx context.Context, c *gin.Context) (any, error) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	challenge, err := base64.RawURLEncoding.DecodeString(req.Challenge)
	if err != nil {
		return nil, err
	}
	pinX, err := base64.RawURLEncoding.DecodeString(req.PinPubKeyX)
	if err != nil {
		return nil, err
	}
	pinY, err := base64.RawURLEncoding.DecodeString(req.PinPubKeyY)
	if err != nil {
		return nil, err
	}
	pinSalt, err := base64.RawURLEncoding.DecodeString(req.PinSalt)
	if err != nil {
		return nil, err
	}
	pinSig, err := base64.RawURLEncoding.DecodeString(req.PinSignature)
	if err != nil {
		return nil, err
	}
	innerDigest, err := base64.RawURLEncoding.DecodeString(req.InnerDigest)
	if err != nil {
		return nil, err
	}

	pinPubKey := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     newBigInt(pinX),
		Y:     newBigInt(pinY),
	}

	att := walletattest.Attestation{Kind: walletattest.Kind(req.AttestationKind)}
	switch att.Kind {
	case walletattest.KindApple:
		data, err := base64.RawURLEncoding.DecodeString(req.AppleAttestationB64)
		if err != nil {
			return nil, err
		}
		att.Apple = &walletattest.AppleAttestation{Data: data}
	case walletattest.KindGoogle:
		chain := make([][]byte, 0, len(req.GoogleCertChainB64))
		for _, c64 := range req.GoogleCertChainB64 {
			der, err := base64.RawURLEncoding.DecodeString(c64)
			if err != nil {
				return nil, err
			}
			chain = append(chain, der)
		}
		att.Google = &walletattest.GoogleAttestation{CertificateChain: chain, IntegrityVerdictJWT: req.GoogleIntegrityJWT}
	}

	result, err := s.apiv1.RegisterWithAttestation(ctx, challenge, apiv1.RegistrationPayload{
		Attestation:   att,
		PinPubKey:     pinPubKey,
		PinSalt:       pinSalt,
		PinSignature:  pinSig,
		SequenceNumer: req.SequenceNumber,
	}, innerDigest)
	if err != nil {
		return nil, err
	}

	return gin.H{"wallet_id": result.WalletID, "wallet_certificate": result.WalletCertificate}, nil
}

// challengeRequestWire is round 1's wire shape (spec §4.2 "Round 1").
type challengeRequestWire struct {
	NextSequence      int64  `json:"next_sequence"`
	WalletCertificate string `json:"wallet_certificate" validate:"required"`
	AttestedPubKeyX   string `json:"attested_pubkey_x" validate:"required"`
	AttestedPubKeyY   string `json:"attested_pubkey_y" validate:"required"`
	AttestedSignature string `json:"attested_signature" validate:"required"`
}

func (s *Service) endpointChallenge(ctx context.Context, c *gin.Context) (any, error) {
	walletID := c.Param("wallet_id")

	var req challengeRequestWire
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	attestedKey, err := decodeECPubKey(req.AttestedPubKeyX, req.AttestedPubKeyY)
	if err != nil {
		return nil, err
	}
	sig, err := base64.RawURLEncoding.DecodeString(req.AttestedSignature)
	if err != nil {
		return nil, err
	}

	signed, err := json.Marshal(struct {
		WalletID          string `json:"wallet_id"`
		NextSequence      int64  `json:"next_sequence"`
		WalletCertificate string `json:"wallet_certificate"`
	}{walletID, req.NextSequence, req.WalletCertificate})
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(signed)

	resp, err := s.apiv1.Challenge(ctx, apiv1.ChallengeRequest{
		WalletID:          walletID,
		NextSequence:      req.NextSequence,
		WalletCertificate: req.WalletCertificate,
		AttestedDigest:    digest[:],
		AttestedSignature: sig,
	}, attestedKey)
	if err != nil {
		return nil, err
	}

	return gin.H{"challenge": base64.RawURLEncoding.EncodeToString(resp.Challenge)}, nil
}

// instructionRequestWire is round 2's wire shape: the nested PIN-key then
// attested-key signed envelope (spec §4.2 "Round 2").
type instructionRequestWire struct {
	InstructionName string `json:"instruction_name" validate:"required"`
	Args            string `json:"args"` // base64url, instruction-specific
	Challenge       string `json:"challenge" validate:"required"`
	Sequence        int64  `json:"sequence"`

	PinPubKeyX   string `json:"pin_pubkey_x" validate:"required"`
	PinPubKeyY   string `json:"pin_pubkey_y" validate:"required"`
	PinSignature string `json:"pin_signature" validate:"required"`

	AttestedPubKeyX   string `json:"attested_pubkey_x" validate:"required"`
	AttestedPubKeyY   string `json:"attested_pubkey_y" validate:"required"`
	AttestedSignature string `json:"attested_signature" validate:"required"`
}

func (s *Service) endpointInstruction(ctx context.Context, c *gin.Context) (any, error) {
	walletID := c.Param("wallet_id")

	var req instructionRequestWire
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}

	challenge, err := base64.RawURLEncoding.DecodeString(req.Challenge)
	if err != nil {
		return nil, err
	}
	args, err := base64.RawURLEncoding.DecodeString(req.Args)
	if err != nil {
		return nil, err
	}
	pinKey, err := decodeECPubKey(req.PinPubKeyX, req.PinPubKeyY)
	if err != nil {
		return nil, err
	}
	pinSig, err := base64.RawURLEncoding.DecodeString(req.PinSignature)
	if err != nil {
		return nil, err
	}
	attestedKey, err := decodeECPubKey(req.AttestedPubKeyX, req.AttestedPubKeyY)
	if err != nil {
		return nil, err
	}
	attestedSig, err := base64.RawURLEncoding.DecodeString(req.AttestedSignature)
	if err != nil {
		return nil, err
	}

	inner := apiv1.InnerPayload{
		InstructionName: req.InstructionName,
		Args:            args,
		Challenge:       challenge,
		Sequence:        req.Sequence,
	}
	innerBytes, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	innerDigest := sha256.Sum256(innerBytes)

	envelopeBytes, err := json.Marshal(struct {
		Inner        apiv1.InnerPayload `json:"inner"`
		PinSignature string             `json:"pin_signature"`
	}{inner, req.PinSignature})
	if err != nil {
		return nil, err
	}
	attestedDigest := sha256.Sum256(envelopeBytes)

	result, err := s.apiv1.Instruction(ctx, walletID, apiv1.Envelope{
		Inner:             inner,
		ClaimedPinPubKey:  pinKey,
		InnerDigest:       innerDigest[:],
		PinSignature:      pinSig,
		AttestedDigest:    attestedDigest[:],
		AttestedSignature: attestedSig,
	}, attestedKey)
	if err != nil {
		return nil, err
	}

	return gin.H{"name": result.Name, "data": result.Data}, nil
}
