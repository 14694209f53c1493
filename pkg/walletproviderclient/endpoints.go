package walletproviderclient

import (
	"context"
	"net/http"
)

// EnrollResponse is round 1 of registration (spec §4.1 step 1).
type EnrollResponse struct {
	Challenge string `json:"challenge"`
}

// Enroll requests a fresh enrollment challenge.
func (c *Client) Enroll(ctx context.Context) (*EnrollResponse, error) {
	resp := &EnrollResponse{}
	if err := c.call(ctx, http.MethodPost, "enroll", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RegisterRequest is round 2 of registration (spec §4.1 step 2), mirroring
// internal/walletprovider/httpserver.registerRequest's wire shape.
type RegisterRequest struct {
	Challenge           string   `json:"challenge"`
	AttestationKind     string   `json:"attestation_kind"`
	AppleAttestationB64 string   `json:"apple_attestation,omitempty"`
	GoogleCertChainB64  []string `json:"google_cert_chain,omitempty"`
	GoogleIntegrityJWT  string   `json:"google_integrity_jwt,omitempty"`
	PinPubKeyX          string   `json:"pin_pubkey_x"`
	PinPubKeyY          string   `json:"pin_pubkey_y"`
	PinSalt             string   `json:"pin_salt"`
	PinSignature        string   `json:"pin_signature"`
	InnerDigest         string   `json:"inner_digest"`
	SequenceNumber      int      `json:"sequence_number"`
}

// RegisterResponse carries the newly issued Wallet Certificate
// (spec §4.1 step 4).
type RegisterResponse struct {
	WalletID          string `json:"wallet_id"`
	WalletCertificate string `json:"wallet_certificate"`
}

// Register redeems an enrollment challenge and completes registration.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp := &RegisterResponse{}
	if err := c.call(ctx, http.MethodPost, "register", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ChallengeRequest is round 1 of the instruction protocol
// (spec §4.2 "Round 1").
type ChallengeRequest struct {
	NextSequence      int64  `json:"next_sequence"`
	WalletCertificate string `json:"wallet_certificate"`
	AttestedPubKeyX   string `json:"attested_pubkey_x"`
	AttestedPubKeyY   string `json:"attested_pubkey_y"`
	AttestedSignature string `json:"attested_signature"`
}

// ChallengeResponse carries the fresh instruction challenge.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// Challenge begins round 1 of the instruction protocol for walletID.
func (c *Client) Challenge(ctx context.Context, walletID string, req ChallengeRequest) (*ChallengeResponse, error) {
	resp := &ChallengeResponse{}
	if err := c.call(ctx, http.MethodPost, "wallet/"+walletID+"/challenge", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// InstructionRequest is round 2 of the instruction protocol: the nested
// PIN-key-then-attested-key signed envelope (spec §4.2 "Round 2").
type InstructionRequest struct {
	InstructionName string `json:"instruction_name"`
	Args            string `json:"args"`
	Challenge       string `json:"challenge"`
	Sequence        int64  `json:"sequence"`

	PinPubKeyX   string `json:"pin_pubkey_x"`
	PinPubKeyY   string `json:"pin_pubkey_y"`
	PinSignature string `json:"pin_signature"`

	AttestedPubKeyX   string `json:"attested_pubkey_x"`
	AttestedPubKeyY   string `json:"attested_pubkey_y"`
	AttestedSignature string `json:"attested_signature"`
}

// InstructionResponse carries the wallet provider's instruction result.
type InstructionResponse struct {
	Name string `json:"name"`
	Data any    `json:"data"`
}

// Instruction executes round 2 of the instruction protocol for walletID.
func (c *Client) Instruction(ctx context.Context, walletID string, req InstructionRequest) (*InstructionResponse, error) {
	resp := &InstructionResponse{}
	if err := c.call(ctx, http.MethodPost, "wallet/"+walletID+"/instruction", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
