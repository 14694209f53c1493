package db

import "time"

// PinState tracks a wallet's PIN-attempt bookkeeping across instruction
// rounds (spec §4.2 "PIN policy"). It is persisted alongside the wallet
// record so it survives process restarts.
type PinState struct {
	RoundIndex          int       `bson:"round_index"`
	AttemptsLeftInRound int       `bson:"attempts_left_in_round"`
	RoundEndAt          time.Time `bson:"round_end_at"`
	Blocked             bool      `bson:"blocked"`
}

// PendingPinChange records an uncommitted ChangePinStart (spec §4.2
// "Change-PIN has a non-atomic commit").
type PendingPinChange struct {
	OldPinPubKeyHash []byte `bson:"old_pin_pubkey_hash"`
	NewPinPubKeyHash []byte `bson:"new_pin_pubkey_hash"`
	Committed        bool   `bson:"committed"`
}

// WalletRecord is the wallet provider's persisted view of one wallet
// (spec §3 "Wallet Certificate", §4.1, §4.2).
type WalletRecord struct {
	WalletID        string            `bson:"_id"`
	HWPubKey        []byte            `bson:"hw_pubkey"`
	PinSalt         []byte            `bson:"pin_salt"`
	PinPubKeyHash   []byte            `bson:"pin_pubkey_hash"`
	AttestationKind string            `bson:"attestation_kind"`
	Counter         uint32            `bson:"counter"`
	SequenceNumber  int64             `bson:"sequence_number"`
	PinState        PinState          `bson:"pin_state"`
	PendingChange   *PendingPinChange `bson:"pending_change,omitempty"`
	Revoked         bool              `bson:"revoked"`

	// PendingChallenge is the outstanding round-1 challenge for the
	// instruction protocol, cleared once round 2 redeems it (spec §4.2).
	PendingChallenge []byte `bson:"pending_challenge,omitempty"`
}

// GeneratedKey is one WP-generated key, referenced by KeyID, created by
// the GenerateKey and IssueWte instructions (spec §4.2, §8: "the holder
// key... is a WP-generated key referenced by a stored key_identifier").
// SealedPrivateKey is the key's scalar wrapped under the WP's HSM
// wrapping key (pkg/walletprovider/apiv1's software stand-in for real
// HSM key wrapping) — never the raw scalar.
type GeneratedKey struct {
	WalletID         string `bson:"wallet_id"`
	KeyID            string `bson:"_id"`
	Nonce            []byte `bson:"nonce"`
	SealedPrivateKey []byte `bson:"sealed_private_key"`
	PublicKeyX       []byte `bson:"public_key_x"`
	PublicKeyY       []byte `bson:"public_key_y"`
}
