package apiv1

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/edi-wallet/core/internal/walletprovider/db"
	"github.com/edi-wallet/core/pkg/pinkey"
	"github.com/edi-wallet/core/pkg/poa"
	"github.com/edi-wallet/core/pkg/walleterrors"
	"github.com/edi-wallet/core/pkg/wua"
)

// ChallengeRequest is round 1 of the instruction protocol (spec §4.2).
type ChallengeRequest struct {
	WalletID          string
	NextSequence      int64
	WalletCertificate string
	AttestedDigest    []byte // sha256(wallet_id || next_seq || wallet_certificate)
	AttestedSignature []byte
}

// ChallengeResponse is round 1's reply: a fresh 32-byte challenge.
type ChallengeResponse struct {
	Challenge []byte
}

// Challenge begins round 1 of the instruction protocol: it validates the
// wallet isn't blocked/revoked, checks strict sequence-number
// monotonicity, verifies the attested-key signature, and issues a fresh
// challenge (spec §4.2 "Round 1").
func (c *Client) Challenge(ctx context.Context, req ChallengeRequest, attestedKey *ecdsa.PublicKey) (*ChallengeResponse, error) {
	ctx, span := c.tracer.Start(ctx, "walletprovider:challenge")
	defer span.End()

	w, err := c.db.GetWallet(ctx, req.WalletID)
	if err == db.ErrNoDocuments {
		return nil, walleterrors.New(walleterrors.KindNotRegistered)
	}
	if err != nil {
		return nil, err
	}
	if w.Revoked || w.PinState.Blocked {
		return nil, walleterrors.New(walleterrors.KindAccountBlocked)
	}
	if req.NextSequence != w.SequenceNumber {
		return nil, walleterrors.New(walleterrors.KindSequenceMismatch)
	}
	if !ecdsa.VerifyASN1(attestedKey, req.AttestedDigest, req.AttestedSignature) {
		return nil, walleterrors.New(walleterrors.KindAttestationVerificationFail)
	}

	challenge := make([]byte, ChallengeLength)
	if _, err := rand.Read(challenge); err != nil {
		return nil, err
	}
	if err := c.db.SetPendingChallenge(ctx, req.WalletID, challenge); err != nil {
		return nil, err
	}

	return &ChallengeResponse{Challenge: challenge}, nil
}

// InnerPayload is the PIN-key-signed body of round 2 (spec §4.2
// "Round 2", step 1).
type InnerPayload struct {
	InstructionName string
	Args            []byte // instruction-specific arguments, opaque here
	Challenge       []byte
	Sequence        int64
}

// Envelope is round 2's wire shape: an inner PIN-key-signed payload,
// wrapped in an attested-key signature over the same bytes
// (spec §4.2 "Round 2", steps 1-2). The httpserver layer is responsible
// for parsing the wire envelope into this already-digested shape.
type Envelope struct {
	Inner InnerPayload

	ClaimedPinPubKey *ecdsa.PublicKey
	InnerDigest      []byte // sha256 of the canonical encoding of Inner
	PinSignature     []byte

	AttestedDigest    []byte // sha256 of the canonical encoding of the envelope
	AttestedSignature []byte
}

// InstructionResult is the WP-signed result returned for every
// instruction (spec §4.2 "all return a WP-signed InstructionResult<T>").
type InstructionResult struct {
	Name string
	Data any
}

// Instruction verifies and dispatches round 2 of the instruction
// protocol (spec §4.2 "Round 2").
func (c *Client) Instruction(ctx context.Context, walletID string, env Envelope, attestedKey *ecdsa.PublicKey) (*InstructionResult, error) {
	ctx, span := c.tracer.Start(ctx, "walletprovider:instruction")
	defer span.End()

	w, err := c.db.GetWallet(ctx, walletID)
	if err == db.ErrNoDocuments {
		return nil, walleterrors.New(walleterrors.KindNotRegistered)
	}
	if err != nil {
		return nil, err
	}
	if w.Revoked {
		return nil, walleterrors.New(walleterrors.KindAccountBlocked)
	}

	if !ecdsa.VerifyASN1(attestedKey, env.AttestedDigest, env.AttestedSignature) {
		return nil, walleterrors.New(walleterrors.KindAttestationVerificationFail)
	}

	if err := CheckAttempt(w.PinState, time.Now()); err != nil {
		return nil, err
	}

	usingNewKey, pinOK := c.verifyPinSignature(w, env)
	if !pinOK {
		newState, pinErr := OnIncorrectPin(c.cfg.WalletProvider.PinPolicy, w.PinState, time.Now())
		if setErr := c.db.SetPinState(ctx, walletID, newState); setErr != nil {
			return nil, setErr
		}
		if newState.Blocked {
			if setErr := c.db.SetBlocked(ctx, walletID); setErr != nil {
				return nil, setErr
			}
		}
		return nil, pinErr
	}

	if !bytesEqual(env.Inner.Challenge, w.PendingChallenge) {
		return nil, walleterrors.New(walleterrors.KindChallengeMismatch)
	}
	if err := c.db.ClearPendingChallenge(ctx, walletID); err != nil {
		return nil, err
	}

	if err := c.db.IncrementSequence(ctx, walletID, env.Inner.Sequence); err != nil {
		if err == db.ErrNoDocuments {
			return nil, walleterrors.New(walleterrors.KindSequenceMismatch)
		}
		return nil, err
	}

	if err := c.db.SetPinState(ctx, walletID, OnCorrectPin(c.cfg.WalletProvider.PinPolicy)); err != nil {
		return nil, err
	}

	if usingNewKey && w.PendingChange != nil && !w.PendingChange.Committed {
		if err := c.db.CommitPendingChange(ctx, walletID, w.PendingChange.NewPinPubKeyHash); err != nil {
			return nil, err
		}
	}

	return c.dispatch(ctx, w, env.Inner)
}

// verifyPinSignature checks the inner payload's PIN-key signature
// against the wallet's active pin_pubkey_hash, or — if a PIN change is
// pending and uncommitted — against either the old or new hash
// (spec §4.2 "Change-PIN has a non-atomic commit": "the WP accepts
// signatures from either pin pubkey but on the first successful new-key
// signature it auto-commits").
func (c *Client) verifyPinSignature(w *db.WalletRecord, env Envelope) (usingNewKey, ok bool) {
	if env.ClaimedPinPubKey == nil {
		return false, false
	}
	claimedHash := pinkey.Hash(w.PinSalt, env.ClaimedPinPubKey)
	sigValid := ecdsa.VerifyASN1(env.ClaimedPinPubKey, env.InnerDigest, env.PinSignature)

	if w.PendingChange != nil && !w.PendingChange.Committed {
		if bytesEqual(claimedHash, w.PendingChange.NewPinPubKeyHash) {
			return true, sigValid
		}
		if bytesEqual(claimedHash, w.PendingChange.OldPinPubKeyHash) {
			return false, sigValid
		}
		return false, false
	}
	if !bytesEqual(claimedHash, w.PinPubKeyHash) {
		return false, false
	}
	return false, sigValid
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dispatch executes the named instruction against the wallet's now
// sequence-advanced, PIN-verified state (spec §4.2 "Instructions").
func (c *Client) dispatch(ctx context.Context, w *db.WalletRecord, inner InnerPayload) (*InstructionResult, error) {
	switch inner.InstructionName {
	case "CheckPin":
		return c.checkPin(ctx, w)
	case "IssueWte":
		return c.issueWte(ctx, w)
	case "GenerateKey":
		return c.generateKey(ctx, w)
	case "Sign":
		return c.sign(ctx, w, inner)
	case "ChangePinStart":
		return c.changePinStart(ctx, w, inner)
	case "ChangePinCommit":
		if w.PendingChange == nil {
			return nil, walleterrors.New(walleterrors.KindUnexpectedState)
		}
		return &InstructionResult{Name: inner.InstructionName}, c.db.CommitPendingChange(ctx, w.WalletID, w.PendingChange.NewPinPubKeyHash)
	case "ChangePinRollback":
		return &InstructionResult{Name: inner.InstructionName}, c.db.SetPendingChange(ctx, w.WalletID, nil)
	case "ConstructPoa":
		return c.constructPoa(ctx, w, inner)
	default:
		return nil, walleterrors.New(walleterrors.KindInstructionValidation)
	}
}

// checkPin mints a liveness WUA bound to an ephemeral, unpersisted holder
// key: CheckPin only proves the wallet still controls its PIN key, it
// does not hand out a key_identifier the holder can reference later
// (spec §4.2 "CheckPin"). Compare issueWte, which persists its key.
func (c *Client) checkPin(ctx context.Context, w *db.WalletRecord) (*InstructionResult, error) {
	holderKey, _, err := c.generateAndStoreKey(ctx, w.WalletID)
	if err != nil {
		return nil, err
	}
	idx, err := c.db.AllocateStatusIndex(ctx, c.cfg.WalletProvider.StatusListURI)
	if err != nil {
		return nil, err
	}
	token, err := wua.Issue(
		c.cfg.WalletProvider.Identifier,
		w.WalletID,
		&holderKey.PublicKey,
		c.cfg.WalletProvider.StatusListURI,
		idx,
		c.wuaKey,
		c.cfg.WalletProvider.WUAIssuerKeyID,
		time.Duration(c.cfg.WalletProvider.WUATTLSeconds)*time.Second,
	)
	if err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "CheckPin", Data: map[string]string{"wua": token}}, nil
}

// issueWte mints a WUA bound to a WP-generated, persisted holder key and
// returns its key_identifier so later Sign/ConstructPoa instructions can
// reference it (spec §4.2 "IssueWte", §8).
func (c *Client) issueWte(ctx context.Context, w *db.WalletRecord) (*InstructionResult, error) {
	holderKey, keyID, err := c.generateAndStoreKey(ctx, w.WalletID)
	if err != nil {
		return nil, err
	}
	idx, err := c.db.AllocateStatusIndex(ctx, c.cfg.WalletProvider.StatusListURI)
	if err != nil {
		return nil, err
	}
	token, err := wua.Issue(
		c.cfg.WalletProvider.Identifier,
		w.WalletID,
		&holderKey.PublicKey,
		c.cfg.WalletProvider.StatusListURI,
		idx,
		c.wuaKey,
		c.cfg.WalletProvider.WUAIssuerKeyID,
		time.Duration(c.cfg.WalletProvider.WUATTLSeconds)*time.Second,
	)
	if err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "IssueWte", Data: map[string]string{
		"wua":            token,
		"key_identifier": keyID,
	}}, nil
}

// generateKey mints and persists a WP-generated holder key with no WUA
// attached, for instructions that need a fresh credential-binding key
// outside the IssueWte flow (spec §4.2 "GenerateKey").
func (c *Client) generateKey(ctx context.Context, w *db.WalletRecord) (*InstructionResult, error) {
	holderKey, keyID, err := c.generateAndStoreKey(ctx, w.WalletID)
	if err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "GenerateKey", Data: map[string]string{
		"key_identifier": keyID,
		"public_key_x":   hex.EncodeToString(holderKey.PublicKey.X.Bytes()),
		"public_key_y":   hex.EncodeToString(holderKey.PublicKey.Y.Bytes()),
	}}, nil
}

// signArgs is the JSON shape of inner.Args for the Sign instruction: the
// key_identifier to sign with, and the digest to sign over, both
// produced by the holder from the credential/PoP payload it wants bound.
type signArgs struct {
	KeyIdentifier string `json:"key_identifier"`
	Digest        string `json:"digest"` // hex-encoded
}

// sign produces a raw ASN.1 ECDSA signature over the caller-supplied
// digest using the WP-generated key named by key_identifier
// (spec §4.2 "Sign", §8).
func (c *Client) sign(ctx context.Context, w *db.WalletRecord, inner InnerPayload) (*InstructionResult, error) {
	var args signArgs
	if err := json.Unmarshal(inner.Args, &args); err != nil {
		return nil, walleterrors.New(walleterrors.KindInstructionValidation)
	}
	digest, err := hex.DecodeString(args.Digest)
	if err != nil {
		return nil, walleterrors.New(walleterrors.KindInstructionValidation)
	}

	rec, err := c.db.GetGeneratedKey(ctx, w.WalletID, args.KeyIdentifier)
	if err == db.ErrNoDocuments {
		return nil, walleterrors.New(walleterrors.KindKeyNotFound)
	}
	if err != nil {
		return nil, err
	}
	priv, err := c.unsealPrivateKey(rec)
	if err != nil {
		return nil, err
	}

	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest)
	if err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "Sign", Data: map[string]string{
		"signature": hex.EncodeToString(sig),
	}}, nil
}

func (c *Client) changePinStart(ctx context.Context, w *db.WalletRecord, inner InnerPayload) (*InstructionResult, error) {
	newHash := sha256.Sum256(inner.Args)
	change := &db.PendingPinChange{
		OldPinPubKeyHash: w.PinPubKeyHash,
		NewPinPubKeyHash: newHash[:],
		Committed:        false,
	}
	if err := c.db.SetPendingChange(ctx, w.WalletID, change); err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "ChangePinStart"}, nil
}

// poaArgs is the JSON shape of inner.Args for the ConstructPoa
// instruction: the keys to associate, named by the key_identifiers
// returned from prior GenerateKey/IssueWte calls, plus the aud/nonce the
// relying party expects the PoA to carry (spec §4.2 "ConstructPoa", §4.7).
type poaArgs struct {
	Audience       string   `json:"aud"`
	Nonce          string   `json:"nonce"`
	KeyIdentifiers []string `json:"key_identifiers"`
}

// constructPoa builds a Proof of Association over the WP-generated keys
// named in inner.Args, unwrapping each under c.hsmKey (spec §4.2
// "ConstructPoa", §4.7). The issuer identifier is used as the PoA's
// "iss", matching the WUA's issuer claim.
func (c *Client) constructPoa(ctx context.Context, w *db.WalletRecord, inner InnerPayload) (*InstructionResult, error) {
	var args poaArgs
	if err := json.Unmarshal(inner.Args, &args); err != nil {
		return nil, walleterrors.New(walleterrors.KindInstructionValidation)
	}
	if len(args.KeyIdentifiers) < 2 {
		return nil, walleterrors.New(walleterrors.KindUnexpectedSignatureCount)
	}

	keys := make([]*ecdsa.PrivateKey, 0, len(args.KeyIdentifiers))
	for _, keyID := range args.KeyIdentifiers {
		rec, err := c.db.GetGeneratedKey(ctx, w.WalletID, keyID)
		if err == db.ErrNoDocuments {
			return nil, walleterrors.New(walleterrors.KindKeyNotFound)
		}
		if err != nil {
			return nil, err
		}
		priv, err := c.unsealPrivateKey(rec)
		if err != nil {
			return nil, err
		}
		keys = append(keys, priv)
	}

	p, err := poa.Construct(args.Audience, c.cfg.WalletProvider.Identifier, args.Nonce, keys)
	if err != nil {
		return nil, err
	}
	return &InstructionResult{Name: "ConstructPoa", Data: p}, nil
}
