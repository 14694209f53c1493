package db

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pendingEnrollment is a transient, TTL-indexed record of an outstanding
// enrollment challenge (spec §4.1 step 1).
type pendingEnrollment struct {
	ID        string    `bson:"_id"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func challengeKey(challenge []byte) string {
	return base64.RawURLEncoding.EncodeToString(challenge)
}

// PutPendingEnrollment persists a freshly issued enrollment challenge.
func (s *Service) PutPendingEnrollment(ctx context.Context, challenge []byte, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:put_pending_enrollment")
	defer span.End()

	_, err := s.enrollments.InsertOne(ctx, pendingEnrollment{ID: challengeKey(challenge), ExpiresAt: expiresAt})
	return err
}

// ConsumePendingEnrollment atomically deletes and returns the expiry of an
// outstanding enrollment challenge, so it cannot be redeemed twice.
func (s *Service) ConsumePendingEnrollment(ctx context.Context, challenge []byte) (time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:consume_pending_enrollment")
	defer span.End()

	var rec pendingEnrollment
	err := s.enrollments.FindOneAndDelete(ctx, bson.M{"_id": challengeKey(challenge)}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return time.Time{}, ErrNoDocuments
	}
	if err != nil {
		return time.Time{}, err
	}
	return rec.ExpiresAt, nil
}

// CreateWallet inserts a newly registered wallet record.
func (s *Service) CreateWallet(ctx context.Context, w WalletRecord) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:create_wallet")
	defer span.End()

	_, err := s.wallets.InsertOne(ctx, w)
	return err
}

// GetWallet returns the wallet record for walletID.
func (s *Service) GetWallet(ctx context.Context, walletID string) (*WalletRecord, error) {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:get_wallet")
	defer span.End()

	var w WalletRecord
	err := s.wallets.FindOne(ctx, bson.M{"_id": walletID}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SetPendingChallenge records the round-1 instruction challenge.
func (s *Service) SetPendingChallenge(ctx context.Context, walletID string, challenge []byte) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:set_pending_challenge")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{"$set": bson.M{"pending_challenge": challenge}})
	return err
}

// ClearPendingChallenge clears the round-1 instruction challenge once
// redeemed (spec §4.2 round 2: "challenge matches the stored challenge
// exactly (then clears it)").
func (s *Service) ClearPendingChallenge(ctx context.Context, walletID string) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:clear_pending_challenge")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{"$unset": bson.M{"pending_challenge": ""}})
	return err
}

// IncrementSequence atomically advances the wallet's stored sequence
// number, the way FindOneAndUpdate is used elsewhere in the teacher's
// Mongo-backed services for optimistic, single-document transitions.
func (s *Service) IncrementSequence(ctx context.Context, walletID string, expected int64) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:increment_sequence")
	defer span.End()

	res, err := s.wallets.UpdateOne(ctx,
		bson.M{"_id": walletID, "sequence_number": expected},
		bson.M{"$inc": bson.M{"sequence_number": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocuments
	}
	return nil
}

// SetPinState persists the wallet's updated PIN-attempt bookkeeping.
func (s *Service) SetPinState(ctx context.Context, walletID string, state PinState) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:set_pin_state")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{"$set": bson.M{"pin_state": state}})
	return err
}

// SetPendingChange records an uncommitted ChangePinStart (spec §4.2).
func (s *Service) SetPendingChange(ctx context.Context, walletID string, change *PendingPinChange) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:set_pending_change")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{"$set": bson.M{"pending_change": change}})
	return err
}

// CommitPendingChange flips the wallet's pin_pubkey_hash to the pending
// new hash and clears the pending-change record.
func (s *Service) CommitPendingChange(ctx context.Context, walletID string, newHash []byte) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:commit_pending_change")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{
		"$set":   bson.M{"pin_pubkey_hash": newHash},
		"$unset": bson.M{"pending_change": ""},
	})
	return err
}

// SetBlocked marks a wallet blocked (spec §4.2 "after final round
// exhausted -> AccountBlocked; WP marks user blocked").
func (s *Service) SetBlocked(ctx context.Context, walletID string) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:set_blocked")
	defer span.End()

	_, err := s.wallets.UpdateByID(ctx, walletID, bson.M{"$set": bson.M{"pin_state.blocked": true}})
	return err
}

// counter is an append-only allocation counter document (spec §4.6:
// "Allocation is append-only... one position per credential").
type counter struct {
	ID   string `bson:"_id"`
	Next int64  `bson:"next"`
}

// AllocateStatusIndex atomically reserves the next free position in the
// named status list and returns it. Every WUA issuance must call this
// exactly once per token so no two wallets ever share a status-list
// index (spec §4.6).
func (s *Service) AllocateStatusIndex(ctx context.Context, statusListURI string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:allocate_status_index")
	defer span.End()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc counter
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": statusListURI},
		bson.M{"$inc": bson.M{"next": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Next - 1, nil
}

// CreateGeneratedKey persists a WP-generated key's sealed scalar,
// referenced by keyID (spec §8: "holder key ... referenced by a stored
// key_identifier").
func (s *Service) CreateGeneratedKey(ctx context.Context, key GeneratedKey) error {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:create_generated_key")
	defer span.End()

	_, err := s.generatedKeys.InsertOne(ctx, key)
	return err
}

// GetGeneratedKey returns one WP-generated key record by keyID, scoped to
// walletID so one wallet cannot reference another's keys.
func (s *Service) GetGeneratedKey(ctx context.Context, walletID, keyID string) (*GeneratedKey, error) {
	ctx, span := s.tracer.Start(ctx, "walletprovider:db:get_generated_key")
	defer span.End()

	var key GeneratedKey
	err := s.generatedKeys.FindOne(ctx, bson.M{"_id": keyID, "wallet_id": walletID}).Decode(&key)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return &key, nil
}
