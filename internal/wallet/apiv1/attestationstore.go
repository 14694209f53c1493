package apiv1

import (
	"context"
	"encoding/json"
	"time"
)

// StoreAttestation persists one credential copy (an mdoc or SD-JWT VC,
// each issued to its own holder key) in the wallet's local encrypted
// store (spec §4.5).
func (w *WalletSession) StoreAttestation(ctx context.Context, id, kind string, raw []byte) error {
	ctx, span := w.tracer.Start(ctx, "wallet:store_attestation")
	defer span.End()
	return w.store.PutAttestation(ctx, id, kind, raw)
}

// LoadAttestation returns one previously stored credential copy.
func (w *WalletSession) LoadAttestation(ctx context.Context, id string) (kind string, raw []byte, err error) {
	ctx, span := w.tracer.Start(ctx, "wallet:load_attestation")
	defer span.End()
	return w.store.GetAttestation(ctx, id)
}

// DeleteAttestation removes a credential copy, e.g. after it is consumed
// in a single-use disclosure or superseded by a fresh batch issuance.
func (w *WalletSession) DeleteAttestation(ctx context.Context, id string) error {
	ctx, span := w.tracer.Start(ctx, "wallet:delete_attestation")
	defer span.End()
	return w.store.DeleteAttestation(ctx, id)
}

// HistoryEvent is one entry in the wallet's local activity log: an
// issuance, a disclosure, or an instruction-protocol round.
type HistoryEvent struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Detail    string    `json:"detail"`
}

// AppendHistory records one activity-log entry.
func (w *WalletSession) AppendHistory(ctx context.Context, ev HistoryEvent) error {
	ctx, span := w.tracer.Start(ctx, "wallet:append_history")
	defer span.End()

	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = w.store.AppendEvent(ctx, raw)
	return err
}

// History returns the full local activity log, oldest first.
func (w *WalletSession) History(ctx context.Context) ([]HistoryEvent, error) {
	ctx, span := w.tracer.Start(ctx, "wallet:history")
	defer span.End()

	raws, err := w.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]HistoryEvent, 0, len(raws))
	for _, raw := range raws {
		var ev HistoryEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
