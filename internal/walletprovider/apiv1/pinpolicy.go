// Package apiv1 implements the wallet provider's public API: wallet
// registration (spec §4.1) and the PIN-protected instruction protocol
// (spec §4.2), grounded on internal/wallet/apiv1's Client{cfg,db,log,
// tracer} shape and original_source's
// wallet_provider/service/src/account_server/instructions.rs and
// wallet_provider/service/src/pin_policy.rs for the protocol semantics.
package apiv1

import (
	"time"

	"github.com/edi-wallet/core/internal/walletprovider/db"
	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/walleterrors"
)

// PinState is an alias for the persisted PIN bookkeeping record; the
// state machine below is pure business logic operating on it.
type PinState = db.PinState

// NewPinState returns the initial, unconsumed PIN state for a freshly
// registered wallet.
func NewPinState(policy model.PinPolicy) PinState {
	return PinState{
		RoundIndex:          0,
		AttemptsLeftInRound: policy.AttemptsPerRound,
	}
}

// checkTimeout returns PinTimeout if the wallet is currently within a
// between-rounds cooldown (spec §4.2 "during a timeout: any attempt ->
// PinTimeout{time_left}").
func checkTimeout(p PinState, now time.Time) error {
	if p.RoundEndAt.IsZero() || !now.Before(p.RoundEndAt) {
		return nil
	}
	return walleterrors.WithDetail(walleterrors.KindPinTimeout, walleterrors.PinTimeoutDetail{
		TimeLeftSeconds: int64(p.RoundEndAt.Sub(now).Seconds()),
	})
}

// OnCorrectPin resets the PIN state after a verified PIN-key signature
// (spec §4.2 "on correct PIN: counters reset").
func OnCorrectPin(policy model.PinPolicy) PinState {
	return NewPinState(policy)
}

// OnIncorrectPin advances the PIN state after a failed PIN-key signature
// and returns the error the instruction round must surface. now is
// injected for deterministic testing.
func OnIncorrectPin(policy model.PinPolicy, state PinState, now time.Time) (PinState, error) {
	if state.Blocked {
		return state, walleterrors.New(walleterrors.KindAccountBlocked)
	}
	if err := checkTimeout(state, now); err != nil {
		return state, err
	}

	isFinalRound := state.RoundIndex >= len(policy.TimeoutSeconds)

	state.AttemptsLeftInRound--
	if state.AttemptsLeftInRound > 0 {
		return state, walleterrors.WithDetail(walleterrors.KindIncorrectPin, walleterrors.IncorrectPinDetail{
			AttemptsLeftInRound: state.AttemptsLeftInRound,
			IsFinalRound:        isFinalRound,
		})
	}

	if isFinalRound {
		state.Blocked = true
		return state, walleterrors.New(walleterrors.KindAccountBlocked)
	}

	timeout := time.Duration(policy.TimeoutSeconds[state.RoundIndex]) * time.Second
	state.RoundEndAt = now.Add(timeout)
	state.RoundIndex++
	state.AttemptsLeftInRound = policy.AttemptsPerRound
	return state, walleterrors.WithDetail(walleterrors.KindIncorrectPin, walleterrors.IncorrectPinDetail{
		AttemptsLeftInRound: 0,
		IsFinalRound:        false,
	})
}

// CheckAttempt must be called before verifying a PIN-key signature; it
// rejects the attempt outright if the wallet is blocked or within a
// timeout window, without consuming an attempt.
func CheckAttempt(state PinState, now time.Time) error {
	if state.Blocked {
		return walleterrors.New(walleterrors.KindAccountBlocked)
	}
	return checkTimeout(state, now)
}
