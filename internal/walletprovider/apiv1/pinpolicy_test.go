package apiv1

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edi-wallet/core/pkg/model"
	"github.com/edi-wallet/core/pkg/walleterrors"
)

func testPolicy() model.PinPolicy {
	return model.PinPolicy{
		AttemptsPerRound:  3,
		TimeoutSeconds:    []int{60, 300},
		RoundsBeforeBlock: 3,
	}
}

func TestOnIncorrectPin_WithinRound(t *testing.T) {
	policy := testPolicy()
	state := NewPinState(policy)
	now := time.Now()

	state, err := OnIncorrectPin(policy, state, now)
	require.Error(t, err)
	var werr *walleterrors.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, walleterrors.KindIncorrectPin, werr.Kind)
	detail := werr.Detail.(walleterrors.IncorrectPinDetail)
	assert.Equal(t, 2, detail.AttemptsLeftInRound)
	assert.False(t, detail.IsFinalRound)
}

func TestOnIncorrectPin_RoundExhaustedEntersTimeout(t *testing.T) {
	policy := testPolicy()
	state := NewPinState(policy)
	now := time.Now()

	for i := 0; i < 2; i++ {
		var err error
		state, err = OnIncorrectPin(policy, state, now)
		require.Error(t, err)
	}
	state, err := OnIncorrectPin(policy, state, now)
	require.Error(t, err)
	var werr *walleterrors.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, walleterrors.KindIncorrectPin, werr.Kind)
	detail := werr.Detail.(walleterrors.IncorrectPinDetail)
	assert.Equal(t, 0, detail.AttemptsLeftInRound)
	assert.False(t, detail.IsFinalRound)
	assert.Equal(t, 1, state.RoundIndex)

	err = CheckAttempt(state, now.Add(30*time.Second))
	require.Error(t, err)
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, walleterrors.KindPinTimeout, werr.Kind)
}

func TestOnIncorrectPin_FinalRoundBlocksAccount(t *testing.T) {
	policy := testPolicy()
	state := NewPinState(policy)
	now := time.Now()

	// Exhaust round 0 and round 1 (2 timeouts configured), landing on the
	// final (terminal) round.
	for round := 0; round < len(policy.TimeoutSeconds); round++ {
		for i := 0; i < policy.AttemptsPerRound-1; i++ {
			var err error
			state, err = OnIncorrectPin(policy, state, now)
			require.Error(t, err)
		}
		var err error
		state, err = OnIncorrectPin(policy, state, now)
		require.Error(t, err)
		now = state.RoundEndAt.Add(time.Second)
	}

	require.Equal(t, len(policy.TimeoutSeconds), state.RoundIndex)

	for i := 0; i < policy.AttemptsPerRound-1; i++ {
		var err error
		state, err = OnIncorrectPin(policy, state, now)
		require.Error(t, err)
		var werr *walleterrors.Error
		require.True(t, errors.As(err, &werr))
		detail := werr.Detail.(walleterrors.IncorrectPinDetail)
		assert.True(t, detail.IsFinalRound)
	}

	state, err := OnIncorrectPin(policy, state, now)
	require.Error(t, err)
	var werr *walleterrors.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, walleterrors.KindAccountBlocked, werr.Kind)
	assert.True(t, state.Blocked)

	_, err = OnIncorrectPin(policy, state, now)
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, walleterrors.KindAccountBlocked, werr.Kind)
}

func TestOnCorrectPin_ResetsState(t *testing.T) {
	policy := testPolicy()
	state := NewPinState(policy)
	state, _ = OnIncorrectPin(policy, state, time.Now())
	assert.Equal(t, 2, state.AttemptsLeftInRound)

	reset := OnCorrectPin(policy)
	assert.Equal(t, policy.AttemptsPerRound, reset.AttemptsLeftInRound)
	assert.Equal(t, 0, reset.RoundIndex)
	assert.False(t, reset.Blocked)
}
