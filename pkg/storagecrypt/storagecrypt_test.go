package storagecrypt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edi-wallet/core/pkg/logger"
)

func testKey(t *testing.T) [KeySize]byte {
	t.Helper()
	var k [KeySize]byte
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func openTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewSimple("test")
	s, err := Open(context.Background(), filepath.Join(dir, "wallet.db"), testKey(t), nil, log)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKeyedDataRoundTrip(t *testing.T) {
	s := openTestService(t)
	ctx := context.Background()

	_, err := s.GetKeyed(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.PutKeyed(ctx, "pin_salt", []byte("salt-bytes")))
	got, err := s.GetKeyed(ctx, "pin_salt")
	require.NoError(t, err)
	assert.Equal(t, []byte("salt-bytes"), got)

	require.NoError(t, s.PutKeyed(ctx, "pin_salt", []byte("new-salt")))
	got, err = s.GetKeyed(ctx, "pin_salt")
	require.NoError(t, err)
	assert.Equal(t, []byte("new-salt"), got)

	require.NoError(t, s.DeleteKeyed(ctx, "pin_salt"))
	_, err = s.GetKeyed(ctx, "pin_salt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttestationRoundTrip(t *testing.T) {
	s := openTestService(t)
	ctx := context.Background()

	require.NoError(t, s.PutAttestation(ctx, "att-1", "sd-jwt-vc", []byte("credential-bytes")))
	kind, raw, err := s.GetAttestation(ctx, "att-1")
	require.NoError(t, err)
	assert.Equal(t, "sd-jwt-vc", kind)
	assert.Equal(t, []byte("credential-bytes"), raw)

	require.NoError(t, s.DeleteAttestation(ctx, "att-1"))
	_, _, err = s.GetAttestation(ctx, "att-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsAppendAndList(t *testing.T) {
	s := openTestService(t)
	ctx := context.Background()

	seq1, err := s.AppendEvent(ctx, []byte("issued credential X"))
	require.NoError(t, err)
	seq2, err := s.AppendEvent(ctx, []byte("disclosed credential X"))
	require.NoError(t, err)
	assert.Less(t, seq1, seq2)

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, []byte("issued credential X"), events[0])
	assert.Equal(t, []byte("disclosed credential X"), events[1])
}

func TestDestroyRemovesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.db")
	s, err := Open(context.Background(), path, testKey(t), nil, logger.NewSimple("test"))
	require.NoError(t, err)

	require.NoError(t, s.PutKeyed(context.Background(), "k", []byte("v")))
	require.NoError(t, s.Destroy())

	_, err = Open(context.Background(), path, testKey(t), nil, logger.NewSimple("test"))
	require.NoError(t, err)
}
