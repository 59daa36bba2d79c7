package store

import (
	"context"
	"errors"
	"testing"

	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory KeyValue used to test the Adapter's degradation
// semantics without a database.
type memKV struct {
	records map[string][]byte
	getErr  error
	setErr  error
}

func newMemKV() *memKV {
	return &memKV{records: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	raw, ok := m.records[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return raw, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.records[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.records, key)
	return nil
}

func TestAdapter_RoundTrip(t *testing.T) {
	kv := newMemKV()
	a := NewAdapter(kv, logger.Nop())
	ctx := context.Background()

	require.True(t, a.Store(ctx, KeyFavorites, []string{"1", "2"}))

	got := []string{}
	require.True(t, a.Load(ctx, KeyFavorites, &got))
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestAdapterLoad_AbsentKey_KeepsDefault(t *testing.T) {
	a := NewAdapter(newMemKV(), logger.Nop())

	got := []string{"default"}
	ok := a.Load(context.Background(), KeyCart, &got)

	assert.False(t, ok)
	assert.Equal(t, []string{"default"}, got, "default must survive a miss")
}

func TestAdapterLoad_CorruptedRecord_KeepsDefault(t *testing.T) {
	kv := newMemKV()
	kv.records[KeyModels] = []byte(`{broken json`)
	a := NewAdapter(kv, logger.Nop())

	got := []string{"default"}
	ok := a.Load(context.Background(), KeyModels, &got)

	assert.False(t, ok)
	assert.Equal(t, []string{"default"}, got)
}

func TestAdapterLoad_DriverFailure_KeepsDefault(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk I/O error")
	a := NewAdapter(kv, logger.Nop())

	got := 42
	ok := a.Load(context.Background(), KeyAuthState, &got)

	assert.False(t, ok)
	assert.Equal(t, 42, got)
}

func TestAdapterStore_WriteFailure_ReturnsFalse(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("database is locked")
	a := NewAdapter(kv, logger.Nop())

	assert.False(t, a.Store(context.Background(), KeyCart, []string{}))
}

func TestAdapterStore_UnencodableValue_ReturnsFalse(t *testing.T) {
	a := NewAdapter(newMemKV(), logger.Nop())

	// channels cannot be marshaled to JSON
	assert.False(t, a.Store(context.Background(), KeyCart, make(chan int)))
}

func TestAdapterRemove(t *testing.T) {
	kv := newMemKV()
	a := NewAdapter(kv, logger.Nop())
	ctx := context.Background()

	require.True(t, a.Store(ctx, KeyAuthState, "x"))
	require.True(t, a.Remove(ctx, KeyAuthState))

	var got string
	assert.False(t, a.Load(ctx, KeyAuthState, &got))
}
