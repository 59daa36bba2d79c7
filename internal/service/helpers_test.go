package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/stretchr/testify/require"
)

// memPersistence is an in-memory Persistence fake with the same JSON
// round-trip semantics as the real adapter.
type memPersistence struct {
	data       map[string]json.RawMessage
	failWrites bool
}

func newMemPersistence() *memPersistence {
	return &memPersistence{data: make(map[string]json.RawMessage)}
}

func (m *memPersistence) Load(_ context.Context, key string, dest any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (m *memPersistence) Store(_ context.Context, key string, value any) bool {
	if m.failWrites {
		return false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	m.data[key] = raw

	return true
}

func (m *memPersistence) Remove(_ context.Context, key string) bool {
	delete(m.data, key)
	return !m.failWrites
}

// seed stores a value under key, failing the test on a marshal error.
func (m *memPersistence) seed(t *testing.T, key string, value any) {
	t.Helper()
	require.True(t, m.Store(context.Background(), key, value))
}

func testConfig() *config.StructuredConfig {
	return config.Defaults()
}

func newTestCatalog(t *testing.T, persistence Persistence) *CatalogService {
	t.Helper()
	return NewCatalogService(context.Background(), testConfig().Catalog, persistence, logger.Nop())
}
