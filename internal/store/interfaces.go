package store

import "context"

// KeyValue is the raw record store beneath the Adapter. Get returns
// ErrKeyNotFound for absent keys; Set upserts.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
