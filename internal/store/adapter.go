package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/VladDatsenko/3d/internal/logger"
)

// Persisted record keys. The names are part of the store format and must
// stay stable so records written by earlier installations keep loading.
const (
	KeyAuthState        = "auth_state"
	KeyPasswordChecksum = "admin_password_hash"
	KeyAnswerChecksum   = "admin_security_answer_hash"
	KeyModels           = "models_data"
	KeyCategories       = "categories"
	KeyFavorites        = "favorites"
	KeyCart             = "cart"
)

// Adapter encodes structured values as JSON records in the KeyValue store.
//
// Failure semantics (deliberate, see the package comment): Load leaves dest
// untouched on any failure so the caller-supplied default survives, and every
// method reports success as a boolean instead of an error.
type Adapter struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewAdapter(kv KeyValue, logger *logger.Logger) *Adapter {
	return &Adapter{
		kv:     kv,
		logger: logger,
	}
}

// Load decodes the record under key into dest and reports whether it did.
// An absent key is a normal first-run condition and logged at debug level;
// a malformed record or driver failure is logged as a warning. In all three
// cases dest keeps the default the caller put there.
func (a *Adapter) Load(ctx context.Context, key string, dest any) bool {
	raw, err := a.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			a.logger.Debug().
				Str("func", "Adapter.Load").
				Str("key", key).
				Msg("no persisted record, using default")
			return false
		}
		a.logger.Warn().Err(err).
			Str("func", "Adapter.Load").
			Str("key", key).
			Msg("failed to read persisted record, using default")
		return false
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "Adapter.Load").
			Str("key", key).
			Msg("corrupted persisted record, using default")
		return false
	}

	return true
}

// Store encodes value and upserts it under key, reporting success. The
// in-memory mutation that led here has already happened; a false return
// means memory and the durable store disagree until the next successful
// write.
func (a *Adapter) Store(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn().Err(err).
			Str("func", "Adapter.Store").
			Str("key", key).
			Msg("failed to encode record")
		return false
	}

	if err = a.kv.Set(ctx, key, raw); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "Adapter.Store").
			Str("key", key).
			Msg("failed to write record")
		return false
	}

	return true
}

// Remove deletes the record under key, reporting success.
func (a *Adapter) Remove(ctx context.Context, key string) bool {
	if err := a.kv.Delete(ctx, key); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "Adapter.Remove").
			Str("key", key).
			Msg("failed to delete record")
		return false
	}

	return true
}
