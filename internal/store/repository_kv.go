package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VladDatsenko/3d/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

// NewKVRepository returns the sqlite-backed KeyValue store.
func NewKVRepository(db *DB, logger *logger.Logger) KeyValue {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := getKVRecordQuery(key).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		log.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to scan kv record")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return []byte(value), nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertKVRecordQuery(key, value).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to execute upsert for kv record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteKVRecordQuery(key).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete for kv record")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
