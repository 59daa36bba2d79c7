package store

import sq "github.com/Masterminds/squirrel"

// Query builders for the kv_records table. sqlite uses ?-style placeholders,
// squirrel's default.

func getKVRecordQuery(key string) sq.SelectBuilder {
	return sq.Select("value").
		From("kv_records").
		Where(sq.Eq{"key": key})
}

func upsertKVRecordQuery(key string, value []byte) sq.InsertBuilder {
	return sq.Insert("kv_records").
		Columns("key", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP")
}

func deleteKVRecordQuery(key string) sq.DeleteBuilder {
	return sq.Delete("kv_records").
		Where(sq.Eq{"key": key})
}
