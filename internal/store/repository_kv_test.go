package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKVRepo(t *testing.T) (*kvRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &kvRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestKVGet_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"a":1}`)
	mock.ExpectQuery("SELECT value FROM kv_records").
		WithArgs("favorites").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "favorites")

	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVGet_AbsentKey_ReturnsErrKeyNotFound(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_records").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVGet_DriverFailure(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_records").
		WithArgs("cart").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "cart")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestKVSet_Upsert(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_records").
		WithArgs("cart", `["1","2"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "cart", []byte(`["1","2"]`))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVSet_ExecFailure(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_records").
		WithArgs("cart", `[]`).
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), "cart", []byte(`[]`))

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKVDelete_Success(t *testing.T) {
	repo, mock, db := newTestKVRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_records").
		WithArgs("auth_state").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "auth_state")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
