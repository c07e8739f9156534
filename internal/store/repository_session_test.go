// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionStore(t *testing.T) (*sqliteSessionStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLiteSessionStore(&DB{DB: db, logger: l}, l).(*sqliteSessionStore)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func TestSQLiteSessionStore_Get_Success(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session_values WHERE key = ? LIMIT 1")).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	got, err := s.Get(context.Background(), TokenKey)

	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Get_NotFound(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectQuery("SELECT value FROM session_values").
		WithArgs(TokenKey).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), TokenKey)

	assert.ErrorIs(t, err, ErrSessionValueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Get_EmptyRows(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectQuery("SELECT value FROM session_values").
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Get(context.Background(), TokenKey)

	assert.ErrorIs(t, err, ErrSessionValueNotFound)
}

func TestSQLiteSessionStore_Get_DBError(t *testing.T) {
	s, mock := newTestSessionStore(t)
	dbErr := errors.New("disk I/O error")

	mock.ExpectQuery("SELECT value FROM session_values").
		WithArgs(TokenKey).
		WillReturnError(dbErr)

	_, err := s.Get(context.Background(), TokenKey)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestSQLiteSessionStore_Set_Success(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session_values (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key)")).
		WithArgs(TokenKey, "abc", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Set(context.Background(), TokenKey, "abc")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Set_DBError(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectExec("INSERT INTO session_values").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), TokenKey, "abc")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteSessionStore_Delete(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_values WHERE key = ?")).
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), TokenKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStore_Delete_DBError(t *testing.T) {
	s, mock := newTestSessionStore(t)

	mock.ExpectExec("DELETE FROM session_values").
		WithArgs(TokenKey).
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, s.Delete(context.Background(), TokenKey), ErrExecutingStatement)
}

func TestSQLiteSessionStore_EmptyKey(t *testing.T) {
	s, mock := newTestSessionStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptySessionKey)
	assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptySessionKey)
	assert.ErrorIs(t, s.Delete(ctx, ""), ErrEmptySessionKey)

	// nothing reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}
