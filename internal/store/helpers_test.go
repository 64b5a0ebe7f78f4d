// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// seqIDs issues "id-001", "id-002", ... in order.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%03d", s.n)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL DB with
// deterministic ids and clock.
func newDBFromSQL(db *sql.DB) *DB {
	storeDB := newDB(db, dialectPostgres, logger.Nop())
	storeDB.ids = &seqIDs{}
	storeDB.now = func() time.Time { return fixedNow }
	return storeDB
}

// newSQLiteDB opens a migrated SQLite database in a temp directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "course-plus.db")
	db, err := NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })

	require.NoError(t, db.Migrate())
	return db
}
