// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/utils"
	"github.com/MKhiriev/course-plus/migrations"
	"github.com/MKhiriev/course-plus/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// SQL driver names, also used as goose dialects.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB is a SQL connection shared by all SQL repositories. It carries the
// statement builder matching the driver's placeholder format.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	ids                utils.IDGenerator
	now                func() time.Time
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  log,
	}

	switch dialect {
	case dialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnectSQL opens a PostgreSQL or SQLite connection depending on the
// DSN scheme.
func NewConnectSQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "sqlite3://"), strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return db.wrapError(ErrExecutingQuery, err)
	}
	return nil
}

func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}

// wrapError maps driver errors onto the package sentinels. base is used
// when the error is neither a missing row, a duplicate key nor transient.
func (db *DB) wrapError(base, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case db.errorClassificator.Classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", base, err)
	}
}

func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

func (db *DB) newID() string {
	return db.ids.Generate()
}

func (db *DB) timestamp() time.Time {
	return db.now().UTC()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func selectAll[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "store.selectAll").Msg("failed to execute query")
		return nil, db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "store.selectAll").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "store.selectAll").Msg("error occurred during rows iteration")
		return nil, db.wrapError(ErrScanningRows, rowsErr)
	}

	return results, nil
}

func selectOne[T any](ctx context.Context, db *DB, query sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	stmt, args, err := query.Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.FromContext(ctx).Err(err).Str("func", "store.selectOne").Msg("failed to fetch row")
		}
		return zero, db.wrapError(ErrScanningRow, err)
	}

	return item, nil
}

// exec runs a write statement and returns the number of affected rows.
func (db *DB) exec(ctx context.Context, query sq.Sqlizer) (int64, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "store.exec").Msg("failed to execute statement")
		return 0, db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, db.wrapError(ErrExecutingStatement, err)
	}

	return affected, nil
}

func (db *DB) insert(ctx context.Context, id string, query sq.InsertBuilder) (models.InsertResult, error) {
	if _, err := db.exec(ctx, query); err != nil {
		return models.InsertResult{}, err
	}
	return models.NewInsertResult(id), nil
}

// update reports affected rows as both matched and modified: both drivers
// count every row the WHERE clause selected.
func (db *DB) update(ctx context.Context, id string, query sq.UpdateBuilder) (models.UpdateResult, error) {
	if id == "" {
		return models.UpdateResult{}, ErrInvalidID
	}

	affected, err := db.exec(ctx, query)
	if err != nil {
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (db *DB) count(ctx context.Context, table string) (int64, error) {
	stmt, args, err := db.builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var n int64
	if err := db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "store.count").Str("table", table).Msg("failed to count rows")
		return 0, db.wrapError(ErrExecutingQuery, err)
	}

	return n, nil
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "***"
	}
	return "***"
}
