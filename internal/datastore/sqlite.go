package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mattn/go-sqlite3"

	"github.com/mcpdict/mcpdict-go/internal/conf"
	"github.com/mcpdict/mcpdict-go/internal/errors"
	"github.com/mcpdict/mcpdict-go/internal/logging"
)

// SQLiteStore implements Interface over the prebuilt SQLite dictionary
// file. The file is opened read-only with query_only set at the engine
// level, so even a defective statement cannot mutate the store.
type SQLiteStore struct {
	Settings *conf.Settings
	DB       *sql.DB
	logger   *slog.Logger
}

// NewSQLiteStore creates a store for the dictionary file named in settings.
func NewSQLiteStore(settings *conf.Settings) *SQLiteStore {
	return &SQLiteStore{
		Settings: settings,
		logger:   logging.ForService("datastore"),
	}
}

// Open opens the dictionary file. The connection pool replaces the
// original short-lived per-request handles; every pooled connection
// carries the same read-only pragmas via the DSN, and busy_timeout bounds
// waiting on a contended file instead of hanging.
func (store *SQLiteStore) Open() error {
	dsn := fmt.Sprintf("file:%s?mode=ro&_query_only=true&_busy_timeout=%d",
		store.Settings.Database.Path,
		store.Settings.Database.BusyTimeout)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("op", "open").
			Build()
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("op", "open").
			Build()
	}

	store.DB = db
	store.logger.Info("dictionary store opened",
		"path", store.Settings.Database.Path,
		"busy_timeout_ms", store.Settings.Database.BusyTimeout)
	return nil
}

// Close closes the store.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	return store.DB.Close()
}

// LookupReadings executes the character lookup. chars must already be
// deduplicated and within the configured maximum; the store re-checks both
// bounds so a defective caller cannot produce an unbounded statement.
func (store *SQLiteStore) LookupReadings(ctx context.Context, chars []string) ([]ReadingRecord, error) {
	if store.DB == nil {
		return nil, errNotReady()
	}
	if len(chars) > store.Settings.Lookup.MaxChars {
		return nil, errors.Newf("too many chars; max=%d", store.Settings.Lookup.MaxChars).
			Component("datastore").
			Category(errors.CategoryLimit).
			Context("count", len(chars)).
			Build()
	}

	query, err := BuildLookupQuery(len(chars))
	if err != nil {
		return nil, err
	}

	rows, err := store.DB.QueryContext(ctx, query, LookupParams(chars)...)
	if err != nil {
		return nil, wrapQueryError(err, "lookup")
	}
	defer func() { _ = rows.Close() }()

	var records []ReadingRecord
	for rows.Next() {
		var rec ReadingRecord
		if err := rows.Scan(&rec.Position, &rec.Char, &rec.LanguageID, &rec.Reading, &rec.Note); err != nil {
			return nil, wrapQueryError(err, "lookup-scan")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "lookup-rows")
	}
	return records, nil
}

// BuildVersion reads the single build version stamp. Exactly one row
// exists in a correctly built store; a missing row means the store was
// never stamped and the service must not serve from it.
func (store *SQLiteStore) BuildVersion(ctx context.Context) (string, error) {
	if store.DB == nil {
		return "", errNotReady()
	}

	query, args, err := buildVersionQuery()
	if err != nil {
		return "", wrapQueryError(err, "version-build")
	}

	var version string
	if err := store.DB.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.Newf("no version found in build_version table").
				Component("datastore").
				Category(errors.CategoryNotReady).
				Build()
		}
		return "", wrapQueryError(err, "version")
	}
	return version, nil
}

// errNotReady is returned for any operation before Open succeeded.
func errNotReady() error {
	return errors.Newf("dictionary store is not open").
		Component("datastore").
		Category(errors.CategoryNotReady).
		Build()
}

// wrapQueryError classifies a store execution failure. Busy/locked engine
// errors become the retryable timeout category; everything else is a plain
// database error. The driver text stays inside the wrapped error and is
// only ever logged, never surfaced to clients.
func wrapQueryError(err error, op string) error {
	category := errors.CategoryDatabase
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		if serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked {
			category = errors.CategoryTimeout
		}
	}
	return errors.New(err).
		Component("datastore").
		Category(category).
		Context("op", op).
		Build()
}
