package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"
)

// DB provides a single writer connection and a pool of readers on one SQLite database file.
// A single writer avoids "database is locked" errors and serializes queue transactions.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the database with WAL mode, busy timeout and foreign keys enabled, and applies
// pending migrations.
func NewDB(ctx context.Context, dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		dbPath,
	)
	return open(ctx, dsn, dbPath)
}

func open(ctx context.Context, dsn, dbPath string) (*DB, error) {
	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open writer", goerr.V("path", dbPath))
	}
	writer.SetMaxOpenConns(1)

	if err := writer.PingContext(ctx); err != nil {
		_ = writer.Close()
		return nil, goerr.Wrap(err, "failed to ping writer", goerr.V("path", dbPath))
	}

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = writer.Close()
		return nil, goerr.Wrap(err, "failed to open reader", goerr.V("path", dbPath))
	}
	reader.SetMaxOpenConns(4)

	if err := reader.PingContext(ctx); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, goerr.Wrap(err, "failed to ping reader", goerr.V("path", dbPath))
	}

	db := &DB{
		Writer: writer,
		Reader: reader,
		path:   dbPath,
	}

	if err := RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Close closes both reader and writer connections. Returns the first error encountered.
func (db *DB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = goerr.Wrap(err, "failed to close reader")
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = goerr.Wrap(err, "failed to close writer")
	}

	return firstErr
}

// Timestamps are stored as microseconds since the epoch so that SQL can compare them.
func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func fromUnix(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.UnixMicro(v).UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
