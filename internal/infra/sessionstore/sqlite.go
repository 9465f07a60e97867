package sessionstore

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/pkg/errs"

	_ "github.com/mattn/go-sqlite3"
)

const memoryPath = ":memory:"

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps the session record as key/value rows in a local SQLite
// file, the same four keys a browser profile would hold.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *slog.Logger
}

func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	dsn := memoryPath
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errs.Wrap(err, "creating session directory")
		}
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errs.Wrap(err, "opening session database")
	}
	// :memory: databases live per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errs.Wrap(err, "connecting to session database")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errs.Wrap(err, "creating session schema")
	}

	logger.Info("Session store opened", slog.String("backend", "sqlite"), slog.String("path", path))
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Current(ctx context.Context) (session.Session, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(session.Keys)), ",")
	args := make([]any, len(session.Keys))
	for i, k := range session.Keys {
		args[i] = k
	}

	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM kv WHERE key IN ("+placeholders+")", args...)
	if err != nil {
		return session.Session{}, errs.Wrap(err, "reading session")
	}
	defer rows.Close()

	values := make(map[string]string, len(session.Keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return session.Session{}, errs.Wrap(err, "scanning session row")
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return session.Session{}, errs.Wrap(err, "reading session")
	}

	return session.FromValues(values), nil
}

// Replace drops every session key before writing the new record; nothing of
// the previous session survives.
func (s *SQLiteStore) Replace(ctx context.Context, next session.Session) error {
	if !next.IsAuthenticated() {
		return s.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transaction(ctx, func(tx *sql.Tx) error {
		if err := deleteKeys(ctx, tx); err != nil {
			return err
		}
		for key, value := range next.Values() {
			if _, err := tx.ExecContext(ctx, "INSERT INTO kv (key, value) VALUES (?, ?)", key, value); err != nil {
				return errs.Wrapf(err, "writing session key %s", key)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transaction(ctx, func(tx *sql.Tx) error {
		return deleteKeys(ctx, tx)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) transaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "beginning session transaction")
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("Session rollback failed", slog.Any("error", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errs.Wrap(err, "committing session transaction")
	}
	return nil
}

func deleteKeys(ctx context.Context, tx *sql.Tx) error {
	for _, key := range session.Keys {
		if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
			return errs.Wrapf(err, "deleting session key %s", key)
		}
	}
	return nil
}
