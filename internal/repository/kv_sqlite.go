package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/limbo/unbroken/pkg/cleanup"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteKV is the on-device key/value cache. Values are opaque JSON blobs.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLiteKV opens or creates the database at path.
func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.New("creating kv dir error: " + err.Error())
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.New("opening kv db error: " + err.Error())
	}
	// One writer keeps read-modify-write of a key from interleaving.
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return nil, errors.New("migrating kv db error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite kv",
		F:    db.Close,
	})
	return &SQLiteKV{db: db}, nil
}

func (kv *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting kv value error: " + err.Error())
	}
	return value, nil
}

func (kv *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := kv.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.New("setting kv value error: " + err.Error())
	}
	return nil
}
