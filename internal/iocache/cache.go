// Package iocache stores serialized API responses in a local SQLite
// file. The cached endpoints are pure reads over near-static data, so
// entries expire by time only and are never invalidated by writes.
package iocache

import (
	"database/sql"
	"time"

	"github.com/nitpicker55555/phenodb/pkg/phenodb"
	_ "modernc.org/sqlite"
)

type sqliteCache struct {
	db  *sql.DB
	ttl time.Duration
}

// New opens (or creates) the result cache at path with the given TTL.
func New(path string, ttl time.Duration) (phenodb.ResultCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	createSQL := `
		CREATE TABLE IF NOT EXISTS results (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			created_at INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(createSQL); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}

	return &sqliteCache{db: db, ttl: ttl}, nil
}

// Get returns the payload for key unless the entry is older than the
// TTL. Expired entries are deleted on read.
func (c *sqliteCache) Get(key string) ([]byte, bool, error) {
	var payload []byte
	var createdAt int64
	err := c.db.QueryRow(
		"SELECT payload, created_at FROM results WHERE key = ?", key,
	).Scan(&payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(key, err)
	}

	if time.Since(time.Unix(createdAt, 0)) > c.ttl {
		_, err = c.db.Exec("DELETE FROM results WHERE key = ?", key)
		if err != nil {
			return nil, false, WriteError(key, err)
		}
		return nil, false, nil
	}
	return payload, true, nil
}

// Set stores a payload, replacing any previous entry for the key.
func (c *sqliteCache) Set(key string, payload []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO results (key, payload, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at`,
		key, payload, time.Now().Unix(),
	)
	if err != nil {
		return WriteError(key, err)
	}
	return nil
}

func (c *sqliteCache) Close() error {
	return c.db.Close()
}
