package crossref

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache stores fetched work records in a local SQLite database so repeated
// fetch runs stay off the network.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS works (
			doi TEXT PRIMARY KEY,
			work_json TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached work for a DOI. The second return is false on a
// cache miss.
func (c *Cache) Get(doi string) (*Work, bool, error) {
	var raw string
	err := c.db.QueryRow("SELECT work_json FROM works WHERE doi = ?", doi).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	var w Work
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, false, fmt.Errorf("decoding cached work for %s: %w", doi, err)
	}
	return &w, true, nil
}

// Put stores a work under its DOI, replacing any previous entry.
func (c *Cache) Put(doi string, w *Work) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding work for %s: %w", doi, err)
	}

	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO works (doi, work_json, fetched_at) VALUES (?, ?, ?)",
		doi, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache for %s: %w", doi, err)
	}
	return nil
}
