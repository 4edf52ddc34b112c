// Package duckdb persists analysis results in DuckDB so genes can be
// queried across runs.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding analyzed sequences and their genes.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path, empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS sequences (
		id VARCHAR PRIMARY KEY,
		origin VARCHAR,
		length BIGINT,
		gc_content DOUBLE,
		count_a BIGINT,
		count_c BIGINT,
		count_g BIGINT,
		count_t BIGINT,
		gene_count BIGINT,
		analyzed_at TIMESTAMP
	)`); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS genes (
		sequence_id VARCHAR,
		start_index BIGINT,
		stop_index BIGINT,
		start_codon VARCHAR,
		stop_codon VARCHAR,
		length BIGINT,
		gc_content DOUBLE,
		sequence VARCHAR,
		PRIMARY KEY (sequence_id, start_index)
	)`)
	return err
}
