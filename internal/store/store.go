package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store records discovery output and generated terms in a local sqlite
// database so later runs against the same target can be compared.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS urls (
		url TEXT,
		domain TEXT,
		source TEXT,
		discovered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(url, source)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create urls table: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS terms (
		term TEXT,
		domain TEXT,
		discovered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(term, domain)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create terms table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveURLs records one source's raw URL batch for domain. Duplicates
// from earlier runs are ignored at the schema level.
func (s *Store) SaveURLs(domain, source string, urls []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO urls (url, domain, source) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range urls {
		if _, err := stmt.Exec(u, domain, source); err != nil {
			return fmt.Errorf("failed to store url %s: %w", u, err)
		}
	}
	return tx.Commit()
}

// SaveTerms records the final wordlist terms for domain.
func (s *Store) SaveTerms(domain string, terms []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO terms (term, domain) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, term := range terms {
		if _, err := stmt.Exec(term, domain); err != nil {
			return fmt.Errorf("failed to store term %s: %w", term, err)
		}
	}
	return tx.Commit()
}
