// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest persists conversion outcomes in a SQLite database, so
// repeated runs can be inspected and exported without re-reading the
// filesystem.
//
// See docs/ARCHITECTURE § Manifest.
package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2md/pkg/types"
)

const (
	indexDir   = "index"
	dbFile     = "pdf2md.db"
	exportFile = "export.yaml"
)

// Entry is one manifest record: a document plus the time its conversion
// outcome was recorded.
type Entry struct {
	types.Document `yaml:",inline"`
	ConvertedAt    string `json:"converted_at" yaml:"converted_at"`
}

// Store manages the conversion manifest database.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the manifest database at
// documentsDir/index/pdf2md.db, creating the schema if needed.
func NewStore(documentsDir string) (*Store, error) {
	dbDir := filepath.Join(documentsDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: documentsDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		markdown_path TEXT,
		status TEXT NOT NULL,
		converted_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record upserts the conversion outcome for a document, stamping it with
// the current time.
func (s *Store) Record(doc types.Document) error {
	ts := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO documents (id, source_path, markdown_path, status, converted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_path = excluded.source_path,
			markdown_path = excluded.markdown_path,
			status = excluded.status,
			converted_at = excluded.converted_at`,
		doc.ID, doc.SourcePath, doc.MarkdownPath, string(doc.ConversionStatus), ts)
	if err != nil {
		return fmt.Errorf("recording document %s: %w", doc.ID, err)
	}
	return nil
}

// Get returns the manifest entry for a document ID, or sql.ErrNoRows
// wrapped with the ID when none exists.
func (s *Store) Get(id string) (Entry, error) {
	row := s.db.QueryRow(`SELECT id, source_path, markdown_path, status, converted_at
		FROM documents WHERE id = ?`, id)
	var e Entry
	if err := row.Scan(&e.ID, &e.SourcePath, &e.MarkdownPath,
		(*string)(&e.ConversionStatus), &e.ConvertedAt); err != nil {
		return Entry{}, fmt.Errorf("looking up document %s: %w", id, err)
	}
	return e, nil
}

// List returns all manifest entries, newest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT id, source_path, markdown_path, status, converted_at
		FROM documents ORDER BY converted_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SourcePath, &e.MarkdownPath,
			(*string)(&e.ConversionStatus), &e.ConvertedAt); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportYAML writes all manifest entries to index/export.yaml and returns
// the path written.
func (s *Store) ExportYAML() (string, error) {
	entries, err := s.List()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}

	path := filepath.Join(s.dir, indexDir, exportFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
