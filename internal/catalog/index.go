// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/skillpath/pkg/types"
)

// The FTS index is a derived artifact for interactive catalog search.
// Ranking never reads it; the in-memory store stays the source of truth
// and the index is rebuilt from scratch on every BuildIndex run.

// defaultSearchLimit caps index search results when the caller passes
// zero.
const defaultSearchLimit = 20

// BuildIndex writes every admitted course record into a SQLite FTS5
// index at dbPath, replacing any previous index.
func BuildIndex(ctx context.Context, store *Store, dbPath string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating index directory: %w", err)
	}
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("removing stale index: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return 0, fmt.Errorf("opening index: %w", err)
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE courses (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			platform TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL
		)`,
		`CREATE VIRTUAL TABLE courses_fts USING fts5(title, content=courses, content_rowid=rowid)`,
		`CREATE TRIGGER courses_ai AFTER INSERT ON courses BEGIN
			INSERT INTO courses_fts(rowid, title) VALUES (new.rowid, new.title);
		END`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("creating index schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (platform, title, url) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	indexed := 0
	for _, c := range store.All() {
		if _, err := stmt.ExecContext(ctx, string(c.Platform), c.Title, c.URL); err != nil {
			return 0, fmt.Errorf("inserting course %q: %w", c.Title, err)
		}
		indexed++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return indexed, nil
}

// SearchIndex runs an FTS query against a previously built index and
// returns matching records best-rank first.
func SearchIndex(ctx context.Context, dbPath, query string, limit int) ([]types.CourseRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("catalog index %s not found, run catalog index first: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT c.platform, c.title, c.url
		 FROM courses_fts
		 JOIN courses c ON c.rowid = courses_fts.rowid
		 WHERE courses_fts MATCH ?
		 ORDER BY courses_fts.rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []types.CourseRecord
	for rows.Next() {
		var (
			platform string
			r        types.CourseRecord
		)
		if err := rows.Scan(&platform, &r.Title, &r.URL); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Platform = types.Platform(platform)
		results = append(results, r)
	}
	return results, rows.Err()
}
