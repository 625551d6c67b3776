package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

func OpenDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time; serialize connections to avoid busy/locked storms.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id TEXT NOT NULL UNIQUE,
			title TEXT,
			source_url TEXT NOT NULL,
			original_url TEXT,
			comment_count INTEGER NOT NULL DEFAULT 0,
			note_path TEXT,
			content_md TEXT,
			scraped_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS posts_fts USING fts5(
			title,
			content_md,
			content=posts,
			content_rowid=id
		);`,
		`CREATE TRIGGER IF NOT EXISTS posts_ai AFTER INSERT ON posts BEGIN
			INSERT INTO posts_fts(rowid, title, content_md)
			VALUES (new.id, new.title, new.content_md);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS posts_ad AFTER DELETE ON posts BEGIN
			INSERT INTO posts_fts(posts_fts, rowid, title, content_md)
			VALUES ('delete', old.id, old.title, old.content_md);
		END;`,
		`CREATE TRIGGER IF NOT EXISTS posts_au AFTER UPDATE ON posts BEGIN
			INSERT INTO posts_fts(posts_fts, rowid, title, content_md)
			VALUES ('delete', old.id, old.title, old.content_md);
			INSERT INTO posts_fts(rowid, title, content_md)
			VALUES (new.id, new.title, new.content_md);
		END;`,
		`CREATE INDEX IF NOT EXISTS idx_posts_scraped ON posts(scraped_at DESC);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	if _, err := db.Exec(`INSERT INTO posts_fts(posts_fts) VALUES ('rebuild');`); err != nil {
		return fmt.Errorf("rebuild fts: %w", err)
	}
	return nil
}
