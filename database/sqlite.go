package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Init ensures the todos table exists at the given path. Existing data is
// left untouched; safe to call multiple times.
func Init(path string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createTodosTable); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}
	return nil
}

// Open returns a fresh handle to the database. Handles are scoped to a
// single request; callers must close them on every exit path. SQLite allows
// one writer at a time, so the handle waits up to 5s on a locked database
// instead of failing with SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
