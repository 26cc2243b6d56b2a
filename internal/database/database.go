package database

import (
	"fmt"

	"evalboard/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// schema bootstraps the draft-set tables. Both statements are idempotent
// so a restart against an existing file is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS draft_sets (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS draft_questions (
	id            TEXT NOT NULL,
	set_id        TEXT NOT NULL REFERENCES draft_sets(id) ON DELETE CASCADE,
	position      INTEGER NOT NULL,
	content       TEXT NOT NULL,
	question_type TEXT NOT NULL,
	options       TEXT NOT NULL DEFAULT '[]',
	answer        TEXT NOT NULL DEFAULT '',
	difficulty    TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL,
	PRIMARY KEY (set_id, id)
);

CREATE INDEX IF NOT EXISTS idx_draft_questions_set_position
	ON draft_questions (set_id, position);
`

// NewSQLXSQLiteDB opens (and if necessary creates) the SQLite database
// at path and ensures the draft schema exists.
func NewSQLXSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure draft schema: %v", err)
	}

	logger.Get().Info("Successfully connected to SQLite database")
	return db, nil
}
