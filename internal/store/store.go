package store

import (
	"database/sql"
	"fmt"
	"regexp"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidTableName guards the descriptor-supplied table name before it is
// interpolated into DDL/DML (placeholders can't bind identifiers).
func ValidTableName(name string) error {
	if !tableNameRe.MatchString(name) {
		return fmt.Errorf("store: invalid table name %q", name)
	}
	return nil
}

// EnsureTable creates the per-service jobs table and its fingerprint
// index if they don't exist yet. Pre-existing tables are left alone,
// including ones that predate the found_time column; UpsertBatch copes
// with those.
func EnsureTable(db *sql.DB, table string) error {
	if err := ValidTableName(table); err != nil {
		return err
	}

	if _, err := db.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  job_name TEXT NOT NULL DEFAULT '',
  posted_at TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  state TEXT NOT NULL DEFAULT '',
  source_url TEXT,
  fingerprint TEXT NOT NULL,
  found_time TEXT NOT NULL DEFAULT ''
);`, table)); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	if _, err := db.Exec(fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_fingerprint
ON %s(fingerprint);`, table, table)); err != nil {
		return fmt.Errorf("create index on %s: %w", table, err)
	}

	return nil
}

func columnExists(db *sql.DB, table, col string) bool {
	query := fmt.Sprintf(`
SELECT 1
FROM pragma_table_info('%s')
WHERE name = ?
LIMIT 1;`, table)

	var one int
	err := db.QueryRow(query, col).Scan(&one)
	return err == nil
}
