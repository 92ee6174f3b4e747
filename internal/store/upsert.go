package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"jobsift-engine/internal/domain"
)

// UpsertBatch writes a deduplicated batch into the service's table,
// keyed by the unique fingerprint index; rows already present are
// ignored, not errors. If the target table predates the optional
// found_time column, the same batch is retried once without it before
// the failure surfaces.
func UpsertBatch(ctx context.Context, db *sql.DB, table string, jobs []domain.JobRecord) (added int, err error) {
	if err := ValidTableName(table); err != nil {
		return 0, err
	}

	added, err = upsert(ctx, db, table, jobs, true)
	if err != nil && isMissingColumn(err, "found_time") {
		return upsert(ctx, db, table, jobs, false)
	}
	return added, err
}

func upsert(ctx context.Context, db *sql.DB, table string, jobs []domain.JobRecord, withFoundTime bool) (added int, err error) {
	cols := "title, job_name, posted_at, location, city, state, source_url, fingerprint"
	marks := "?,?,?,?,?,?,?,?"
	if withFoundTime {
		cols += ", found_time"
		marks += ",?"
	}

	// relies on the unique index on fingerprint
	query := fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s) VALUES (%s);`, table, cols, marks)

	// one tx per batch: keeps SELECT changes() on the insert's connection
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, j := range jobs {
		args := []any{
			j.Title,
			j.Company,
			j.PostedAt,
			j.Location,
			j.City,
			j.State,
			nil, // source_url: search-result listings carry no canonical link
			j.Fingerprint,
		}
		if withFoundTime {
			args = append(args, j.FoundTime)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return added, fmt.Errorf("upsert into %s: %w", table, err)
		}

		// IGNORE doesn't report rows affected reliably across drivers;
		// changes() does.
		var changes int
		if e := tx.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil && changes > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s batch: %w", table, err)
	}
	return added, nil
}

func isMissingColumn(err error, col string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, col) {
		return false
	}
	// SQLite phrases this differently for INSERT ("has no column named")
	// and for expressions ("no such column").
	return strings.Contains(msg, "has no column named") || strings.Contains(msg, "no such column")
}
