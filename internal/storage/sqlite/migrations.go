package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Manager handles schema versioning for the event database.
type Manager struct{}

const latestVersion = 2

func (m Manager) ensureTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER NOT NULL);`)
	if err != nil {
		return err
	}
	var cnt int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&cnt); err != nil {
		return err
	}
	if cnt == 0 {
		_, err = db.ExecContext(ctx, `INSERT INTO schema_migrations(version) VALUES(0)`)
	}
	return err
}

// Version returns the schema version currently applied
func (m Manager) Version(ctx context.Context, db *sql.DB) (int, error) {
	if err := m.ensureTable(ctx, db); err != nil {
		return 0, err
	}
	var v int
	if err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations`).Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func (m Manager) setVersion(ctx context.Context, db *sql.DB, v int) error {
	_, err := db.ExecContext(ctx, `UPDATE schema_migrations SET version=?`, v)
	return err
}

// UpToLatest applies migrations to reach latestVersion.
func (m Manager) UpToLatest(ctx context.Context, db *sql.DB) error {
	cur, err := m.Version(ctx, db)
	if err != nil {
		return err
	}
	for v := cur + 1; v <= latestVersion; v++ {
		if err := m.up(ctx, db, v); err != nil {
			return fmt.Errorf("migrate up to v%d: %w", v, err)
		}
		if err := m.setVersion(ctx, db, v); err != nil {
			return err
		}
	}
	return nil
}

func (m Manager) up(ctx context.Context, db *sql.DB, v int) error {
	var stmts []string
	switch v {
	case 1:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS events (
                id TEXT PRIMARY KEY,
                title TEXT NOT NULL,
                details TEXT NOT NULL DEFAULT '',
                link TEXT NOT NULL,
                comment TEXT NOT NULL DEFAULT '',
                host TEXT NOT NULL DEFAULT '',
                start_time INTEGER NOT NULL,
                end_time INTEGER NOT NULL
            );`,
			`CREATE INDEX IF NOT EXISTS idx_events_time ON events(start_time, end_time);`,
		}
	case 2:
		// participants moved out of a comma list into a join table
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS participants (
                event_id TEXT NOT NULL,
                name TEXT NOT NULL,
                PRIMARY KEY(event_id, name),
                FOREIGN KEY(event_id) REFERENCES events(id) ON DELETE CASCADE
            );`,
			`CREATE INDEX IF NOT EXISTS idx_participants_name ON participants(name);`,
		}
	default:
		return fmt.Errorf("unknown migration version %d", v)
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
