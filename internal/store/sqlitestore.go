package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"eventdeck/internal/domain"
	sqlm "eventdeck/internal/storage/sqlite"
)

// SQLiteStore keeps events in an embedded SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and migrates it
func NewSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// single connection so the pragma below applies to every statement
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := (sqlm.Manager{}).UpToLatest(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// WithTx runs fn in a transaction, committing on nil error and rolling back otherwise
func (s *SQLiteStore) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

const eventColumns = `id, title, details, link, comment, host, start_time, end_time`

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	return queryEvents(ctx, s.db, `SELECT `+eventColumns+` FROM events ORDER BY rowid`)
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Event, error) {
	events, err := queryEvents(ctx, s.db, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	if err != nil {
		return domain.Event{}, err
	}
	if len(events) == 0 {
		return domain.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return events[0], nil
}

func (s *SQLiteStore) Add(ctx context.Context, event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		var cnt int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM events WHERE id = ?`, event.ID).Scan(&cnt); err != nil {
			return err
		}
		if cnt > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateID, event.ID)
		}

		if err := checkOverlap(ctx, tx, event); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO events(`+eventColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			event.ID, event.Title, event.Details, event.Link, event.Comment, event.Host,
			event.StartTime.UnixNano(), event.EndTime.UnixNano())
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		return insertParticipants(ctx, tx, event)
	})
}

func (s *SQLiteStore) Update(ctx context.Context, event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		var cnt int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM events WHERE id = ?`, event.ID).Scan(&cnt); err != nil {
			return err
		}
		if cnt == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, event.ID)
		}
		if err := checkOverlap(ctx, tx, event); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`UPDATE events SET title = ?, details = ?, link = ?, comment = ?, host = ?, start_time = ?, end_time = ? WHERE id = ?`,
			event.Title, event.Details, event.Link, event.Comment, event.Host,
			event.StartTime.UnixNano(), event.EndTime.UnixNano(), event.ID)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE event_id = ?`, event.ID); err != nil {
			return err
		}
		return insertParticipants(ctx, tx, event)
	})
}

// checkOverlap fails with ErrOverlap when a stored event other than event
// itself clashes with it
func checkOverlap(ctx context.Context, tx *sql.Tx, event domain.Event) error {
	overlapping, err := queryEvents(ctx, tx,
		`SELECT `+eventColumns+` FROM events WHERE start_time < ? AND end_time > ?`,
		event.EndTime.UnixNano(), event.StartTime.UnixNano())
	if err != nil {
		return err
	}
	if other, clash := findConflict(overlapping, event); clash {
		return fmt.Errorf("%w: %q", ErrOverlap, other.Title)
	}
	return nil
}

func insertParticipants(ctx context.Context, tx *sql.Tx, event domain.Event) error {
	for _, p := range event.Participants {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO participants(event_id, name) VALUES(?, ?)`, event.ID, p); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE event_id = ?`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func queryEvents(ctx context.Context, q queryer, query string, args ...any) ([]domain.Event, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var start, end int64
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Details, &ev.Link, &ev.Comment, &ev.Host, &start, &end); err != nil {
			rows.Close()
			return nil, err
		}
		ev.StartTime = time.Unix(0, start).UTC()
		ev.EndTime = time.Unix(0, end).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(events) == 0 {
		return events, nil
	}
	if err := loadParticipants(ctx, q, events); err != nil {
		return nil, err
	}
	return events, nil
}

// participantBatch bounds the ids bound into one IN (...) so long lists stay
// under SQLite's host parameter limit
var participantBatch = 500

func loadParticipants(ctx context.Context, q queryer, events []domain.Event) error {
	pos := make(map[string]int, len(events))
	for i, ev := range events {
		pos[ev.ID] = i
	}

	for start := 0; start < len(events); start += participantBatch {
		end := start + participantBatch
		if end > len(events) {
			end = len(events)
		}
		if err := loadParticipantBatch(ctx, q, events, pos, events[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func loadParticipantBatch(ctx context.Context, q queryer, events []domain.Event, pos map[string]int, batch []domain.Event) error {
	placeholders := make([]string, len(batch))
	args := make([]any, len(batch))
	for i, ev := range batch {
		placeholders[i] = "?"
		args[i] = ev.ID
	}

	rows, err := q.QueryContext(ctx,
		`SELECT event_id, name FROM participants WHERE event_id IN (`+strings.Join(placeholders, ",")+`) ORDER BY rowid`,
		args...)
	if err != nil {
		return fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventID, name string
		if err := rows.Scan(&eventID, &name); err != nil {
			return err
		}
		if i, ok := pos[eventID]; ok {
			events[i].Participants = append(events[i].Participants, name)
		}
	}
	return rows.Err()
}
