package store

import (
	"context"
	"errors"

	"eventdeck/internal/domain"
)

var (
	// ErrNotFound is returned when no event has the requested id
	ErrNotFound = errors.New("event not found")
	// ErrOverlap is returned when an event clashes with another meeting of one of its people
	ErrOverlap = errors.New("event overlaps an existing meeting")
	// ErrDuplicateID is returned when adding an event whose id is already stored
	ErrDuplicateID = errors.New("event id already exists")
)

// Store persists events. List returns events in insertion order.
// Update replaces a stored event in place, keeping its position.
type Store interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (domain.Event, error)
	Add(ctx context.Context, event domain.Event) error
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// people returns the host and participants of an event
func people(e domain.Event) map[string]bool {
	set := make(map[string]bool, len(e.Participants)+1)
	if e.Host != "" {
		set[e.Host] = true
	}
	for _, p := range e.Participants {
		if p != "" {
			set[p] = true
		}
	}
	return set
}

// findConflict returns the first existing event that overlaps e and shares a
// host or participant with it
func findConflict(existing []domain.Event, e domain.Event) (domain.Event, bool) {
	mine := people(e)
	if len(mine) == 0 {
		return domain.Event{}, false
	}
	for _, other := range existing {
		if other.ID == e.ID || !other.Overlaps(e) {
			continue
		}
		for person := range people(other) {
			if mine[person] {
				return other, true
			}
		}
	}
	return domain.Event{}, false
}
