package store

import (
	"context"
	"fmt"
	"sync"

	"eventdeck/internal/domain"
)

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu     sync.RWMutex
	events []domain.Event
	index  map[string]int // id -> position in events
}

// NewMemoryStore creates an empty memory-based store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	out := make([]domain.Event, len(s.events))
	for i, ev := range s.events {
		out[i] = cloneEvent(ev)
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneEvent(s.events[i]), nil
}

func (s *MemoryStore) Add(ctx context.Context, event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[event.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, event.ID)
	}
	if other, clash := findConflict(s.events, event); clash {
		return fmt.Errorf("%w: %q", ErrOverlap, other.Title)
	}

	s.index[event.ID] = len(s.events)
	s.events = append(s.events, cloneEvent(event))
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[event.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, event.ID)
	}
	if other, clash := findConflict(s.events, event); clash {
		return fmt.Errorf("%w: %q", ErrOverlap, other.Title)
	}

	s.events[i] = cloneEvent(event)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.events); j++ {
		s.index[s.events[j].ID] = j
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func cloneEvent(e domain.Event) domain.Event {
	if e.Participants != nil {
		e.Participants = append([]string(nil), e.Participants...)
	}
	return e
}
