// Package importer reads event fixtures from YAML files into a store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"eventdeck/internal/domain"
	"eventdeck/internal/store"
)

type document struct {
	Events []eventRecord `yaml:"events"`
}

type eventRecord struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Details      string   `yaml:"details"`
	Link         string   `yaml:"link"`
	Comment      string   `yaml:"comment"`
	Host         string   `yaml:"host"`
	Participants []string `yaml:"participants"`
	StartTime    string   `yaml:"start_time"`
	EndTime      string   `yaml:"end_time"`
}

// LoadFile parses the fixture at path
func LoadFile(path string) ([]domain.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a fixture document. Entries without an id get a fresh UUID.
func Decode(r io.Reader) ([]domain.Event, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	events := make([]domain.Event, 0, len(doc.Events))
	for i, rec := range doc.Events {
		ev, err := rec.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event #%d (%q): %w", i+1, rec.Title, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r eventRecord) toEvent() (domain.Event, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return domain.Event{}, fmt.Errorf("bad start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return domain.Event{}, fmt.Errorf("bad end_time: %w", err)
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	ev := domain.Event{
		ID:           id,
		Title:        r.Title,
		Details:      r.Details,
		Link:         r.Link,
		Comment:      r.Comment,
		Host:         r.Host,
		Participants: r.Participants,
		StartTime:    start,
		EndTime:      end,
	}
	if err := ev.Validate(); err != nil {
		return domain.Event{}, err
	}
	return ev, nil
}

// Import stores events in order and stops at the first failure. An event
// whose id is already stored replaces the stored one, so importing a fixture
// again picks up its edits. It returns how many events were stored.
func Import(ctx context.Context, s store.Store, events []domain.Event) (int, error) {
	for i, ev := range events {
		err := s.Add(ctx, ev)
		if errors.Is(err, store.ErrDuplicateID) {
			err = s.Update(ctx, ev)
		}
		if err != nil {
			return i, fmt.Errorf("import %q: %w", ev.Title, err)
		}
	}
	return len(events), nil
}
