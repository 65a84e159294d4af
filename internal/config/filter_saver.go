package config

import (
	"sync"

	"eventdeck/internal/domain"
)

// FilterSaver writes the remembered filter into the config file. Saves may
// arrive from concurrent bus handlers in any order; only a change newer than
// the last one written reaches the file.
type FilterSaver struct {
	mu      sync.Mutex
	service ConfigService
	config  *Config
	lastSeq uint64
	closed  bool
}

// NewFilterSaver creates a saver that updates cfg and persists it through service
func NewFilterSaver(service ConfigService, cfg *Config) *FilterSaver {
	return &FilterSaver{service: service, config: cfg}
}

// Save persists filter when seq is newer than every filter saved so far.
// It reports whether the file was written.
func (s *FilterSaver) Save(seq uint64, filter domain.FilterState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq <= s.lastSeq {
		return false, nil
	}
	s.lastSeq = seq
	return true, s.write(filter)
}

// Flush writes filter unconditionally and ignores any later Save. It is used
// once on shutdown with the filter the UI ended with.
func (s *FilterSaver) Flush(filter domain.FilterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return s.write(filter)
}

func (s *FilterSaver) write(filter domain.FilterState) error {
	s.config.Filter = filter
	return s.service.Save(s.config)
}
