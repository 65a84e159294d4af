package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/runeutil"
)

var (
	// ErrUnknownSortKey is returned when a sort key is not one of SortOptions
	ErrUnknownSortKey = errors.New("unknown sort key")
	// ErrInvalidEvent is returned when an event fails validation
	ErrInvalidEvent = errors.New("invalid event")
)

// SortKey identifies the order of the event list
type SortKey string

const (
	SortNone        SortKey = ""
	SortByTitle     SortKey = "title"
	SortByStartTime SortKey = "start_time"
)

// SortOption is one entry of the sort dropdown
type SortOption struct {
	Value SortKey
	Name  string
}

// SortOptions is the closed set of choices offered by the sort dropdown, in display order
var SortOptions = []SortOption{
	{Value: SortByTitle, Name: "By title"},
	{Value: SortByStartTime, Name: "By date"},
}

// Valid reports whether k is SortNone or one of SortOptions
func (k SortKey) Valid() bool {
	if k == SortNone {
		return true
	}
	for _, opt := range SortOptions {
		if opt.Value == k {
			return true
		}
	}
	return false
}

// Label returns the option name for k, or "" when k has no option
func (k SortKey) Label() string {
	for _, opt := range SortOptions {
		if opt.Value == k {
			return opt.Name
		}
	}
	return ""
}

// ParseSortKey converts a raw string into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.Valid() {
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
	return k, nil
}

// FilterState is the user's current search and sort criteria.
// It is a value: updates go through WithQuery/WithSort, which return copies.
type FilterState struct {
	Query string  `toml:"query"`
	Sort  SortKey `toml:"sort"`
}

// WithQuery returns a copy of f with Query replaced
func (f FilterState) WithQuery(query string) FilterState {
	f.Query = query
	return f
}

// WithSort returns a copy of f with Sort replaced
func (f FilterState) WithSort(sort SortKey) FilterState {
	f.Sort = sort
	return f
}

// queryRunes is the sanitizer the search box applies to its text
var queryRunes = runeutil.NewSanitizer(runeutil.ReplaceTabs(" "), runeutil.ReplaceNewlines(" "))

// NormalizeQuery turns q into single-line text the search box can show
// unchanged: tabs and line breaks become spaces, other control characters
// and invalid UTF-8 are dropped.
func NormalizeQuery(q string) string {
	return string(queryRunes.Sanitize([]rune(q)))
}

// IsZero reports whether f applies no filtering and no ordering
func (f FilterState) IsZero() bool {
	return f.Query == "" && f.Sort == SortNone
}

// Event represents a scheduled meeting
type Event struct {
	ID           string
	Title        string
	Details      string
	Link         string
	Comment      string
	Host         string
	Participants []string
	StartTime    time.Time
	EndTime      time.Time
}

// Validate checks the fields a stored event must have
func (e Event) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidEvent)
	case strings.TrimSpace(e.Link) == "":
		return fmt.Errorf("%w: link is required", ErrInvalidEvent)
	case e.StartTime.IsZero() || e.EndTime.IsZero():
		return fmt.Errorf("%w: start and end time are required", ErrInvalidEvent)
	case e.EndTime.Before(e.StartTime):
		return fmt.Errorf("%w: ends before it starts", ErrInvalidEvent)
	}
	return nil
}

// Overlaps reports whether the two events share any point in time.
// Ranges are half-open, so back-to-back meetings do not overlap.
func (e Event) Overlaps(other Event) bool {
	return e.StartTime.Before(other.EndTime) && other.StartTime.Before(e.EndTime)
}

// Duration returns how long the event lasts
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}
