package state

import (
	"eventdeck/internal/domain"
	"eventdeck/internal/ui/logic"
)

// AppState contains all the application state
type AppState struct {
	// Event data
	Events  []domain.Event // events in storage order
	Visible []domain.Event // events after filter and sort, as displayed

	// Filter owned by the application; the filter bar only proposes changes
	Filter domain.FilterState

	// Selection state
	SelectedIndex int // index into Visible

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the event list
	Loading        bool
	ShowDetails    bool
	ShowHelp       bool
	HelpContent    string
	StatusMessage  string // status bar message
	StatusIsError  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Events:         make([]domain.Event, 0),
		Visible:        make([]domain.Event, 0),
		ViewportHeight: 20, // Default
	}
}

// SetEvents replaces the loaded events and recomputes the visible list
func (s *AppState) SetEvents(events []domain.Event) {
	s.Events = events
	s.Refresh()
}

// SetFilter replaces the filter and recomputes the visible list
func (s *AppState) SetFilter(filter domain.FilterState) {
	s.Filter = filter
	s.Refresh()
}

// Refresh recomputes Visible and keeps the cursor in range
func (s *AppState) Refresh() {
	s.Visible = logic.Visible(s.Events, s.Filter)
	if s.SelectedIndex >= len(s.Visible) {
		s.SelectedIndex = len(s.Visible) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// CurrentEvent returns the highlighted event, if any
func (s *AppState) CurrentEvent() (domain.Event, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.Event{}, false
	}
	return s.Visible[s.SelectedIndex], true
}

// SetStatus shows msg in the status bar
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
