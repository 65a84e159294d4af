package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilterChanged EventType = "FilterChanged"
	EventEventsLoaded  EventType = "EventsLoaded"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilterChangedEvent is emitted every time the owner of the filter state accepts a new value.
// Seq increases with every change so subscribers running out of order can
// tell which filter is the latest.
type FilterChangedEvent struct {
	Seq uint64
	Old FilterState
	New FilterState
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// EventsLoadedEvent is emitted when the event list has been (re)read from storage
type EventsLoadedEvent struct {
	Events []Event
}

func (e EventsLoadedEvent) Type() EventType { return EventEventsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Filter FilterState
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
