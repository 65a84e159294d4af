package ui

import (
	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// eventsLoadedMsg contains the result of reading the store
type eventsLoadedMsg struct {
	events []domain.Event
	err    error
}

// linkResultMsg reports the outcome of opening or copying a link
type linkResultMsg struct {
	status string
	err    error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct {
	// seq ties the message to the status it was scheduled for
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
