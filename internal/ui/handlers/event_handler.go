package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/eventbus"
	"eventdeck/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	setStatus func(msg string, isError bool) tea.Cmd
	onLoaded  func()
}

// NewEventHandler creates a new event handler. setStatus shows a message in
// the status bar; onLoaded runs after the event list was replaced.
func NewEventHandler(appState *state.AppState, setStatus func(string, bool) tea.Cmd, onLoaded func()) *EventHandler {
	return &EventHandler{
		state:     appState,
		setStatus: setStatus,
		onLoaded:  onLoaded,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.EventsLoadedEvent:
		h.state.Loading = false
		h.state.SetEvents(e.Events)
		if h.onLoaded != nil {
			h.onLoaded()
		}
		return h.setStatus(fmt.Sprintf("Loaded %d events", len(e.Events)), false)

	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.setStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), true)
		}
		return h.setStatus(fmt.Sprintf("Error: %s", e.Message), true)

	case eventbus.ConfigSavedEvent:
		log.Printf("Config saved to %s", e.Path)
	}

	return nil
}
