package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/config"
	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/store"
	"eventdeck/internal/ui/components/eventfilter"
	"eventdeck/internal/ui/handlers"
	"eventdeck/internal/ui/input"
	"eventdeck/internal/ui/input/types"
	"eventdeck/internal/ui/logic"
	"eventdeck/internal/ui/state"
	"eventdeck/internal/ui/views"
)

const (
	statusTimeout = 3 * time.Second
	loadTimeout   = 10 * time.Second

	// title, filter bar, gaps, status, footer and container padding
	reservedLines = 12
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  store.Store
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        types.KeyMap
	inPagerMode bool // tracks if we're currently in pager mode
	statusSeq   int
	filterSeq   uint64

	filterBar    eventfilter.Model
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	linkOps      *LinkOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The initial filter comes from the config
// when remember_filter is set.
func NewModel(bus eventbus.EventBus, cfg *config.Config, st store.Store) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	keys := types.DefaultKeyMap()

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        st,
		state:        state.NewAppState(),
		help:         help.New(),
		keys:         keys,
		filterBar:    eventfilter.New(),
		inputHandler: input.New(keys),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.DateFormat),
		linkOps:      NewLinkOps(),
	}
	m.helpRenderer = NewHelpRenderer(keys, m.filterBar.KeyMap)
	m.eventHandler = handlers.NewEventHandler(m.state, m.setStatus, m.ensureSelectedVisible)

	if cfg.UISettings.RememberFilter {
		m.state.SetFilter(cfg.Filter.WithQuery(domain.NormalizeQuery(cfg.Filter.Query)))
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.linkOps != nil {
		m.linkOps.SetProgram(p)
	}
}

// Filter returns the filter currently applied to the list
func (m *Model) Filter() domain.FilterState {
	return m.state.Filter
}

// filterProps hands the owned filter and its setter to the filter bar
func (m *Model) filterProps() eventfilter.Props {
	return eventfilter.Props{
		Filter:    m.state.Filter,
		SetFilter: m.setFilter,
	}
}

// setFilter replaces the owned filter, recomputes the list and announces the change
func (m *Model) setFilter(filter domain.FilterState) {
	old := m.state.Filter
	m.state.SetFilter(filter)
	m.state.SelectedIndex = 0
	m.state.ViewportOffset = 0

	m.filterSeq++
	if m.bus != nil {
		m.bus.Publish(eventbus.FilterChangedEvent{Seq: m.filterSeq, Old: old, New: filter})
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.state.Loading = true
	return m.loadEvents()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// Help popup (pager fallback) swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				m.state.HelpContent = ""
			}
			return m, nil
		}

		actions, consumed := m.inputHandler.HandleKey(msg, m)
		if !consumed {
			return m, nil
		}

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// cursor blink and other widget messages
		var cmd tea.Cmd
		if m.filterBar.Focused() {
			cmd = m.filterBar.Update(msg, m.filterProps())
		}
		model, next := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, next)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	// ov owns the screen
	if m.inPagerMode {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Events:         m.state.Visible,
		TotalEvents:    len(m.state.Events),
		Filter:         m.state.Filter,
		FilterBar:      m.filterBar.View(m.filterProps()),
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Loading:        m.state.Loading,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowDetails:    m.state.ShowDetails,
		ShowHelp:       m.state.ShowHelp,
		HelpContent:    m.state.HelpContent,
		HelpModel:      m.help,
		HelpKeys:       m.keys,
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action types.Action, msg tea.KeyMsg) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.navigate(a.Direction)

	case types.ChangeModeAction:
		switch a.Mode {
		case types.ModeFilter:
			return m.filterBar.Focus(a.Control)
		case types.ModeList:
			m.filterBar.Blur()
			m.state.ShowDetails = false
		}

	case types.ForwardToFilterAction:
		return m.filterBar.Update(msg, m.filterProps())

	case types.ClearFilterAction:
		if m.state.Filter.IsZero() {
			return nil
		}
		m.setFilter(domain.FilterState{})
		return m.setStatus("Filter cleared", false)

	case types.ShowDetailsAction:
		if _, ok := m.state.CurrentEvent(); ok {
			m.state.ShowDetails = true
		}

	case types.OpenLinkAction:
		url := a.URL
		return func() tea.Msg {
			if err := m.linkOps.OpenLink(url); err != nil {
				return linkResultMsg{err: err}
			}
			return linkResultMsg{status: "Opened " + url}
		}

	case types.CopyLinkAction:
		url := a.URL
		return func() tea.Msg {
			if err := m.linkOps.CopyLink(url); err != nil {
				return linkResultMsg{err: err}
			}
			return linkResultMsg{status: "Copied link to clipboard"}
		}

	case types.ReloadAction:
		m.state.Loading = true
		return m.loadEvents()

	case types.ShowHelpAction:
		content := m.helpRenderer.Render()
		if m.program == nil {
			m.showHelpPopup(content)
			return nil
		}
		return m.showHelpPager(content)

	case types.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case eventsLoadedMsg:
		m.state.Loading = false
		if msg.err != nil {
			log.Printf("Error loading events: %v", msg.err)
			if m.bus != nil {
				m.bus.Publish(eventbus.ErrorEvent{Message: "loading events failed", Err: msg.err})
			}
			return m, m.setStatus(fmt.Sprintf("Error loading events: %v", msg.err), true)
		}
		loaded := eventbus.EventsLoadedEvent{Events: msg.events}
		if m.bus != nil {
			m.bus.Publish(loaded)
		}
		return m, m.eventHandler.HandleEvent(loaded)

	case linkResultMsg:
		if msg.err != nil {
			log.Printf("Link action failed: %v", msg.err)
			return m, m.setStatus(msg.err.Error(), true)
		}
		return m, m.setStatus(msg.status, false)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup silently
			log.Printf("Help pager failed: %v, falling back to popup", msg.err)
			m.showHelpPopup(m.helpRenderer.Render())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// a newer status owns the bar
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil
	}

	return m, nil
}

// loadEvents returns a command that reads all events from the store
func (m *Model) loadEvents() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		if st == nil {
			return eventsLoadedMsg{err: fmt.Errorf("no event store configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		events, err := st.List(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager(content string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.linkOps.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) showHelpPopup(content string) {
	m.state.ShowHelp = true
	m.state.HelpContent = content
}

// setStatus shows a status message and schedules its removal
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// navigate moves the cursor and scrolls the viewport
func (m *Model) navigate(direction string) {
	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(direction)
}

// ensureSelectedVisible clamps the cursor and keeps it inside the viewport
func (m *Model) ensureSelectedVisible() {
	m.navigator.UpdateState(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportHeight, len(m.state.Visible))
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

// updateViewportHeight calculates the available height for the event list
func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
	m.ensureSelectedVisible()
}

// types.Context

func (m *Model) CurrentIndex() int {
	return m.state.SelectedIndex
}

func (m *Model) TotalItems() int {
	return len(m.state.Visible)
}

func (m *Model) HasCurrentEvent() bool {
	_, ok := m.state.CurrentEvent()
	return ok
}

func (m *Model) CurrentEventLink() string {
	event, ok := m.state.CurrentEvent()
	if !ok {
		return ""
	}
	return event.Link
}

func (m *Model) FilterCapturing() bool {
	return m.filterBar.Capturing()
}
