package types

import "eventdeck/internal/ui/components/eventfilter"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode    Mode
	Control eventfilter.Control // which filter control to focus when entering ModeFilter
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// ForwardToFilterAction hands the key to the filter bar
type ForwardToFilterAction struct{}

func (a ForwardToFilterAction) Type() string { return "forward_to_filter" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Event actions
type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

type OpenLinkAction struct {
	URL string
}

func (a OpenLinkAction) Type() string { return "open_link" }

type CopyLinkAction struct {
	URL string
}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
