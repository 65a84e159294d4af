package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/ui/components/eventfilter"
	"eventdeck/internal/ui/input/types"
)

// ListMode handles keys while the event list has focus
type ListMode struct {
	keys types.KeyMap
}

func NewListMode(keys types.KeyMap) *ListMode {
	return &ListMode{keys: keys}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Control: eventfilter.ControlSearch}}, true
	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Control: eventfilter.ControlSort}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearFilterAction{}}, true

	case key.Matches(msg, m.keys.Details):
		if !ctx.HasCurrentEvent() {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDetails}}, true
	case key.Matches(msg, m.keys.Open):
		return linkAction(ctx, true)
	case key.Matches(msg, m.keys.Copy):
		return linkAction(ctx, false)

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}

// linkAction builds an open or copy action for the highlighted event
func linkAction(ctx types.Context, open bool) ([]types.Action, bool) {
	link := ctx.CurrentEventLink()
	if link == "" {
		return nil, false
	}
	if open {
		return []types.Action{types.OpenLinkAction{URL: link}}, true
	}
	return []types.Action{types.CopyLinkAction{URL: link}}, true
}
