package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/ui/input/types"
)

// DetailsMode handles keys while the event details popup is shown
type DetailsMode struct {
	keys types.KeyMap
}

func NewDetailsMode(keys types.KeyMap) *DetailsMode {
	return &DetailsMode{keys: keys}
}

func (m *DetailsMode) Name() string {
	return "details"
}

func (m *DetailsMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ShowDetailsAction{}}
}

func (m *DetailsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Details), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	case key.Matches(msg, m.keys.Open):
		return linkAction(ctx, true)
	case key.Matches(msg, m.keys.Copy):
		return linkAction(ctx, false)
	}
	// the popup is modal
	return nil, true
}
