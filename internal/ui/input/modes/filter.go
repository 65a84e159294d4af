package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/ui/input/types"
)

// FilterMode is active while the search box or sort dropdown has focus.
// Apart from leaving the mode, every key belongs to the filter bar.
type FilterMode struct {
	keys types.KeyMap
}

func NewFilterMode(keys types.KeyMap) *FilterMode {
	return &FilterMode{keys: keys}
}

func (m *FilterMode) Name() string {
	return "filter"
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if ctx.FilterCapturing() {
		return []types.Action{types.ForwardToFilterAction{}}, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	case tea.KeyDown:
		// leave the bar and continue in the list
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeList},
			types.NavigateAction{Direction: "down"},
		}, true
	}

	return []types.Action{types.ForwardToFilterAction{}}, true
}
