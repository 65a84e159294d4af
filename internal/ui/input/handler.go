package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/ui/input/modes"
	"eventdeck/internal/ui/input/types"
)

// Handler dispatches keys to the handler of the current mode and performs
// mode transitions, collecting the Enter/Exit actions they produce.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeList,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeList] = modes.NewListMode(keys)
	h.modes[types.ModeFilter] = modes.NewFilterMode(keys)
	h.modes[types.ModeDetails] = modes.NewDetailsMode(keys)

	return h
}

// HandleKey returns the actions for msg. Mode changes are applied here and
// replaced by the Enter/Exit actions of the modes involved, followed by the
// ChangeModeAction itself so the model can react (focus, blur).
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			allActions = append(allActions, current.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		allActions = append(allActions, changeMode)
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}

	return allActions, true
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// ChangeMode switches mode directly, without running Enter/Exit
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeList
}
