package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"zettelnav/internal/ui/input/modes"
	"zettelnav/internal/ui/input/types"
)

// Handler dispatches key messages to the active mode handler
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
}

func New() *Handler {
	keys := types.DefaultKeyMap()

	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	return allActions
}

// RegisterMode lets integrators add their own modes
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the key map, for the help bar
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// Reset returns the handler to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
