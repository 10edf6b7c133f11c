package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zettelnav/internal/ui/input/types"
)

// NormalMode is the only built-in mode: it maps keys straight to
// navigation actions. Integrators can register their own modes on the
// handler.
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true

	case key.Matches(msg, m.keys.Forward):
		return []types.Action{types.NavigateAction{Direction: "forward"}}, true

	case key.Matches(msg, m.keys.Backward):
		return []types.Action{types.NavigateAction{Direction: "backward"}}, true

	case key.Matches(msg, m.keys.Inner):
		return []types.Action{types.NavigateAction{Direction: "inner"}}, true

	case key.Matches(msg, m.keys.Outer):
		return []types.Action{types.NavigateAction{Direction: "outer"}}, true

	case key.Matches(msg, m.keys.ToggleFold):
		return []types.Action{types.ToggleFoldAction{}}, true

	case key.Matches(msg, m.keys.ReadEntry):
		// Reading a body only makes sense on a heading
		if ctx.CurrentTitle() != "" {
			return []types.Action{types.ReadEntryAction{}}, true
		}
		return nil, true // consume the key even if no action

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
