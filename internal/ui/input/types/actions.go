package types

// Navigation actions
type NavigateAction struct {
	Direction string // "forward", "backward", "inner", "outer"
}

func (a NavigateAction) Type() string { return "navigate" }

// ToggleFoldAction flips the fold-display toggle
type ToggleFoldAction struct{}

func (a ToggleFoldAction) Type() string { return "toggle_fold" }

// ReadEntryAction opens the current heading's body in the pager
type ReadEntryAction struct{}

func (a ReadEntryAction) Type() string { return "read_entry" }

// ToggleHelpAction opens or closes the help screen
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
