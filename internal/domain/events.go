package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHeadingMoved      EventType = "HeadingMoved"
	EventNavigationBlocked EventType = "NavigationBlocked"
	EventFoldModeChanged   EventType = "FoldModeChanged"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HeadingMovedEvent is emitted when a movement command lands on a new heading
type HeadingMovedEvent struct {
	Command string // "forward", "backward", "inner", "outer"
}

func (e HeadingMovedEvent) Type() EventType { return EventHeadingMoved }

// NavigationBlockedEvent is emitted when a movement command hits a terminal
// condition (first or last heading) and the cursor stays put
type NavigationBlockedEvent struct {
	Command string
	Reason  string
}

func (e NavigationBlockedEvent) Type() EventType { return EventNavigationBlocked }

// FoldModeChangedEvent is emitted when the fold-display toggle flips
type FoldModeChangedEvent struct {
	ShowBodies bool
}

func (e FoldModeChangedEvent) Type() EventType { return EventFoldModeChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
