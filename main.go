package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zettelnav/internal/config"
	"zettelnav/internal/domain"
	"zettelnav/internal/eventbus"
	"zettelnav/internal/navigator"
	"zettelnav/internal/outline"
	"zettelnav/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("zettelnav.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Log navigation activity and errors
	bus.Subscribe(eventbus.EventNavigationBlocked, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.NavigationBlockedEvent); ok {
			log.Printf("Navigation blocked: %s (%s)", event.Command, event.Reason)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	// Build the outline and the navigator over it
	doc := buildDemoOutline()
	nav := navigator.NewService(doc, bus)

	// Create UI model
	uiModel := ui.NewModel(cfg, doc, nav, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward selected events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventAppReady, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(domain.AppReadyEvent{})

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}

// loadConfig loads the configuration, falling back to defaults
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// buildDemoOutline constructs the built-in sample Zettelkasten. Real
// integrations supply their own navigator.Outline implementation; this
// document exists so the binary is explorable out of the box.
func buildDemoOutline() *outline.Document {
	doc := outline.New()
	doc.MustAdd(1, "Zettelkasten method", "One thought per zettel. Position expresses relation:\nsiblings continue a line of thought, children branch from it.")
	doc.MustAdd(2, "Atomicity", "A zettel holds exactly one idea, stated in your own words.")
	doc.MustAdd(2, "Folgezettel", "A follow-up note lives next to the note it follows.\nNo identifiers needed; the tree is the index.")
	doc.MustAdd(3, "Branching", "When a thought forks, add a child rather than rewriting the parent.")
	doc.MustAdd(1, "Navigation", "Four motions are enough: forward, backward, inner, outer.")
	doc.MustAdd(2, "Skim or read", "Toggle fold display to read bodies while moving, or skim titles only.")
	return doc
}
