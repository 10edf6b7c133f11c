package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"zettelnav/internal/config"
	"zettelnav/internal/domain"
	"zettelnav/internal/eventbus"
	"zettelnav/internal/navigator"
	"zettelnav/internal/outline"
	"zettelnav/internal/ui/input"
	"zettelnav/internal/ui/input/types"
	"zettelnav/internal/ui/views"
)

// Model is the Bubble Tea model tying the outline document, the navigator,
// and the input handler together
type Model struct {
	cfg      *config.Config
	doc      *outline.Document
	nav      *navigator.Service
	bus      eventbus.EventBus
	handler  *input.Handler
	renderer *views.Renderer

	helpModel  help.Model
	helpRender *HelpRenderer
	pager      *PagerOps

	width          int
	height         int
	viewportOffset int

	statusMessage  string
	statusIsSignal bool
	quitting       bool
}

// NewModel creates the UI model
func NewModel(cfg *config.Config, doc *outline.Document, nav *navigator.Service, bus eventbus.EventBus) *Model {
	return &Model{
		cfg:        cfg,
		doc:        doc,
		nav:        nav,
		bus:        bus,
		handler:    input.New(),
		renderer:   views.NewRenderer(cfg.UISettings.BodyPreviewLines),
		helpModel:  help.New(),
		helpRender: NewHelpRenderer(),
		pager:      NewPagerOps(nil),
		width:      80,
		height:     24,
	}
}

// SetProgram hands the model the running program, needed to release the
// terminal around pager invocations
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// Handler returns the input handler so integrators can register extra modes
func (m *Model) Handler() *input.Handler {
	return m.handler
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpModel.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		actions := m.handler.HandleKey(msg, m)
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.applyAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager error: %v", msg.err)
			m.setStatus(fmt.Sprintf("pager failed: %v", msg.err), false)
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil
	}

	return m, nil
}

// applyAction executes one action produced by the input handler
func (m *Model) applyAction(action types.Action) tea.Cmd {
	switch action := action.(type) {
	case types.NavigateAction:
		m.navigate(action.Direction)
		return nil

	case types.ToggleFoldAction:
		if m.nav.ToggleFoldMode() {
			m.setStatus("reading bodies while navigating", false)
		} else {
			m.setStatus("skimming headings only", false)
		}
		return nil

	case types.ReadEntryAction:
		return m.readEntryCmd()

	case types.ToggleHelpAction:
		content := m.helpRender.RenderHelpContent()
		return func() tea.Msg {
			return pagerDoneMsg{err: m.pager.ShowText(content)}
		}

	case types.QuitAction:
		m.quitting = true
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	var d navigator.Direction
	switch direction {
	case "forward":
		d = navigator.DirectionForward
	case "backward":
		d = navigator.DirectionBackward
	case "inner":
		d = navigator.DirectionInner
	case "outer":
		d = navigator.DirectionOuter
	default:
		return
	}

	err := m.nav.Navigate(d)
	switch {
	case err == nil:
		m.setStatus("", false)
	case errors.Is(err, navigator.ErrAtLastHeading), errors.Is(err, navigator.ErrAtFirstHeading):
		// Terminal conditions are signals, not failures
		m.setStatus(err.Error(), true)
	default:
		m.setStatus(err.Error(), false)
	}
	m.ensureVisible()
}

// readEntryCmd opens the current heading's body in the pager
func (m *Model) readEntryCmd() tea.Cmd {
	h, ok := m.doc.Current()
	if !ok {
		return nil
	}

	var content strings.Builder
	content.WriteString(h.Title)
	content.WriteString("\n")
	content.WriteString(strings.Repeat("=", len(h.Title)))
	content.WriteString("\n\n")
	if h.Body == "" {
		content.WriteString("(no body)")
	} else {
		content.WriteString(h.Body)
	}

	text := content.String()
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowText(text)}
	}
}

func (m *Model) handleEvent(e domain.DomainEvent) {
	switch e := e.(type) {
	case domain.ErrorEvent:
		m.setStatus(e.Message, false)
	case domain.AppReadyEvent:
		m.setStatus("ready", false)
	}
}

func (m *Model) setStatus(msg string, isSignal bool) {
	m.statusMessage = msg
	m.statusIsSignal = isSignal
}

// ensureVisible scrolls the viewport so the cursor line stays on screen
func (m *Model) ensureVisible() {
	line := m.cursorLine()
	viewHeight := m.height - 3
	if viewHeight < 1 {
		viewHeight = 1
	}

	if line < m.viewportOffset {
		m.viewportOffset = line
	} else if line >= m.viewportOffset+viewHeight {
		m.viewportOffset = line - viewHeight + 1
	}
}

// cursorLine returns the screen line index of the current heading within
// the rendered outline
func (m *Model) cursorLine() int {
	currentID := m.doc.CurrentID()
	line := 0
	for _, row := range m.doc.Rows() {
		if row.Heading.ID == currentID {
			return line
		}
		line += m.rowLines(row)
	}
	return 0
}

// rowLines counts the screen lines one row occupies, body preview included
func (m *Model) rowLines(row domain.Row) int {
	n := 1
	if row.Fold.BodyVisible && row.Heading.Body != "" {
		bodyLines := len(strings.Split(row.Heading.Body, "\n"))
		preview := m.cfg.UISettings.BodyPreviewLines
		if preview > 0 && bodyLines > preview {
			bodyLines = preview + 1 // truncation marker
		}
		n += bodyLines
	}
	return n
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Rows:           m.doc.Rows(),
		CurrentID:      m.doc.CurrentID(),
		BodiesShown:    m.nav.BodiesShown(),
		StatusMessage:  m.statusMessage,
		StatusIsSignal: m.statusIsSignal,
		ViewportOffset: m.viewportOffset,
		ShowKeyHelp:    m.cfg.UISettings.ShowKeyHelp,
		HelpModel:      m.helpModel,
		Keys:           m.handler.Keys(),
	})
}

// Context implementation for the input handler

// CurrentTitle implements types.Context
func (m *Model) CurrentTitle() string {
	h, ok := m.doc.Current()
	if !ok {
		return ""
	}
	return h.Title
}

// HasHeadings implements types.Context
func (m *Model) HasHeadings() bool {
	return m.doc.Len() > 0
}

// BodiesShown implements types.Context
func (m *Model) BodiesShown() bool {
	return m.nav.BodiesShown()
}
