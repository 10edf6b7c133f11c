package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"zettelnav/internal/domain"
	"zettelnav/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering one frame
type ViewState struct {
	Width          int
	Height         int
	Rows           []domain.Row
	CurrentID      int // 0 when the cursor is before the first heading
	BodiesShown    bool
	StatusMessage  string
	StatusIsSignal bool // terminal-condition signals render differently
	ViewportOffset int
	ShowKeyHelp    bool
	HelpModel      help.Model
	Keys           types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	headingRender *HeadingRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(bodyPreviewLines int) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		headingRender: NewHeadingRenderer(styles, bodyPreviewLines),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	lines := r.outlineLines(state)

	// Clamp the viewport to the available height
	viewHeight := state.Height - r.chromeHeight(state)
	if viewHeight < 1 {
		viewHeight = 1
	}
	offset := state.ViewportOffset
	if offset > len(lines)-viewHeight {
		offset = len(lines) - viewHeight
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + viewHeight
	if end > len(lines) {
		end = len(lines)
	}
	if offset > 0 {
		lines[offset] = r.styles.Dim.Render("↑ (more above)")
	}
	if end < len(lines) {
		lines[end-1] = r.styles.Dim.Render("↓ (more below)")
	}
	content.WriteString(strings.Join(lines[offset:end], "\n"))
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state))

	if state.ShowKeyHelp {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	return content.String()
}

// renderTitle builds the title line with the fold-mode indicator on the
// right
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("zettelnav")

	mode := "skim"
	if state.BodiesShown {
		mode = "read"
	}
	indicator := r.styles.Mode.Render(fmt.Sprintf("[%s]", mode))

	logoWidth := lipgloss.Width(logo)
	indicatorWidth := lipgloss.Width(indicator)
	padding := state.Width - logoWidth - indicatorWidth
	if padding < 1 {
		padding = 1
	}
	return logo + strings.Repeat(" ", padding) + indicator
}

// outlineLines renders every visible row to screen lines
func (r *Renderer) outlineLines(state ViewState) []string {
	if len(state.Rows) == 0 {
		return []string{r.styles.Dim.Render("  (empty outline)")}
	}

	var lines []string
	for _, row := range state.Rows {
		isCurrent := state.CurrentID != 0 && row.Heading.ID == state.CurrentID
		lines = append(lines, r.headingRender.RenderHeading(row, isCurrent, state.Width)...)
	}
	return lines
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return r.styles.Status.Render(fmt.Sprintf("%d headings", len(state.Rows)))
	}
	if state.StatusIsSignal {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(state.StatusMessage)
}

// chromeHeight is the number of lines used by title, status, and help bar
func (r *Renderer) chromeHeight(state ViewState) int {
	h := 2 // title + status
	if state.ShowKeyHelp {
		h++
	}
	return h
}
