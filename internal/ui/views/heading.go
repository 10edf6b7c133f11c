package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zettelnav/internal/domain"
)

// HeadingRenderer handles rendering of heading rows
type HeadingRenderer struct {
	styles           *Styles
	bodyPreviewLines int
}

// NewHeadingRenderer creates a new heading renderer
func NewHeadingRenderer(styles *Styles, bodyPreviewLines int) *HeadingRenderer {
	return &HeadingRenderer{
		styles:           styles,
		bodyPreviewLines: bodyPreviewLines,
	}
}

// RenderHeading renders one heading line, plus its body preview when the
// entry is unfolded. Returns one or more screen lines.
func (r *HeadingRenderer) RenderHeading(row domain.Row, isCurrent bool, width int) []string {
	h := row.Heading

	arrow := " "
	if h.HasChildren {
		if row.Fold.ChildrenVisible {
			arrow = "▼"
		} else {
			arrow = "▶"
		}
	}

	indent := strings.Repeat("  ", h.Level-1)

	var line string
	if isCurrent {
		// Keep the cursor line plain so the background covers it evenly
		line = r.renderCursorLine(fmt.Sprintf("%s%s %s", indent, arrow, h.Title), width)
	} else {
		titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(GetLevelColor(h.Level)))
		if h.Level == 1 {
			titleStyle = titleStyle.Bold(true)
		}
		line = fmt.Sprintf("%s%s %s", indent, r.styles.FoldArrow.Render(arrow), titleStyle.Render(h.Title))
	}

	lines := []string{line}

	if row.Fold.BodyVisible && h.Body != "" {
		bodyIndent := indent + "    "
		for i, bodyLine := range strings.Split(h.Body, "\n") {
			if r.bodyPreviewLines > 0 && i == r.bodyPreviewLines {
				lines = append(lines, bodyIndent+r.styles.Dim.Render("…"))
				break
			}
			lines = append(lines, bodyIndent+r.styles.Body.Render(bodyLine))
		}
	}

	return lines
}

// renderCursorLine pads the line to full width and applies the cursor
// background
func (r *HeadingRenderer) renderCursorLine(line string, width int) string {
	if width > 0 {
		lineLen := lipgloss.Width(line)
		if lineLen < width {
			line = line + strings.Repeat(" ", width-lineLen)
		}
	}
	return r.styles.Cursor.Render(line)
}
