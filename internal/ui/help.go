package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the long-form help text shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("zettelnav Help"))
	help.WriteString("\n")

	// Movement section
	help.WriteString(sectionStyle.Render("Movement"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("j/↓"), descStyle.Render("Next heading at the same depth (climbs out of exhausted branches)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("k/↑"), descStyle.Render("Previous heading at the same depth (climbs to the parent from a first child)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("l/→"), descStyle.Render("Descend into the first child; on a leaf, move forward instead")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("h/←"), descStyle.Render("Ascend to the parent; at top level, move backward instead")))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Repeating l/→ walks every zettel once, depth first."))
	help.WriteString("\n")

	// Fold display section
	help.WriteString(sectionStyle.Render("Fold Display"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("tab"), descStyle.Render("Toggle between skimming headings and reading bodies while moving")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("v"), descStyle.Render("Read the current zettel's full body in the pager")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s      %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
