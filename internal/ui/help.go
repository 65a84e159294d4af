package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/ui/components/eventfilter"
	"eventdeck/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys       types.KeyMap
	filterKeys eventfilter.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap, filterKeys eventfilter.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys, filterKeys: filterKeys}
}

// Render renders the full help text. Key labels come from the bindings so
// the text follows any remapping.
func (r *HelpRenderer) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("eventdeck Help"))
	help.WriteString("\n")

	section := func(name string, bindings ...key.Binding) {
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	section("Navigation", r.keys.Up, r.keys.Down, r.keys.PageUp, r.keys.PageDown, r.keys.Home, r.keys.End)
	section("Search & Sort",
		r.keys.Search, r.keys.Sort, r.keys.Clear, r.filterKeys.Next, r.filterKeys.Prev,
		key.NewBinding(key.WithHelp("enter/space", "open sort list / pick option")),
		r.keys.Back,
	)
	section("Events", r.keys.Details, r.keys.Open, r.keys.Copy, r.keys.Reload)
	section("Other", r.keys.Help, r.keys.Quit)

	return strings.TrimRight(help.String(), "\n")
}
