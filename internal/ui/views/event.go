package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/domain"
)

const maxTitleWidth = 48

// EventRenderer handles rendering of event rows and the details popup
type EventRenderer struct {
	styles     *Styles
	dateFormat string
}

// NewEventRenderer creates a new event renderer
func NewEventRenderer(styles *Styles, dateFormat string) *EventRenderer {
	return &EventRenderer{
		styles:     styles,
		dateFormat: dateFormat,
	}
}

// RenderEvent renders one list row: start date, title and host
func (r *EventRenderer) RenderEvent(event domain.Event, isSelected bool, query string) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}

	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	date := r.styles.Date.Inherit(bg).Render(event.StartTime.Local().Format(r.dateFormat))
	title := r.highlightMatch(truncate(event.Title, maxTitleWidth), query, r.styles.Highlight.Inherit(bg), bg)

	parts := []string{bg.Render(cursor), date, bg.Render("  "), title}
	if event.Host != "" {
		parts = append(parts, r.styles.Host.Inherit(bg).Render(fmt.Sprintf("  (%s)", event.Host)))
	}
	return strings.Join(parts, "")
}

// RenderDetails renders the body of the details popup
func (r *EventRenderer) RenderDetails(event domain.Event) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.UnsetMarginBottom().Render(event.Title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(r.styles.Label.Render(fmt.Sprintf("%-13s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("When", fmt.Sprintf("%s  (%s)", event.StartTime.Local().Format(r.dateFormat), event.Duration()))
	row("Host", event.Host)
	row("Participants", strings.Join(event.Participants, ", "))
	row("Link", event.Link)
	row("Comment", event.Comment)

	if event.Details != "" {
		b.WriteString("\n")
		b.WriteString(event.Details)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("o open link • y copy link • esc close"))
	return b.String()
}

// highlightMatch highlights the first case-insensitive occurrence of query
func (r *EventRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	if query == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	lowerQuery := strings.ToLower(query)
	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}
	end := index + len(lowerQuery)

	var result []string
	if index > 0 {
		result = append(result, normalStyle.Render(text[:index]))
	}
	result = append(result, highlightStyle.Render(text[index:end]))
	if end < len(text) {
		result = append(result, normalStyle.Render(text[end:]))
	}
	return strings.Join(result, "")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
