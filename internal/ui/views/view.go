package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Events         []domain.Event // visible events, already filtered and sorted
	TotalEvents    int            // events before filtering
	Filter         domain.FilterState
	FilterBar      string // rendered filter bar
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Loading        bool
	StatusMessage  string
	StatusIsError  bool
	ShowDetails    bool
	ShowHelp       bool
	HelpContent    string
	HelpModel      help.Model
	HelpKeys       help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	eventRender *EventRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(dateFormat string) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		eventRender: NewEventRenderer(styles, dateFormat),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(state.FilterBar)
	content.WriteString("\n\n")

	// Main content
	switch {
	case state.Loading && state.TotalEvents == 0:
		content.WriteString(r.styles.Dim.Render("Loading events..."))
	case len(state.Events) == 0:
		content.WriteString(r.styles.Dim.Render("No events found"))
	default:
		content.WriteString(r.renderEventList(state))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Inherit(r.styles.StatusError)
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Footer is pushed to the bottom when no popup is visible
	if !state.ShowDetails && !state.ShowHelp {
		footer := r.styles.Help.Render(state.HelpModel.View(state.HelpKeys))

		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowDetails && state.SelectedIndex >= 0 && state.SelectedIndex < len(state.Events) {
		details := r.eventRender.RenderDetails(state.Events[state.SelectedIndex])
		return r.popupRender.RenderPopupOverlay(finalContent, details, state.Height, state.Width, r.styles.DetailsBox)
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.HelpBox)
	}

	return finalContent
}

// renderTitleLine renders the logo with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.UnsetMarginBottom().Render("eventdeck")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.Dim.Render("↻ Loading"))
	}
	if state.Filter.Query != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.Filter.Query)))
	}
	if state.Filter.Sort != domain.SortNone {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[%s]", state.Filter.Sort.Label())))
	}
	if state.TotalEvents > 0 {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d/%d", len(state.Events), state.TotalEvents)))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderEventList renders the visible window of the event list
func (r *Renderer) renderEventList(state ViewState) string {
	total := len(state.Events)
	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := total > state.ViewportOffset+state.ViewportHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	start := state.ViewportOffset
	// keep the cursor on screen when indicators eat into the window
	if state.SelectedIndex >= start+effectiveHeight {
		start = state.SelectedIndex - effectiveHeight + 1
	}

	var lines []string
	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	end := start + effectiveHeight
	if end > total {
		end = total
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.eventRender.RenderEvent(state.Events[i], i == state.SelectedIndex, state.Filter.Query))
	}

	if needsBottomIndicator {
		itemsBelow := total - end
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}
