package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres popupContent over a greyed-out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 || height <= 0 || modalW >= width || modalH >= height {
		return styledPopup
	}

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	x := (width - modalW) / 2
	y := (height - modalH) / 2
	popupLines := strings.Split(styledPopup, "\n")
	for row, line := range base {
		if row >= y && row-y < len(popupLines) {
			base[row] = spliceLine(line, popupLines[row-y], x, modalW)
		} else if line != "" {
			base[row] = dimStyle.Render(line)
		}
	}
	return strings.Join(base, "\n")
}

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// spliceLine places overlay at cell column x of the plain base line. Columns
// are counted in display cells so wide runes keep the popup aligned.
func spliceLine(base, overlay string, x, overlayWidth int) string {
	end := x + overlayWidth
	if w := ansi.StringWidth(base); w < end {
		base += spaces(end - w)
	}
	total := ansi.StringWidth(base)

	// a wide rune cut by either popup edge is replaced by a blank
	left := ansi.Truncate(base, x, "")
	left += spaces(x - ansi.StringWidth(left))

	right := ansi.TruncateLeft(base, end, "")
	if ansi.StringWidth(right) > total-end {
		right = ansi.TruncateLeft(base, end+1, "")
	}
	right = spaces(total-end-ansi.StringWidth(right)) + right

	return dimStyle.Render(left) + overlay + dimStyle.Render(right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
