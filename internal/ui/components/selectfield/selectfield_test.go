package selectfield

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

var options = []Option{
	{Value: "a", Name: "Alpha"},
	{Value: "b", Name: "Beta"},
	{Value: "c", Name: "Gamma"},
}

func props(value string, picked *[]string) Props {
	return Props{
		Value:        value,
		DefaultValue: "Pick one",
		Options:      options,
		OnChange: func(v string) {
			*picked = append(*picked, v)
		},
	}
}

func TestOpenNavigatePick(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	p := props("", &picked)

	require.True(t, m.Update(enter, p))
	assert.True(t, m.IsOpen())
	assert.Equal(t, 0, m.Highlight(), "unset value highlights the first option")

	m.Update(down, p)
	m.Update(down, p)
	m.Update(down, p)
	assert.Equal(t, 0, m.Highlight(), "highlight wraps")
	m.Update(up, p)
	assert.Equal(t, 2, m.Highlight())

	m.Update(enter, p)
	assert.False(t, m.IsOpen())
	assert.Equal(t, []string{"c"}, picked, "chosen value is emitted directly")
}

func TestOpenHighlightsCurrentValue(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	m.Update(enter, props("b", &picked))
	assert.Equal(t, 1, m.Highlight())
}

func TestPickingCurrentValueStillEmits(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	p := props("a", &picked)
	m.Update(enter, p)
	m.Update(enter, p)
	assert.Equal(t, []string{"a"}, picked)
}

func TestEscClosesWithoutEmitting(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	p := props("a", &picked)
	m.Update(enter, p)
	m.Update(down, p)
	require.True(t, m.Update(esc, p))
	assert.False(t, m.IsOpen())
	assert.Empty(t, picked)
}

func TestClosedIgnoresNavigationAndBlurredIgnoresAll(t *testing.T) {
	var picked []string
	m := New()
	p := props("", &picked)
	assert.False(t, m.Update(enter, p), "blurred")

	m.Focus()
	assert.False(t, m.Update(down, p), "closed list lets navigation through")
	assert.False(t, m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, p))
}

func TestLabel(t *testing.T) {
	var picked []string
	m := New()
	assert.Equal(t, "Pick one", m.Label(props("", &picked)))
	assert.Equal(t, "Pick one", m.Label(props("zzz", &picked)))
	assert.Equal(t, "Beta", m.Label(props("b", &picked)))

	assert.Contains(t, m.View(props("b", &picked)), "Beta")
	assert.NotContains(t, m.View(props("b", &picked)), "Gamma", "closed list shows only the label")
}

func TestViewListsOptionsWhenOpen(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	p := props("", &picked)
	m.Update(enter, p)

	view := m.View(p)
	for _, opt := range options {
		assert.Contains(t, view, opt.Name)
	}
	assert.Contains(t, view, "> Alpha")
	assert.Equal(t, view, m.View(p))
}

func TestBlurCloses(t *testing.T) {
	var picked []string
	m := New()
	m.Focus()
	m.Update(enter, props("", &picked))
	m.Blur()
	assert.False(t, m.IsOpen())
	assert.False(t, m.Focused())
}
