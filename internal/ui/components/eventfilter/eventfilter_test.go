package eventfilter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdeck/internal/domain"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// recorder captures SetFilter calls without feeding them back
type recorder struct {
	calls []domain.FilterState
}

func (r *recorder) props(f domain.FilterState) Props {
	return Props{
		Filter: f,
		SetFilter: func(next domain.FilterState) {
			r.calls = append(r.calls, next)
		},
	}
}

// parent owns the filter and accepts every proposal, like the application model
type parent struct {
	filter domain.FilterState
	calls  int
}

func (p *parent) props() Props {
	return Props{
		Filter: p.filter,
		SetFilter: func(next domain.FilterState) {
			p.calls++
			p.filter = next
		},
	}
}

func TestTypingProposesQuery(t *testing.T) {
	m := New()
	m.Focus(ControlSearch)
	r := &recorder{}

	m.Update(typed("music"), r.props(domain.FilterState{}))

	require.Len(t, r.calls, 1, "one change event, one call")
	assert.Equal(t, domain.FilterState{Query: "music", Sort: ""}, r.calls[0])
}

func TestTypingKeepsSortUnchanged(t *testing.T) {
	inputs := []string{"a", "Jazz night", "  padded  ", "ünïcödé", "100%"}
	for _, s := range inputs {
		m := New()
		m.Focus(ControlSearch)
		r := &recorder{}
		start := domain.FilterState{Query: "", Sort: domain.SortByStartTime}

		m.Update(typed(s), r.props(start))

		require.Len(t, r.calls, 1, "input %q", s)
		assert.Equal(t, domain.FilterState{Query: s, Sort: domain.SortByStartTime}, r.calls[0], "input %q", s)
	}
}

func TestKeystrokesAgainstAcceptingParent(t *testing.T) {
	m := New()
	m.Focus(ControlSearch)
	p := &parent{filter: domain.FilterState{Sort: domain.SortByTitle}}

	for _, r := range "gig" {
		m.Update(typed(string(r)), p.props())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace}, p.props())

	assert.Equal(t, 4, p.calls)
	assert.Equal(t, domain.FilterState{Query: "gi", Sort: domain.SortByTitle}, p.filter)
	assert.Equal(t, "gi", m.DisplayedQuery(p.props()))
}

func TestSelectingEachOption(t *testing.T) {
	for i, opt := range domain.SortOptions {
		m := New()
		m.Focus(ControlSort)
		r := &recorder{}
		start := domain.FilterState{Query: "music"}
		props := r.props(start)

		m.Update(enter, props)
		for j := 0; j < i; j++ {
			m.Update(down, props)
		}
		m.Update(enter, props)

		require.Len(t, r.calls, 1, "option %s", opt.Name)
		assert.Equal(t, domain.FilterState{Query: "music", Sort: opt.Value}, r.calls[0])
	}
}

func TestSelectByDateScenario(t *testing.T) {
	m := New()
	m.Focus(ControlSearch)
	r := &recorder{}
	props := r.props(domain.FilterState{Query: "music", Sort: ""})

	m.Update(tab, props)
	require.Equal(t, ControlSort, m.Control())
	m.Update(enter, props) // open
	m.Update(down, props)  // "By date"
	m.Update(enter, props) // pick

	require.Len(t, r.calls, 1)
	assert.Equal(t, domain.FilterState{Query: "music", Sort: domain.SortByStartTime}, r.calls[0])
}

func TestDisplayedValuesFollowProps(t *testing.T) {
	m := New()
	r := &recorder{}

	cases := []struct {
		filter domain.FilterState
		query  string
		sort   string
	}{
		{domain.FilterState{}, "", SortPlaceholder},
		{domain.FilterState{Query: "music"}, "music", SortPlaceholder},
		{domain.FilterState{Query: "x", Sort: domain.SortByTitle}, "x", "By title"},
		{domain.FilterState{Sort: domain.SortByStartTime}, "", "By date"},
	}
	for _, tc := range cases {
		props := r.props(tc.filter)
		assert.Equal(t, tc.query, m.DisplayedQuery(props))
		assert.Equal(t, tc.sort, m.DisplayedSort(props))
		assert.Contains(t, m.View(props), tc.sort)
	}
	assert.Empty(t, r.calls, "rendering never proposes a change")
}

func TestRenderIsPureFunctionOfProps(t *testing.T) {
	m := New()
	m.Focus(ControlSearch)
	r := &recorder{}
	props := r.props(domain.FilterState{Query: "music", Sort: domain.SortByTitle})

	first := m.View(props)
	second := m.View(props)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "music")
	assert.Contains(t, first, "By title")
}

func TestEscClosesOpenSortListFirst(t *testing.T) {
	m := New()
	m.Focus(ControlSort)
	r := &recorder{}
	props := r.props(domain.FilterState{})

	m.Update(enter, props)
	require.True(t, m.Capturing())
	m.Update(tab, props)
	assert.Equal(t, ControlSort, m.Control(), "tab is swallowed by the open list")

	m.Update(esc, props)
	assert.False(t, m.Capturing())
	assert.Empty(t, r.calls)
}

func TestInactiveIgnoresInput(t *testing.T) {
	m := New()
	r := &recorder{}
	m.Update(typed("abc"), r.props(domain.FilterState{}))
	assert.Empty(t, r.calls)

	m.Focus(ControlSearch)
	m.Blur()
	m.Update(typed("abc"), r.props(domain.FilterState{}))
	assert.Empty(t, r.calls)
	assert.False(t, m.Focused())
}

func TestSetFilterPanicPropagates(t *testing.T) {
	m := New()
	m.Focus(ControlSearch)
	props := Props{
		Filter:    domain.FilterState{},
		SetFilter: func(domain.FilterState) { panic("owner failed") },
	}
	assert.PanicsWithValue(t, "owner failed", func() {
		m.Update(typed("x"), props)
	})
}
