// Package eventfilter renders the search box and sort dropdown above the
// event list.
//
// The filter values are owned by the caller. Every edit is proposed through
// Props.SetFilter as a whole new FilterState (a copy of Props.Filter with one
// field replaced); the component never stores or mutates the filter itself.
// What it does keep is terminal bookkeeping: focus, the text cursor and
// whether the sort list is open.
package eventfilter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/domain"
	"eventdeck/internal/ui/components/selectfield"
	"eventdeck/internal/ui/components/textfield"
)

const (
	SearchPlaceholder = "Search"
	SortPlaceholder   = "Sort by"
)

// Props is everything the component reads from its owner
type Props struct {
	Filter    domain.FilterState
	SetFilter func(domain.FilterState)
}

// Control identifies one of the two inputs
type Control int

const (
	ControlSearch Control = iota
	ControlSort
)

// KeyMap defines the bindings that move between controls
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	}
}

// Model is the EventFilter component
type Model struct {
	KeyMap  KeyMap
	search  textfield.Model
	sort    selectfield.Model
	control Control
	active  bool

	boxStyle     lipgloss.Style
	focusedStyle lipgloss.Style
}

// New creates an inactive component with the search box selected
func New() Model {
	return Model{
		KeyMap:  DefaultKeyMap(),
		search:  textfield.New(),
		sort:    selectfield.New(),
		control: ControlSearch,
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(32),
		focusedStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1).
			Width(32),
	}
}

// Focus activates the component with the given control focused
func (m *Model) Focus(c Control) tea.Cmd {
	m.active = true
	m.control = c
	if c == ControlSort {
		m.search.Blur()
		m.sort.Focus()
		return nil
	}
	m.sort.Blur()
	return m.search.Focus()
}

// Blur deactivates both controls
func (m *Model) Blur() {
	m.active = false
	m.search.Blur()
	m.sort.Blur()
}

// Focused reports whether the component receives keys
func (m Model) Focused() bool { return m.active }

// Control returns the control that has (or last had) focus
func (m Model) Control() Control { return m.control }

// Capturing reports whether the component wants every key, including esc,
// because the sort list is open
func (m Model) Capturing() bool { return m.active && m.sort.IsOpen() }

// Update routes msg to the focused control. SetFilter is called
// synchronously, at most once, before Update returns.
func (m *Model) Update(msg tea.Msg, props Props) tea.Cmd {
	if !m.active {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.sort.IsOpen() {
		switch {
		case key.Matches(keyMsg, m.KeyMap.Next), key.Matches(keyMsg, m.KeyMap.Prev):
			// two controls, so next and previous are the same move
			if m.control == ControlSearch {
				return m.Focus(ControlSort)
			}
			return m.Focus(ControlSearch)
		}
	}

	switch m.control {
	case ControlSort:
		m.sort.Update(msg, sortProps(props))
		return nil
	default:
		return m.search.Update(msg, searchProps(props))
	}
}

// View renders both controls for props. With the same props and no
// intervening Update it returns the same string.
func (m Model) View(props Props) string {
	searchStyle, sortStyle := m.boxStyle, m.boxStyle.Width(20)
	if m.active {
		if m.control == ControlSearch {
			searchStyle = m.focusedStyle
		} else {
			sortStyle = m.focusedStyle.Width(20)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		searchStyle.Render(m.search.View(searchProps(props))),
		" ",
		sortStyle.Render(m.sort.View(sortProps(props))),
	)
}

// DisplayedQuery is the text the search box shows for props
func (m Model) DisplayedQuery(props Props) string {
	return m.search.Value(searchProps(props))
}

// DisplayedSort is the label the sort dropdown shows for props
func (m Model) DisplayedSort(props Props) string {
	return m.sort.Label(sortProps(props))
}

func searchProps(p Props) textfield.Props {
	return textfield.Props{
		Value:       p.Filter.Query,
		Placeholder: SearchPlaceholder,
		OnChange: func(e textfield.ChangeEvent) {
			p.SetFilter(p.Filter.WithQuery(e.Value))
		},
	}
}

func sortProps(p Props) selectfield.Props {
	options := make([]selectfield.Option, len(domain.SortOptions))
	for i, opt := range domain.SortOptions {
		options[i] = selectfield.Option{Value: string(opt.Value), Name: opt.Name}
	}
	return selectfield.Props{
		Value:        string(p.Filter.Sort),
		DefaultValue: SortPlaceholder,
		Options:      options,
		OnChange: func(value string) {
			p.SetFilter(p.Filter.WithSort(domain.SortKey(value)))
		},
	}
}
