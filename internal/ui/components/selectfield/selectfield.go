// Package selectfield is a controlled dropdown. The selected value always
// comes from Props.Value; picking an option only reports it via OnChange.
package selectfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one choice in the list
type Option struct {
	Value string
	Name  string
}

// Props configures one render/update of the dropdown
type Props struct {
	Value        string
	DefaultValue string // disabled placeholder label shown when Value matches no option
	Options      []Option
	OnChange     func(value string)
}

// KeyMap defines the dropdown key bindings
type KeyMap struct {
	Open  key.Binding
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Close key.Binding
}

// DefaultKeyMap returns the default dropdown bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Pick:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Styles used when rendering
type Styles struct {
	Closed      lipgloss.Style
	Focused     lipgloss.Style
	Placeholder lipgloss.Style
	Item        lipgloss.Style
	Highlight   lipgloss.Style
}

// DefaultStyles returns the default dropdown styles
func DefaultStyles() Styles {
	return Styles{
		Closed:      lipgloss.NewStyle(),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Item:        lipgloss.NewStyle().PaddingLeft(2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// Model holds focus and the open/highlight state of the list
type Model struct {
	KeyMap    KeyMap
	Styles    Styles
	focused   bool
	open      bool
	highlight int
}

// New creates a closed, blurred dropdown
func New() Model {
	return Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
	}
}

func (m *Model) Focus() { m.focused = true }

func (m Model) Focused() bool { return m.focused }

func (m Model) IsOpen() bool { return m.open }

func (m Model) Highlight() int { return m.highlight }

// Blur removes focus and closes the list
func (m *Model) Blur() {
	m.focused = false
	m.open = false
}

// Update handles a key. It reports whether the key was consumed.
func (m *Model) Update(msg tea.Msg, props Props) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(props.Options) == 0 {
		return false
	}

	if !m.open {
		if key.Matches(keyMsg, m.KeyMap.Open) {
			m.open = true
			m.highlight = indexOf(props.Options, props.Value)
			if m.highlight < 0 {
				m.highlight = 0
			}
			return true
		}
		return false
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.highlight--
		if m.highlight < 0 {
			m.highlight = len(props.Options) - 1
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.highlight++
		if m.highlight >= len(props.Options) {
			m.highlight = 0
		}
	case key.Matches(keyMsg, m.KeyMap.Pick):
		m.open = false
		if m.highlight >= len(props.Options) {
			m.highlight = 0
		}
		if props.OnChange != nil {
			props.OnChange(props.Options[m.highlight].Value)
		}
	case key.Matches(keyMsg, m.KeyMap.Close):
		m.open = false
	}
	// an open list swallows every key
	return true
}

// Label returns the text the closed dropdown shows for props
func (m Model) Label(props Props) string {
	if i := indexOf(props.Options, props.Value); i >= 0 {
		return props.Options[i].Name
	}
	return props.DefaultValue
}

// View renders the dropdown for props
func (m Model) View(props Props) string {
	label := m.Label(props)
	style := m.Styles.Closed
	if indexOf(props.Options, props.Value) < 0 {
		style = m.Styles.Placeholder
	}
	if m.focused {
		style = m.Styles.Focused
	}

	var b strings.Builder
	b.WriteString(style.Render("[" + label + " ▾]"))
	if !m.open {
		return b.String()
	}

	for i, opt := range props.Options {
		b.WriteString("\n")
		if i == m.highlight {
			b.WriteString(m.Styles.Highlight.Render("> " + opt.Name))
		} else {
			b.WriteString(m.Styles.Item.Render(opt.Name))
		}
	}
	return b.String()
}

func indexOf(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
