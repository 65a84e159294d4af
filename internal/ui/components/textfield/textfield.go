// Package textfield is a controlled single-line text input.
//
// The displayed text always comes from Props.Value. Edits are not kept: they
// are reported through Props.OnChange and show up once the owner passes the
// new value back in.
//
// The field is single-line: Props.Value is shown as given only when it holds
// no tabs, line breaks, other control characters or invalid UTF-8. Owners
// pass values through domain.NormalizeQuery to keep that true.
package textfield

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ChangeEvent is delivered to OnChange and carries the new raw text
type ChangeEvent struct {
	Value string
}

// Props configures one render/update of the field
type Props struct {
	Value       string
	Placeholder string
	OnChange    func(ChangeEvent)
}

// Model holds the cursor and focus of the field. It does not own the text.
type Model struct {
	input textinput.Model
}

// New creates a blurred text field
func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return Model{input: ti}
}

// Focus gives the field keyboard focus and returns the cursor blink command
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field has keyboard focus
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Update lets the field handle msg against the current props. OnChange is
// called once when msg changes the text and not at all otherwise.
func (m *Model) Update(msg tea.Msg, props Props) tea.Cmd {
	m.sync(props)
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// The edited text stays in the input only until the next sync: if the
	// owner does not pass it back as Props.Value it is replaced.
	if after := m.input.Value(); after != before && props.OnChange != nil {
		props.OnChange(ChangeEvent{Value: after})
	}
	return cmd
}

// View renders the field for props
func (m Model) View(props Props) string {
	m.sync(props)
	return m.input.View()
}

// Value returns the text the field would display for props
func (m Model) Value(props Props) string {
	m.sync(props)
	return m.input.Value()
}

func (m *Model) sync(props Props) {
	m.input.Placeholder = props.Placeholder
	if m.input.Value() != props.Value {
		m.input.SetValue(props.Value)
	}
}
