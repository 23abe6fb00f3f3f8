package ui

import (
	"calcgrid/inspect"
	"calcgrid/keys"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateHelp
)

// Menu is the one-line key reference below the keypad.
type Menu struct {
	groups        [][]keys.KeyName
	height, width int
	state         MenuState
	inverted      bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var defaultMenuGroups = [][]keys.KeyName{
	{keys.KeyInvert, keys.KeyPush, keys.KeyPop, keys.KeyClear, keys.KeyReset},
	{keys.KeyEquals, keys.KeyCopy},
	{keys.KeyHelp, keys.KeyQuit},
}

var helpMenuGroups = [][]keys.KeyName{
	{keys.KeyHelp, keys.KeyQuit},
}

func NewMenu() *Menu {
	return &Menu{
		groups:  defaultMenuGroups,
		state:   StateDefault,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateHelp:
		m.groups = helpMenuGroups
	default:
		m.groups = defaultMenuGroups
	}
}

// SetInverted marks the inv entry as active.
func (m *Menu) SetInverted(inverted bool) {
	m.inverted = inverted
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for g, group := range m.groups {
		// The middle group holds the evaluation keys.
		inActionGroup := len(m.groups) > 1 && g == 1
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localActionStyle = actionGroupStyle
				localKeyStyle    = keyStyle
				localDescStyle   = descStyle
			)
			if m.keyDown == k || (k == keys.KeyInvert && m.inverted) {
				localActionStyle = localActionStyle.Underline(true)
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			if inActionGroup {
				s.WriteString(localActionStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localActionStyle.Render(binding.Help().Desc))
			} else {
				s.WriteString(localKeyStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localDescStyle.Render(binding.Help().Desc))
			}

			switch {
			case i != len(group)-1:
				s.WriteString(sepStyle.Render(separator))
			case g != len(m.groups)-1:
				s.WriteString(sepStyle.Render(verticalSeparator))
			}
		}
	}

	out := s.String()
	if m.width > 0 && ansi.PrintableRuneWidth(out) > m.width {
		out = truncate.StringWithTail(out, uint(m.width), "…")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
}

// InspectNode reports the menu for UI snapshots.
func (m *Menu) InspectNode() *inspect.Node {
	var options []string
	for _, group := range m.groups {
		for _, k := range group {
			options = append(options, keys.GlobalkeyBindings[k].Help().Key)
		}
	}
	n := inspect.NewNode("Menu").
		WithBounds(0, 0, m.width, m.height).
		WithState("options", options).
		WithStyles(inspect.ExtractStyleInfo(keyStyle, "menu.key"))
	if m.keyDown >= 0 {
		n.WithState("key_down", keys.GlobalkeyBindings[m.keyDown].Help().Key)
	}
	return n
}
