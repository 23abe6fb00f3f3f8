package overlay

import (
	"calcgrid/keys"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists every key binding in columns inside a rounded box.
type HelpOverlay struct {
	// Title displayed at the top
	title string
	// Footer is shown under the bindings
	footer string
	help   help.Model

	width int
}

// helpColumns groups the bindings shown side by side.
var helpColumns = [][]keys.KeyName{
	{keys.KeyDigit0, keys.KeyPoint, keys.KeySign, keys.KeyEquals, keys.KeyClear, keys.KeyReset},
	{keys.KeyAdd, keys.KeySubtract, keys.KeyMultiply, keys.KeyDivide, keys.KeyPower, keys.KeyReciprocal},
	{keys.KeySin, keys.KeyCos, keys.KeyTan, keys.KeyCtg, keys.KeyLog, keys.KeyLn},
	{keys.KeyInvert, keys.KeyPush, keys.KeyPop, keys.KeyCopy, keys.KeyHelp, keys.KeyQuit},
}

// NewHelpOverlay creates the key reference overlay
func NewHelpOverlay(title string) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return &HelpOverlay{
		title:  title,
		footer: "digits 0-9 enter numbers · click buttons with the mouse · press ? to close",
		help:   h,
	}
}

// SetWidth sets the overlay width
func (o *HelpOverlay) SetWidth(width int) {
	o.width = width
	o.help.Width = max(0, width-6)
}

// FullHelp implements help.KeyMap.
func (o *HelpOverlay) FullHelp() [][]key.Binding {
	out := make([][]key.Binding, 0, len(helpColumns))
	for _, column := range helpColumns {
		bindings := make([]key.Binding, 0, len(column))
		for _, name := range column {
			b := keys.GlobalkeyBindings[name]
			if name == keys.KeyDigit0 {
				b = key.NewBinding(key.WithKeys("0"), key.WithHelp("0-9", "digit"))
			}
			bindings = append(bindings, b)
		}
		out = append(out, bindings)
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (o *HelpOverlay) ShortHelp() []key.Binding {
	return []key.Binding{keys.GlobalkeyBindings[keys.KeyHelp], keys.GlobalkeyBindings[keys.KeyQuit]}
}

// Render renders the help overlay
func (o *HelpOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	if o.width > 0 {
		boxStyle = boxStyle.Width(o.width - 2)
	}

	content := titleStyle.Render(o.title) + "\n\n" +
		o.help.View(o) + "\n\n" +
		footerStyle.Render(o.footer)

	return boxStyle.Render(content)
}

var _ help.KeyMap = (*HelpOverlay)(nil)
