package ui

import (
	"calcgrid/inspect"

	"github.com/charmbracelet/lipgloss"
)

// UI chrome colors - structural elements
var (
	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// StatusError is used for the error box and the size warning
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// Button colors, one per Kind.
var (
	NumberColor     = lipgloss.AdaptiveColor{Light: "#A21CAF", Dark: "#E879F9"}
	UnaryColor      = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
	BinaryColor     = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	SpecialColor    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	SwitchableColor = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"}
	DisplayColor    = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
)

// KindColor returns the color buttons of kind k are drawn with.
func KindColor(k Kind) lipgloss.AdaptiveColor {
	switch k {
	case KindNumber:
		return NumberColor
	case KindUnary:
		return UnaryColor
	case KindBinary:
		return BinaryColor
	case KindSwitchable, KindToggle:
		return SwitchableColor
	default:
		return SpecialColor
	}
}

// ButtonStyle returns the style of a button of kind k.
func ButtonStyle(k Kind, bordered, pressed bool) lipgloss.Style {
	color := KindColor(k)
	s := lipgloss.NewStyle().
		Foreground(color).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center)
	if bordered {
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(color)
	}
	if pressed {
		s = s.Reverse(true).Bold(true)
	}
	return s
}

// DisplayStyle is the style of the display header.
func DisplayStyle(bordered bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(DisplayColor)
	if bordered {
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(Border)
	}
	return s
}

// WarningStyle is used for the "terminal too small" notice.
var WarningStyle = lipgloss.NewStyle().Foreground(StatusError).Bold(true)

func init() {
	for k := KindNumber; k <= KindToggle; k++ {
		inspect.RegisterStyle("button."+k.String(), ButtonStyle(k, true, false))
	}
	inspect.RegisterStyle("display", DisplayStyle(true))
	inspect.RegisterStyle("warning", WarningStyle)
}
