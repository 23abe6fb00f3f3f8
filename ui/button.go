package ui

import (
	"calcgrid/inspect"
	"calcgrid/keys"
	"calcgrid/ui/layout"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Kind groups buttons by what they do to the calculator.
type Kind int

const (
	KindNumber Kind = iota
	KindUnary
	KindBinary
	KindSpecial
	KindSwitchable
	KindToggle
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindSpecial:
		return "special"
	case KindSwitchable:
		return "switchable"
	case KindToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

const (
	// buttonPadding is the border plus one blank column on each side of the label.
	buttonPadding = 4
	// buttonHeight fits one label line inside a border.
	buttonHeight = 3
)

// Button is one key of the keypad. It is placed on the grid under its ID.
type Button struct {
	ID       string
	Label    string
	InvLabel string
	Kind     Kind
	Key      keys.KeyName
	Position layout.Position
}

// LabelFor returns the label shown for the given inversion state.
func (b *Button) LabelFor(inverted bool) string {
	if inverted && b.InvLabel != "" {
		return b.InvLabel
	}
	return b.Label
}

// labelWidth is the width of the widest label the button can show, so the
// cell does not change size when the inversion toggle flips.
func (b *Button) labelWidth() int {
	return max(runewidth.StringWidth(b.Label), runewidth.StringWidth(b.InvLabel))
}

func (b *Button) PreferredSize() (layout.Size, bool) {
	return layout.Size{Width: b.labelWidth() + buttonPadding, Height: buttonHeight}, true
}

func (b *Button) MinimumSize() (layout.Size, bool) {
	return layout.Size{Width: b.labelWidth(), Height: 1}, true
}

func (b *Button) MaximumSize() (layout.Size, bool) {
	return layout.Size{}, false
}

// Render draws the button into a block exactly rect.Width by rect.Height cells.
func (b *Button) Render(rect layout.Rect, d layout.Degradation, inverted, pressed bool) string {
	if rect.Empty() || d.HideCells {
		return ""
	}
	bordered := d.ShouldDrawBorders()
	w, h := innerSize(rect, bordered)

	label := b.LabelFor(inverted)
	if runewidth.StringWidth(label) > w {
		label = truncate.String(label, uint(w))
	}
	return ButtonStyle(b.Kind, bordered, pressed).
		Width(w).
		Height(h).
		MaxWidth(rect.Width).
		MaxHeight(rect.Height).
		Render(label)
}

// InspectNode reports the button for UI snapshots.
func (b *Button) InspectNode(rect layout.Rect, inverted bool) *inspect.Node {
	return inspect.NewNode("Button").
		WithID(b.ID).
		WithBounds(rect.X, rect.Y, rect.Width, rect.Height).
		WithContent(b.LabelFor(inverted)).
		WithState("kind", b.Kind.String()).
		WithState("position", b.Position.String()).
		WithStyles(inspect.ExtractStyleInfo(ButtonStyle(b.Kind, true, false), "button."+b.Kind.String()))
}

// innerSize is the content area of rect once the border is taken off.
func innerSize(rect layout.Rect, bordered bool) (int, int) {
	if !bordered {
		return rect.Width, rect.Height
	}
	return rect.Width - 2, rect.Height - 2
}

var _ layout.SizeHints = (*Button)(nil)
