package ui

import (
	"strconv"
	"strings"

	"calcgrid/calc"
	"calcgrid/inspect"
	"calcgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	displayPreferredWidth = 36
	displayMinimumWidth   = 12
	ellipsis              = "…"
)

// Display is the header element showing the current value. It follows the
// engine as a calc.Listener.
type Display struct {
	text     string
	pending  string
	depth    int
	inverted bool

	// shown is the width of the value as last rendered; less than the full
	// width when it had to be cut.
	shown int
}

func NewDisplay() *Display {
	return &Display{text: "0"}
}

// ValueChanged implements calc.Listener.
func (d *Display) ValueChanged(e *calc.Engine) {
	d.Sync(e)
}

// Sync copies everything the display shows from e. The engine only notifies on
// value changes, so callers sync after operations that touch the chain alone.
func (d *Display) Sync(e *calc.Engine) {
	d.text = e.String()
	d.pending = ""
	if op, ok := e.PendingOperator(); ok {
		d.pending = op.Symbol
	}
	d.depth = e.Depth()
}

func (d *Display) SetInverted(inverted bool) {
	d.inverted = inverted
}

// Text returns the displayed value.
func (d *Display) Text() string {
	return d.text
}

// Status returns the indicator line: inversion, pending operator, stack depth.
func (d *Display) Status() string {
	var parts []string
	if d.inverted {
		parts = append(parts, "inv")
	}
	if d.pending != "" {
		parts = append(parts, d.pending)
	}
	if d.depth > 0 {
		parts = append(parts, "M"+strconv.Itoa(d.depth))
	}
	return strings.Join(parts, " ")
}

func (d *Display) PreferredSize() (layout.Size, bool) {
	return layout.Size{Width: displayPreferredWidth, Height: buttonHeight}, true
}

func (d *Display) MinimumSize() (layout.Size, bool) {
	return layout.Size{Width: displayMinimumWidth, Height: 1}, true
}

func (d *Display) MaximumSize() (layout.Size, bool) {
	return layout.Size{}, false
}

// Render draws the value right-aligned with the status on the left. The
// status is dropped first when space runs out, then the value is cut.
func (d *Display) Render(rect layout.Rect, deg layout.Degradation) string {
	d.shown = runewidth.StringWidth(d.text)
	if rect.Empty() || deg.HideCells {
		return ""
	}
	bordered := deg.ShouldDrawBorders()
	w, h := innerSize(rect, bordered)

	text := d.text
	if runewidth.StringWidth(text) > w {
		text = truncate.StringWithTail(text, uint(w), ellipsis)
		d.shown = runewidth.StringWidth(text)
	}
	status := d.Status()
	pad := w - runewidth.StringWidth(status) - runewidth.StringWidth(text)
	var line string
	if status != "" && pad >= 1 {
		line = status + strings.Repeat(" ", pad) + text
	} else {
		line = strings.Repeat(" ", max(0, w-runewidth.StringWidth(text))) + text
	}

	return DisplayStyle(bordered).
		Width(w).
		Height(h).
		AlignVertical(lipgloss.Center).
		MaxWidth(rect.Width).
		MaxHeight(rect.Height).
		Render(line)
}

// InspectNode reports the display for UI snapshots.
func (d *Display) InspectNode(rect layout.Rect) *inspect.Node {
	n := inspect.NewNode("Display").
		WithID(DisplayID).
		WithBounds(rect.X, rect.Y, rect.Width, rect.Height).
		WithContent(d.text).
		WithState("status", d.Status()).
		WithStyles(inspect.ExtractStyleInfo(DisplayStyle(true), "display"))
	if full := runewidth.StringWidth(d.text); d.shown < full {
		n.WithTruncation(full, d.shown, true)
	}
	return n
}

var (
	_ layout.SizeHints = (*Display)(nil)
	_ calc.Listener    = (*Display)(nil)
)
