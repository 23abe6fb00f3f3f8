package ui

import (
	"fmt"

	"calcgrid/inspect"
	"calcgrid/keys"
	"calcgrid/log"
	"calcgrid/ui/layout"
)

// DisplayID is the grid handle of the display.
const DisplayID = "display"

func pos(row, column int) layout.Position {
	return layout.Position{Row: row, Column: column}
}

// DefaultButtons returns the scientific keypad. Together with the display it
// fills every cell of the grid.
func DefaultButtons() []*Button {
	return []*Button{
		{ID: "clr", Label: "clr", Kind: KindSpecial, Key: keys.KeyClear, Position: pos(1, 7)},
		{ID: "res", Label: "res", Kind: KindSpecial, Key: keys.KeyReset, Position: pos(2, 7)},
		{ID: "push", Label: "push", Kind: KindSpecial, Key: keys.KeyPush, Position: pos(3, 7)},
		{ID: "pop", Label: "pop", Kind: KindSpecial, Key: keys.KeyPop, Position: pos(4, 7)},
		{ID: "inv", Label: "inv", Kind: KindToggle, Key: keys.KeyInvert, Position: pos(5, 7)},

		{ID: "=", Label: "=", Kind: KindBinary, Key: keys.KeyEquals, Position: pos(1, 6)},
		{ID: "/", Label: "/", Kind: KindBinary, Key: keys.KeyDivide, Position: pos(2, 6)},
		{ID: "*", Label: "*", Kind: KindBinary, Key: keys.KeyMultiply, Position: pos(3, 6)},
		{ID: "-", Label: "-", Kind: KindBinary, Key: keys.KeySubtract, Position: pos(4, 6)},
		{ID: "+", Label: "+", Kind: KindBinary, Key: keys.KeyAdd, Position: pos(5, 6)},

		{ID: "7", Label: "7", Kind: KindNumber, Key: keys.KeyDigit7, Position: pos(2, 3)},
		{ID: "8", Label: "8", Kind: KindNumber, Key: keys.KeyDigit8, Position: pos(2, 4)},
		{ID: "9", Label: "9", Kind: KindNumber, Key: keys.KeyDigit9, Position: pos(2, 5)},
		{ID: "4", Label: "4", Kind: KindNumber, Key: keys.KeyDigit4, Position: pos(3, 3)},
		{ID: "5", Label: "5", Kind: KindNumber, Key: keys.KeyDigit5, Position: pos(3, 4)},
		{ID: "6", Label: "6", Kind: KindNumber, Key: keys.KeyDigit6, Position: pos(3, 5)},
		{ID: "1", Label: "1", Kind: KindNumber, Key: keys.KeyDigit1, Position: pos(4, 3)},
		{ID: "2", Label: "2", Kind: KindNumber, Key: keys.KeyDigit2, Position: pos(4, 4)},
		{ID: "3", Label: "3", Kind: KindNumber, Key: keys.KeyDigit3, Position: pos(4, 5)},
		{ID: "0", Label: "0", Kind: KindNumber, Key: keys.KeyDigit0, Position: pos(5, 3)},
		{ID: "+/-", Label: "+/-", Kind: KindUnary, Key: keys.KeySign, Position: pos(5, 4)},
		{ID: ".", Label: ".", Kind: KindUnary, Key: keys.KeyPoint, Position: pos(5, 5)},

		{ID: "1/x", Label: "1/x", Kind: KindUnary, Key: keys.KeyReciprocal, Position: pos(2, 1)},
		{ID: "log", Label: "log", InvLabel: "10^x", Kind: KindUnary, Key: keys.KeyLog, Position: pos(3, 1)},
		{ID: "ln", Label: "ln", InvLabel: "e^x", Kind: KindUnary, Key: keys.KeyLn, Position: pos(4, 1)},
		{ID: "x^n", Label: "x^n", InvLabel: "x^-n", Kind: KindSwitchable, Key: keys.KeyPower, Position: pos(5, 1)},
		{ID: "sin", Label: "sin", InvLabel: "asin", Kind: KindUnary, Key: keys.KeySin, Position: pos(2, 2)},
		{ID: "cos", Label: "cos", InvLabel: "acos", Kind: KindUnary, Key: keys.KeyCos, Position: pos(3, 2)},
		{ID: "tan", Label: "tan", InvLabel: "atan", Kind: KindUnary, Key: keys.KeyTan, Position: pos(4, 2)},
		{ID: "ctg", Label: "ctg", InvLabel: "actg", Kind: KindUnary, Key: keys.KeyCtg, Position: pos(5, 2)},
	}
}

// Keypad places the display and the buttons on a layout.Grid and draws them.
type Keypad struct {
	grid    *layout.Grid[string]
	buttons map[string]*Button
	display *Display

	width, height int
	rects         map[string]layout.Rect
	cell          layout.Size
	degradation   layout.Degradation

	inverted bool
	// pressed is the ID of the button highlighted after a key press.
	pressed string
}

// NewKeypad creates a keypad with the default buttons.
func NewKeypad(gap int, insets layout.Insets, display *Display) (*Keypad, error) {
	k := &Keypad{
		grid:    layout.New[string](gap, layout.WithInsets(insets)),
		buttons: make(map[string]*Button),
		display: display,
		rects:   make(map[string]layout.Rect),
	}
	if err := k.grid.Place(DisplayID, layout.Header, display); err != nil {
		return nil, fmt.Errorf("place display: %w", err)
	}
	for _, b := range DefaultButtons() {
		if err := k.Add(b); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Add puts b on the keypad. Call Resize afterwards to lay it out.
func (k *Keypad) Add(b *Button) error {
	if _, ok := k.buttons[b.ID]; ok || b.ID == DisplayID {
		return fmt.Errorf("button %q is already on the keypad", b.ID)
	}
	if err := k.grid.Place(b.ID, b.Position, b); err != nil {
		return fmt.Errorf("place button %q: %w", b.ID, err)
	}
	k.buttons[b.ID] = b
	return nil
}

// Remove takes the button with id off the keypad.
func (k *Keypad) Remove(id string) error {
	if id == DisplayID {
		return fmt.Errorf("the display cannot be removed")
	}
	if err := k.grid.Remove(id); err != nil {
		return fmt.Errorf("remove button %q: %w", id, err)
	}
	delete(k.buttons, id)
	delete(k.rects, id)
	return nil
}

// Button returns the button with id.
func (k *Keypad) Button(id string) (*Button, bool) {
	b, ok := k.buttons[id]
	return b, ok
}

// ButtonForKey returns the button bound to name.
func (k *Keypad) ButtonForKey(name keys.KeyName) (*Button, bool) {
	for _, b := range k.buttons {
		if b.Key == name {
			return b, true
		}
	}
	return nil, false
}

// Resize lays the keypad out for a width by height area.
func (k *Keypad) Resize(width, height int) {
	k.width, k.height = width, height
	container := layout.Size{Width: width, Height: height}
	k.rects = k.grid.Layout(container)
	k.cell = k.grid.ScaledCell(container)
	minimum := k.grid.AggregateSize(layout.Minimum)
	k.degradation = layout.ComputeDegradation(k.cell, container, minimum)

	log.LayoutTrace("keypad %dx%d: cell=%dx%d minimum=%dx%d degradation=%+v",
		width, height, k.cell.Width, k.cell.Height, minimum.Width, minimum.Height, k.degradation)
}

// Size returns the area given to the last Resize.
func (k *Keypad) Size() layout.Size {
	return layout.Size{Width: k.width, Height: k.height}
}

// Cell returns the scaled cell size of the last Resize.
func (k *Keypad) Cell() layout.Size {
	return k.cell
}

// Degradation returns the rendering flags of the last Resize.
func (k *Keypad) Degradation() layout.Degradation {
	return k.degradation
}

// Grid exposes the underlying grid for size queries.
func (k *Keypad) Grid() *layout.Grid[string] {
	return k.grid
}

// Rect returns the on-screen rectangle of id, insets applied.
func (k *Keypad) Rect(id string) (layout.Rect, bool) {
	r, ok := k.rects[id]
	if !ok {
		return layout.Rect{}, false
	}
	insets := k.grid.Insets()
	r.X += insets.Left
	r.Y += insets.Top
	return r, true
}

// HitTest returns the ID of the element drawn at (x, y).
func (k *Keypad) HitTest(x, y int) (string, bool) {
	for _, e := range k.grid.Entries() {
		r, ok := k.Rect(e.Handle)
		if ok && r.Contains(x, y) {
			return e.Handle, true
		}
	}
	return "", false
}

func (k *Keypad) SetInverted(inverted bool) {
	k.inverted = inverted
	k.display.SetInverted(inverted)
}

func (k *Keypad) Inverted() bool {
	return k.inverted
}

// SetPressed highlights the button with id until ClearPressed.
func (k *Keypad) SetPressed(id string) {
	k.pressed = id
}

func (k *Keypad) ClearPressed() {
	k.pressed = ""
}

// Render draws every element into a width by height block.
func (k *Keypad) Render() string {
	if k.width <= 0 || k.height <= 0 {
		return ""
	}
	c := newCanvas(k.width, k.height)
	for _, e := range k.grid.Entries() {
		r, _ := k.Rect(e.Handle)
		c.draw(r.X, r.Y, r.Width, k.renderElement(e.Handle, r))
	}
	return c.String()
}

func (k *Keypad) renderElement(id string, r layout.Rect) string {
	if id == DisplayID {
		return k.display.Render(r, k.degradation)
	}
	b := k.buttons[id]
	return b.Render(r, k.degradation, k.inverted, id == k.pressed)
}

// InspectNode reports the keypad and its elements for UI snapshots.
func (k *Keypad) InspectNode() *inspect.Node {
	n := inspect.NewNode("Keypad").
		WithBounds(0, 0, k.width, k.height).
		WithState("cell", fmt.Sprintf("%dx%d", k.cell.Width, k.cell.Height)).
		WithState("inverted", k.inverted)
	if k.pressed != "" {
		n.WithState("pressed", k.pressed)
	}
	for _, e := range k.grid.Entries() {
		r, _ := k.Rect(e.Handle)
		if e.Handle == DisplayID {
			n.AddChild(k.display.InspectNode(r))
			continue
		}
		child := k.buttons[e.Handle].InspectNode(r, k.inverted)
		child.Visible = !r.Empty() && !k.degradation.HideCells
		n.AddChild(child)
	}
	return n
}
