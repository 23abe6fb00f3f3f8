package ui

import (
	"os"
	"strings"
	"testing"

	"calcgrid/calc"
	"calcgrid/testing/snapshot"
	"calcgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestKeypad(t *testing.T, gap int, insets layout.Insets) *Keypad {
	t.Helper()
	k, err := NewKeypad(gap, insets, NewDisplay())
	require.NoError(t, err)
	return k
}

func TestNewKeypadFillsGrid(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	assert.Equal(t, layout.MaxEntries, k.Grid().Len())

	for _, b := range DefaultButtons() {
		got, ok := k.ButtonForKey(b.Key)
		require.True(t, ok, b.ID)
		assert.Equal(t, b.ID, got.ID)
	}

	seen := map[layout.Position]string{}
	for _, e := range k.Grid().Entries() {
		seen[e.Position] = e.Handle
	}
	for row := 1; row <= layout.RowMax; row++ {
		for col := 1; col <= layout.ColumnMax; col++ {
			p := layout.Position{Row: row, Column: col}
			if row == 1 && col > 1 && col <= layout.HeaderSpan {
				assert.NotContains(t, seen, p, "reserved cell %s", p)
				continue
			}
			assert.Contains(t, seen, p, "empty cell %s", p)
		}
	}
}

func TestKeypadAddRemove(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})

	err := k.Add(&Button{ID: "extra", Label: "x", Position: layout.Position{Row: 1, Column: 6}})
	assert.ErrorIs(t, err, layout.ErrCapacityExceeded)

	assert.Error(t, k.Add(&Button{ID: "7", Label: "7", Position: layout.Position{Row: 2, Column: 3}}))
	assert.Error(t, k.Remove(DisplayID))
	assert.ErrorIs(t, k.Remove("nope"), layout.ErrNotPlaced)

	require.NoError(t, k.Remove("7"))
	_, ok := k.Button("7")
	assert.False(t, ok)

	err = k.Add(&Button{ID: "seven", Label: "VII", Position: layout.Position{Row: 2, Column: 3}})
	require.NoError(t, err)

	err = k.Add(&Button{ID: "clash", Label: "c", Position: layout.Position{Row: 2, Column: 3}})
	assert.Error(t, err)
	err = k.Add(&Button{ID: "header", Label: "h", Position: layout.Position{Row: 1, Column: 3}})
	assert.Error(t, err)
}

func TestKeypadResize(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	k.Resize(80, 22)

	assert.Equal(t, layout.Size{Width: 80, Height: 22}, k.Size())
	assert.Equal(t, layout.Size{Width: 10, Height: 3}, k.Cell())
	assert.False(t, k.Degradation().BorderlessCells)
	assert.False(t, k.Degradation().ShowMinWarning)

	display, ok := k.Rect(DisplayID)
	require.True(t, ok)
	assert.Equal(t, layout.Rect{X: 0, Y: 0, Width: 54, Height: 3}, display)

	clr, ok := k.Rect("clr")
	require.True(t, ok)
	assert.Equal(t, layout.Rect{X: 66, Y: 0, Width: 10, Height: 3}, clr)

	_, ok = k.Rect("missing")
	assert.False(t, ok)
}

func TestKeypadRectAppliesInsets(t *testing.T) {
	insets := layout.Insets{Top: 1, Left: 2}
	k := newTestKeypad(t, 1, insets)
	k.Resize(80, 22)

	raw := k.Grid().Layout(k.Size())
	for _, e := range k.Grid().Entries() {
		r, ok := k.Rect(e.Handle)
		require.True(t, ok)
		assert.Equal(t, raw[e.Handle].X+insets.Left, r.X, e.Handle)
		assert.Equal(t, raw[e.Handle].Y+insets.Top, r.Y, e.Handle)
	}
}

func TestKeypadHitTest(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	k.Resize(80, 22)

	tests := []struct {
		name   string
		x, y   int
		want   string
		wantOK bool
	}{
		{name: "display", x: 10, y: 1, want: DisplayID, wantOK: true},
		{name: "clear", x: 66, y: 0, want: "clr", wantOK: true},
		{name: "bottom right corner of clear", x: 75, y: 2, want: "clr", wantOK: true},
		{name: "seven", x: 22, y: 4, want: "7", wantOK: true},
		{name: "row gap", x: 10, y: 3},
		{name: "column gap", x: 65, y: 0},
		{name: "right of the grid", x: 79, y: 0},
		{name: "negative", x: -1, y: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := k.HitTest(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeypadRender(t *testing.T) {
	sizes := []layout.Size{{Width: 80, Height: 22}, {Width: 120, Height: 38}, {Width: 40, Height: 10}, {Width: 20, Height: 8}}
	for _, size := range sizes {
		k := newTestKeypad(t, 1, layout.Insets{})
		k.Resize(size.Width, size.Height)

		out := k.Render()
		assert.Equal(t, size.Height, snapshot.Lines(out), "%v", size)
		for _, line := range strings.Split(out, "\n") {
			assert.Equal(t, size.Width, snapshot.Width(line), "%v", size)
		}
	}
}

func TestKeypadRenderLabels(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	k.Resize(80, 22)
	snap := snapshot.New(t)

	out := k.Render()
	for _, label := range []string{"clr", "push", "sin", "x^n", "+/-", "0"} {
		snap.AssertContains(out, label)
	}
	snap.AssertNotContains(out, "asin")

	k.SetInverted(true)
	out = k.Render()
	snap.AssertContains(out, "asin")
	snap.AssertContains(out, "10^x")
	snap.AssertContains(out, "inv")
}

func TestKeypadRenderEmpty(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	assert.Empty(t, k.Render())

	k.Resize(0, 10)
	assert.Empty(t, k.Render())
}

func TestKeypadDegradation(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})

	k.Resize(20, 8)
	d := k.Degradation()
	assert.True(t, d.BorderlessCells)
	assert.True(t, d.CompactLabels)
	assert.True(t, d.ShowMinWarning)

	k.Resize(5, 3)
	assert.True(t, k.Degradation().HideCells)
}

func TestKeypadInspectNode(t *testing.T) {
	k := newTestKeypad(t, 1, layout.Insets{})
	k.Resize(80, 22)
	k.SetPressed("7")

	n := k.InspectNode()
	assert.Equal(t, "Keypad", n.Type)
	assert.Len(t, n.Children, layout.MaxEntries)
	assert.Equal(t, "7", n.State["pressed"])
	assert.Equal(t, "10x3", n.State["cell"])
	assert.Equal(t, DisplayID, n.Children[0].ID)

	k.ClearPressed()
	assert.NotContains(t, k.InspectNode().State, "pressed")
}

func TestDisplayFollowsEngine(t *testing.T) {
	e := calc.New()
	d := NewDisplay()
	require.NoError(t, e.AddListener(d))

	require.NoError(t, e.InsertDigit(4))
	require.NoError(t, e.InsertDigit(2))
	assert.Equal(t, "42", d.Text())

	require.NoError(t, calc.PushValue(e))
	require.NoError(t, e.InsertDigit(3))
	require.NoError(t, calc.ApplyOperator(e, calc.Add))
	assert.Equal(t, "+ M1", d.Status())

	d.SetInverted(true)
	assert.Equal(t, "inv + M1", d.Status())

	require.NoError(t, calc.Equals(e))
	d.Sync(e)
	assert.Equal(t, "inv M1", d.Status())
}
