package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calcgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func hints(prefW, prefH, minW, minH int) layout.Hints {
	return layout.Hints{
		Preferred: &layout.Size{Width: prefW, Height: prefH},
		Minimum:   &layout.Size{Width: minW, Height: minH},
	}
}

func testGrid(t *testing.T) *layout.Grid[string] {
	t.Helper()
	g := layout.New[string](1)
	require.NoError(t, g.Place("display", layout.Header, hints(36, 3, 12, 1)))
	require.NoError(t, g.PlaceAt("clr", "1,7", hints(7, 3, 3, 1)))
	require.NoError(t, g.PlaceAt("7", "2,3", hints(5, 3, 1, 1)))
	return g
}

func TestSnapshotWithLayout(t *testing.T) {
	s := NewSnapshot().WithLayout(testGrid(t), layout.Size{Width: 80, Height: 22})

	l := s.Layout
	assert.Equal(t, 1, l.Gap)
	assert.Equal(t, layout.Size{Width: 80, Height: 22}, l.Container)
	require.Len(t, l.Elements, 3)
	assert.Equal(t, []string{"display", "clr", "7"}, []string{l.Elements[0].ID, l.Elements[1].ID, l.Elements[2].ID})
	assert.Equal(t, "1,7", l.Elements[1].Position)
	assert.Equal(t, 0, l.Elements[0].Rect.X)
	assert.Equal(t, l.Cell.Width, l.Elements[2].Rect.Width)
	assert.False(t, l.Degradation.ShowMinWarning)
	assert.Len(t, s.Breakpoints, 5)
	for _, bp := range s.Breakpoints {
		assert.False(t, bp.Active, bp.Name)
	}
}

func TestSnapshotBreakpointsActive(t *testing.T) {
	s := NewSnapshot().WithLayout(testGrid(t), layout.Size{Width: 10, Height: 4})

	assert.True(t, s.Layout.Degradation.ShowMinWarning)
	assert.True(t, s.Layout.Degradation.BorderlessCells)

	active := map[string]bool{}
	for _, bp := range s.Breakpoints {
		if bp.Active {
			active[bp.Name+" "+bp.Dimension] = true
		}
	}
	assert.True(t, active["min_warning width"])
	assert.True(t, active["borderless_cells cell width"])
}

func TestSnapshotToText(t *testing.T) {
	root := NewNode("Home").WithBounds(0, 0, 80, 24).
		AddChild(NewNode("Display").WithID("display").WithContent("42").WithTruncation(10, 5, true))

	text := NewSnapshot().
		WithTerminal(80, 24).
		WithCalculator(CalculatorInfo{State: "default", Display: "42"}).
		WithLayout(testGrid(t), layout.Size{Width: 80, Height: 22}).
		WithComponents(root).
		ToText()

	for _, want := range []string{
		"Terminal: 80x24",
		"State: default",
		"Display: 42",
		"Container: 80x22 (gap 1)",
		"clr",
		"[ ] min_warning",
		"Home (80x24)",
		`  Display [display] (0x0) "42" TRUNCATED(10->5)`,
	} {
		assert.Contains(t, text, want)
	}
}

func TestSnapshotSerialization(t *testing.T) {
	operand := 3.0
	s := NewSnapshot().
		WithCalculator(CalculatorInfo{State: "default", Display: "4", PendingOperator: "+", ActiveOperand: &operand, StackDepth: 2}).
		WithLayout(testGrid(t), layout.Size{Width: 80, Height: 22})

	data, err := s.ToYAML()
	require.NoError(t, err)
	var fromYAML map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	calc := fromYAML["calculator"].(map[string]interface{})
	assert.Equal(t, "+", calc["pending_operator"])
	assert.Equal(t, 2, calc["stack_depth"])

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteSnapshotToPath(s, path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var fromJSON Snapshot
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	require.NotNil(t, fromJSON.Calculator.ActiveOperand)
	assert.Equal(t, 3.0, *fromJSON.Calculator.ActiveOperand)
	assert.Len(t, fromJSON.Layout.Elements, 3)
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Background(lipgloss.AdaptiveColor{Light: "#fff", Dark: "#000"}).
		Bold(true).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("99"))

	info := ExtractStyleInfo(style, "box")
	assert.Equal(t, "62", info.Foreground)
	assert.Equal(t, "adaptive(light=#fff, dark=#000)", info.Background)
	assert.True(t, info.Bold)
	assert.Equal(t, []int{1, 2, 1, 2}, info.Padding)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, "99", info.BorderColor)
	assert.Equal(t, []string{"box"}, info.AppliedStyles)

	plain := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Empty(t, plain.Foreground)
	assert.Empty(t, plain.Border)
	assert.Nil(t, plain.Padding)
}

func TestBorderName(t *testing.T) {
	tests := []struct {
		border lipgloss.Border
		want   string
	}{
		{lipgloss.RoundedBorder(), "rounded"},
		{lipgloss.NormalBorder(), "normal"},
		{lipgloss.ThickBorder(), "thick"},
		{lipgloss.DoubleBorder(), "double"},
		{lipgloss.HiddenBorder(), "hidden"},
		{lipgloss.Border{Top: "~"}, "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, borderName(tt.border))
		})
	}
}

func TestStyleRegistry(t *testing.T) {
	RegisterStyle("test.zeta", lipgloss.NewStyle().Bold(true))
	RegisterStyle("test.alpha", lipgloss.NewStyle())

	s, ok := GetRegisteredStyle("test.zeta")
	require.True(t, ok)
	assert.True(t, s.GetBold())

	names := ListRegisteredStyles()
	assert.True(t, strings.Compare(names[0], names[len(names)-1]) <= 0)
	assert.Contains(t, names, "test.alpha")
	assert.Contains(t, GetAllStyles(), "test.zeta")
}

func TestInspectDisabledByDefault(t *testing.T) {
	if os.Getenv(InspectEnv) == "1" {
		t.Skip("inspection enabled in the environment")
	}
	assert.False(t, IsEnabled())
	assert.Empty(t, GetInspectFile())
	assert.NoError(t, WriteSnapshot(NewSnapshot()))
}
