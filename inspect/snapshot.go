package inspect

import (
	"fmt"
	"strings"
	"time"

	"calcgrid/ui/layout"

	"gopkg.in/yaml.v3"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version" yaml:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal" yaml:"terminal"`

	// Calculator contains the engine state.
	Calculator CalculatorInfo `json:"calculator" yaml:"calculator"`

	// Layout contains the grid geometry.
	Layout LayoutInfo `json:"layout" yaml:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components,omitempty" yaml:"components,omitempty"`

	// Breakpoints contains information about degradation thresholds.
	Breakpoints []BreakpointInfo `json:"breakpoints" yaml:"breakpoints"`

	// Styles holds every registered style.
	Styles map[string]*StyleInfo `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// CalculatorInfo contains the calculator and app state.
type CalculatorInfo struct {
	// State is the current app state (e.g., "default", "help").
	State string `json:"state" yaml:"state"`

	// Display is the text on the display.
	Display string `json:"display" yaml:"display"`

	// PendingOperator is the armed binary operator, empty if none.
	PendingOperator string `json:"pending_operator,omitempty" yaml:"pending_operator,omitempty"`

	// ActiveOperand is the armed left operand, nil if unset.
	ActiveOperand *float64 `json:"active_operand,omitempty" yaml:"active_operand,omitempty"`

	// StackDepth is the number of values on the memory stack.
	StackDepth int `json:"stack_depth" yaml:"stack_depth"`

	// Inverted is the state of the inv toggle.
	Inverted bool `json:"inverted" yaml:"inverted"`

	// ErrorMessage is the current error message if any.
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// LayoutInfo contains the grid geometry for one container size.
type LayoutInfo struct {
	Gap       int           `json:"gap" yaml:"gap"`
	Insets    layout.Insets `json:"insets" yaml:"insets"`
	Container layout.Size   `json:"container" yaml:"container"`

	// Cell is the scaled cell size used for the container.
	Cell layout.Size `json:"cell" yaml:"cell"`

	// Aggregate sizes per hint kind.
	Preferred layout.Size `json:"preferred" yaml:"preferred"`
	Minimum   layout.Size `json:"minimum" yaml:"minimum"`
	Maximum   layout.Size `json:"maximum" yaml:"maximum"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation" yaml:"degradation"`

	// Elements lists every placed element in row-major order.
	Elements []ElementInfo `json:"elements" yaml:"elements"`
}

// ElementInfo is one placed element and its rectangle.
type ElementInfo struct {
	ID       string      `json:"id" yaml:"id"`
	Position string      `json:"position" yaml:"position"`
	Rect     layout.Rect `json:"rect" yaml:"rect"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	BorderlessCells bool `json:"borderless_cells" yaml:"borderless_cells"`
	CompactLabels   bool `json:"compact_labels" yaml:"compact_labels"`
	HideCells       bool `json:"hide_cells" yaml:"hide_cells"`
	ShowMinWarning  bool `json:"show_min_warning" yaml:"show_min_warning"`
}

// BreakpointInfo contains information about a degradation threshold.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name" yaml:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold" yaml:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active" yaml:"active"`

	// Dimension is "cell width", "cell height", "width" or "height".
	Dimension string `json:"dimension" yaml:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithCalculator sets the calculator state and returns the snapshot for chaining.
func (s *Snapshot) WithCalculator(info CalculatorInfo) *Snapshot {
	s.Calculator = info
	return s
}

// WithLayout lays g out for container and records the result.
func (s *Snapshot) WithLayout(g *layout.Grid[string], container layout.Size) *Snapshot {
	cell := g.ScaledCell(container)
	minimum := g.AggregateSize(layout.Minimum)
	d := layout.ComputeDegradation(cell, container, minimum)
	rects := g.Layout(container)

	s.Layout = LayoutInfo{
		Gap:       g.Gap(),
		Insets:    g.Insets(),
		Container: container,
		Cell:      cell,
		Preferred: g.AggregateSize(layout.Preferred),
		Minimum:   minimum,
		Maximum:   g.AggregateSize(layout.Maximum),
		Degradation: DegradationInfo{
			BorderlessCells: d.BorderlessCells,
			CompactLabels:   d.CompactLabels,
			HideCells:       d.HideCells,
			ShowMinWarning:  d.ShowMinWarning,
		},
	}
	for _, e := range g.Entries() {
		s.Layout.Elements = append(s.Layout.Elements, ElementInfo{
			ID:       e.Handle,
			Position: e.Position.String(),
			Rect:     rects[e.Handle],
		})
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "borderless_cells", Threshold: layout.BorderMinWidth, Active: cell.Width < layout.BorderMinWidth, Dimension: "cell width"},
		{Name: "borderless_cells", Threshold: layout.BorderMinHeight, Active: cell.Height < layout.BorderMinHeight, Dimension: "cell height"},
		{Name: "compact_labels", Threshold: layout.CompactLabelWidth, Active: d.CompactLabels, Dimension: "cell width"},
		{Name: "min_warning", Threshold: minimum.Width, Active: container.Width < minimum.Width, Dimension: "width"},
		{Name: "min_warning", Threshold: minimum.Height, Active: container.Height < minimum.Height, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithStyles attaches every registered style.
func (s *Snapshot) WithStyles() *Snapshot {
	s.Styles = GetAllStyles()
	return s
}

// ToYAML returns the snapshot as YAML.
func (s *Snapshot) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	if s.Terminal.Width > 0 || s.Terminal.Height > 0 {
		b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	}
	if s.Calculator.State != "" {
		b.WriteString(fmt.Sprintf("State: %s\n", s.Calculator.State))
		b.WriteString(fmt.Sprintf("Display: %s\n", s.Calculator.Display))
	}

	l := s.Layout
	b.WriteString("\n--- Layout ---\n")
	b.WriteString(fmt.Sprintf("Container: %dx%d (gap %d)\n", l.Container.Width, l.Container.Height, l.Gap))
	b.WriteString(fmt.Sprintf("Cell: %dx%d\n", l.Cell.Width, l.Cell.Height))
	b.WriteString(fmt.Sprintf("Preferred: %dx%d\n", l.Preferred.Width, l.Preferred.Height))
	b.WriteString(fmt.Sprintf("Minimum: %dx%d\n", l.Minimum.Width, l.Minimum.Height))
	for _, e := range l.Elements {
		b.WriteString(fmt.Sprintf("  %-6s %-4s x=%d y=%d %dx%d\n",
			e.ID, e.Position, e.Rect.X, e.Rect.Y, e.Rect.Width, e.Rect.Height))
	}

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" (%dx%d)", node.Bounds.Width, node.Bounds.Height))
	if node.Content != "" {
		b.WriteString(fmt.Sprintf(" %q", node.Content))
	}

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
