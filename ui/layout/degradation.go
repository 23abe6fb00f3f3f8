package layout

// Degradation holds flags telling a renderer how to simplify cells that got
// too small. The grid itself never clamps; these flags are advisory.
type Degradation struct {
	BorderlessCells bool // Drop cell borders (cell height or width < 3)
	CompactLabels   bool // Truncate labels (cell width < 4)
	HideCells       bool // Nothing fits (cell width or height < 1)
	ShowMinWarning  bool // Container below the minimum aggregate size
}

// Threshold constants for degradation
const (
	BorderMinWidth    = 3
	BorderMinHeight   = 3
	CompactLabelWidth = 4
)

// ComputeDegradation derives rendering flags from the scaled cell size, the
// container size and the grid's minimum aggregate size.
func ComputeDegradation(cell, container, minimum Size) Degradation {
	return Degradation{
		BorderlessCells: cell.Width < BorderMinWidth || cell.Height < BorderMinHeight,
		CompactLabels:   cell.Width < CompactLabelWidth,
		HideCells:       cell.Width < 1 || cell.Height < 1,
		ShowMinWarning:  container.Width < minimum.Width || container.Height < minimum.Height,
	}
}

// ShouldDrawBorders returns true if cells are large enough for a border.
func (d Degradation) ShouldDrawBorders() bool {
	return !d.BorderlessCells && !d.HideCells
}
