// Package layout positions calculator elements on a fixed 5x7 grid.
//
// Position (1,1) is the header cell. It spans columns 1 through 5 of the
// first row, so positions (1,2) to (1,5) cannot hold elements.
package layout

// Grid bounds
const (
	// RowMin is the first row of the grid.
	RowMin = 1

	// RowMax is the last row of the grid.
	RowMax = 5

	// ColumnMin is the first column of the grid.
	ColumnMin = 1

	// ColumnMax is the last column of the grid.
	ColumnMax = 7
)

// Header constraints
const (
	// HeaderSpan is the number of columns covered by the header cell.
	HeaderSpan = 5

	// MaxEntries is the number of cells left once the header absorbed its neighbours.
	MaxEntries = RowMax*ColumnMax - (HeaderSpan - 1)
)

// Header is the position of the merged header cell.
var Header = Position{Row: 1, Column: 1}
