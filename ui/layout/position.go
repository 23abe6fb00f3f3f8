package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a 1-indexed row/column pair on the grid.
type Position struct {
	Row    int
	Column int
}

// String renders the position in the "row,column" form accepted by ParsePosition.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Column)
}

// IsHeader reports whether p is the merged header cell.
func (p Position) IsHeader() bool {
	return p == Header
}

// Validate checks p against the grid bounds and the reserved header band.
func (p Position) Validate() error {
	if p.Row < RowMin || p.Row > RowMax || p.Column < ColumnMin || p.Column > ColumnMax {
		return fmt.Errorf("%w: %s", ErrPositionOutOfRange, p)
	}
	if p.Row == 1 && p.Column > 1 && p.Column <= HeaderSpan {
		return fmt.Errorf("%w: %s is covered by the header", ErrReservedPosition, p)
	}
	return nil
}

// ParsePosition parses the "row,column" constraint form, e.g. "2,3".
// It does not check grid bounds; Place does.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad row in %q", ErrInvalidPosition, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad column in %q", ErrInvalidPosition, s)
	}
	return Position{Row: row, Column: col}, nil
}
