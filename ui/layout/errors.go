package layout

import "errors"

// Placement errors.
var (
	ErrPositionOutOfRange = errors.New("position outside the 5x7 grid")
	ErrReservedPosition   = errors.New("position reserved by the header cell")
	ErrDuplicatePosition  = errors.New("position already occupied")
	ErrCapacityExceeded   = errors.New("grid already holds the maximum number of elements")
	ErrNotPlaced          = errors.New("element is not placed on the grid")
	ErrInvalidPosition    = errors.New("invalid position constraint")
)
