package layout

import (
	"fmt"
	"sort"
)

// Grid maps caller-owned handles to grid positions and turns them into
// rectangles for a container size. The grid never touches the elements
// themselves; applying the rectangles is the caller's job.
type Grid[K comparable] struct {
	gap    int
	insets Insets

	entries  map[K]entry
	occupied map[Position]K
}

type entry struct {
	pos   Position
	hints SizeHints
}

// Entry is one registered handle and its position.
type Entry[K comparable] struct {
	Handle   K
	Position Position
}

// Option configures a Grid.
type Option func(*gridOptions)

type gridOptions struct {
	insets Insets
}

// WithInsets sets the container insets counted by AggregateSize.
func WithInsets(insets Insets) Option {
	return func(o *gridOptions) {
		o.insets = insets
	}
}

// New creates an empty grid with gap cells between neighbouring elements.
func New[K comparable](gap int, opts ...Option) *Grid[K] {
	o := gridOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Grid[K]{
		gap:      gap,
		insets:   o.insets,
		entries:  make(map[K]entry),
		occupied: make(map[Position]K),
	}
}

// Gap returns the spacing between cells.
func (g *Grid[K]) Gap() int {
	return g.gap
}

// Insets returns the container insets.
func (g *Grid[K]) Insets() Insets {
	return g.insets
}

// Len returns the number of placed handles.
func (g *Grid[K]) Len() int {
	return len(g.entries)
}

// Place registers handle at pos. A rejected placement leaves the grid unchanged.
// Placing a handle that is already registered moves it.
func (g *Grid[K]) Place(handle K, pos Position, hints SizeHints) error {
	prev, moving := g.entries[handle]
	if !moving && len(g.entries) >= MaxEntries {
		return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, MaxEntries)
	}
	if err := pos.Validate(); err != nil {
		return err
	}
	if owner, ok := g.occupied[pos]; ok && owner != handle {
		return fmt.Errorf("%w: %s", ErrDuplicatePosition, pos)
	}

	if moving {
		delete(g.occupied, prev.pos)
	}
	g.entries[handle] = entry{pos: pos, hints: hints}
	g.occupied[pos] = handle
	return nil
}

// PlaceAt is Place with a textual "row,column" constraint.
func (g *Grid[K]) PlaceAt(handle K, constraint string, hints SizeHints) error {
	pos, err := ParsePosition(constraint)
	if err != nil {
		return err
	}
	return g.Place(handle, pos, hints)
}

// Remove unregisters handle.
func (g *Grid[K]) Remove(handle K) error {
	e, ok := g.entries[handle]
	if !ok {
		return ErrNotPlaced
	}
	delete(g.entries, handle)
	delete(g.occupied, e.pos)
	return nil
}

// PositionOf returns where handle is placed.
func (g *Grid[K]) PositionOf(handle K) (Position, bool) {
	e, ok := g.entries[handle]
	return e.pos, ok
}

// HandleAt returns the handle occupying pos.
func (g *Grid[K]) HandleAt(pos Position) (K, bool) {
	h, ok := g.occupied[pos]
	return h, ok
}

// Entries returns every placement in row-major order.
func (g *Grid[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, len(g.entries))
	for h, e := range g.entries {
		out = append(out, Entry[K]{Handle: h, Position: e.pos})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position.Row != out[j].Position.Row {
			return out[i].Position.Row < out[j].Position.Row
		}
		return out[i].Position.Column < out[j].Position.Column
	})
	return out
}

// cellUnit returns the largest per-cell width and height across all elements
// having a hint of the given kind. The header hint covers HeaderSpan cells and
// the gaps between them, so its width is scaled back to a single cell first.
func (g *Grid[K]) cellUnit(kind HintKind) (float64, float64) {
	var width, height float64
	for _, e := range g.entries {
		s, ok := hintOf(e.hints, kind)
		if !ok {
			continue
		}
		w := float64(s.Width)
		if e.pos.IsHeader() {
			w = (w - float64((HeaderSpan-1)*g.gap)) / HeaderSpan
		}
		width = max(width, w)
		height = max(height, float64(s.Height))
	}
	return width, height
}

// CellSize returns the per-cell size unit for kind.
func (g *Grid[K]) CellSize(kind HintKind) Size {
	w, h := g.cellUnit(kind)
	return Size{Width: int(w), Height: int(h)}
}

// AggregateSize returns the container size needed to give every cell the
// unit computed for kind, insets and gaps included.
func (g *Grid[K]) AggregateSize(kind HintKind) Size {
	w, h := g.cellUnit(kind)
	width := float64(g.insets.Horizontal()) + w*ColumnMax + float64(g.gap*(ColumnMax-1))
	height := float64(g.insets.Vertical()) + h*RowMax + float64(g.gap*(RowMax-1))
	return Size{Width: int(width), Height: int(height)}
}

// ScaledCell returns the cell size used by Layout for container: the
// preferred cell scaled by the ratio of container to preferred aggregate size.
func (g *Grid[K]) ScaledCell(container Size) Size {
	pref := g.AggregateSize(Preferred)
	cell := g.CellSize(Preferred)

	var scaleX, scaleY float64
	if pref.Width != 0 {
		scaleX = float64(container.Width) / float64(pref.Width)
	}
	if pref.Height != 0 {
		scaleY = float64(container.Height) / float64(pref.Height)
	}
	return Size{
		Width:  int(scaleX * float64(cell.Width)),
		Height: int(scaleY * float64(cell.Height)),
	}
}

// Layout computes a rectangle for every placed handle. Sizes below the
// minimum produce small, zero or negative rectangles; callers may clamp.
func (g *Grid[K]) Layout(container Size) map[K]Rect {
	cell := g.ScaledCell(container)
	rects := make(map[K]Rect, len(g.entries))
	for h, e := range g.entries {
		rects[h] = g.cellRect(e.pos, cell)
	}
	return rects
}

func (g *Grid[K]) cellRect(pos Position, cell Size) Rect {
	if pos.IsHeader() {
		return Rect{
			X:      0,
			Y:      0,
			Width:  cell.Width*HeaderSpan + g.gap*(HeaderSpan-1),
			Height: cell.Height,
		}
	}
	return Rect{
		X:      (pos.Column - 1) * (cell.Width + g.gap),
		Y:      (pos.Row - 1) * (cell.Height + g.gap),
		Width:  cell.Width,
		Height: cell.Height,
	}
}
