package layout

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Insets is the border space reserved by the container on each side.
type Insets struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Right  int `json:"right" yaml:"right"`
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// Rect is the area assigned to one element.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Contains reports whether the point (x, y) falls inside r.
// Empty or negative rectangles contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// HintKind selects which size hint an aggregate computation reads.
type HintKind int

const (
	// Preferred reads PreferredSize.
	Preferred HintKind = iota

	// Minimum reads MinimumSize.
	Minimum

	// Maximum reads MaximumSize.
	Maximum
)

// String returns the string representation of the hint kind.
func (k HintKind) String() string {
	switch k {
	case Preferred:
		return "preferred"
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	default:
		return "unknown"
	}
}

// SizeHints is implemented by anything placed on the grid.
// A false second result means the element has no opinion for that kind.
type SizeHints interface {
	PreferredSize() (Size, bool)
	MinimumSize() (Size, bool)
	MaximumSize() (Size, bool)
}

// Hints is a SizeHints with fixed values. Nil fields are absent hints.
type Hints struct {
	Preferred *Size
	Minimum   *Size
	Maximum   *Size
}

func (h Hints) PreferredSize() (Size, bool) { return deref(h.Preferred) }
func (h Hints) MinimumSize() (Size, bool)   { return deref(h.Minimum) }
func (h Hints) MaximumSize() (Size, bool)   { return deref(h.Maximum) }

// PreferredOnly returns hints carrying only a preferred size.
func PreferredOnly(width, height int) Hints {
	return Hints{Preferred: &Size{Width: width, Height: height}}
}

func deref(s *Size) (Size, bool) {
	if s == nil {
		return Size{}, false
	}
	return *s, true
}

func hintOf(h SizeHints, kind HintKind) (Size, bool) {
	if h == nil {
		return Size{}, false
	}
	switch kind {
	case Minimum:
		return h.MinimumSize()
	case Maximum:
		return h.MaximumSize()
	default:
		return h.PreferredSize()
	}
}
