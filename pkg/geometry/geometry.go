// Package geometry implements the placement and size constraint math for
// floating panels: drag translation, eight-direction resize, and
// reconciliation against a changed viewport. All functions are pure and
// operate in terminal cell units.
package geometry

import "strconv"

// Point is a cell coordinate in viewport space.
type Point struct {
	X, Y int
}

// Viewport is the size of the hosting surface.
type Viewport struct {
	Width, Height int
}

type sizeMode int

const (
	modeCells sizeMode = iota
	modeAuto
	modeFull
)

// SizeValue is one dimension of a panel size: a fixed cell count, "auto"
// (sized to content), or "full" (sized to the viewport).
type SizeValue struct {
	mode sizeMode
	n    int
}

// Cells returns a fixed SizeValue of n cells.
func Cells(n int) SizeValue { return SizeValue{mode: modeCells, n: n} }

// Auto sizes the dimension to its rendered content.
var Auto = SizeValue{mode: modeAuto}

// Full sizes the dimension to the viewport.
var Full = SizeValue{mode: modeFull}

// Fixed reports the cell count and whether the value is a fixed count.
func (v SizeValue) Fixed() (int, bool) { return v.n, v.mode == modeCells }

// IsAuto reports whether the dimension tracks its content.
func (v SizeValue) IsAuto() bool { return v.mode == modeAuto }

// IsFull reports whether the dimension tracks the viewport.
func (v SizeValue) IsFull() bool { return v.mode == modeFull }

// String renders the value for display: "40", "auto", or "100%".
func (v SizeValue) String() string {
	switch v.mode {
	case modeAuto:
		return "auto"
	case modeFull:
		return "100%"
	default:
		return strconv.Itoa(v.n)
	}
}

// Size is a panel's configured extent.
type Size struct {
	Width, Height SizeValue
}

// Geometry is a panel's placement and extent.
type Geometry struct {
	Pos  Point
	Size Size
}

// Limit is a maximum size bound: either a fixed cell count or the viewport
// dimension at evaluation time. The zero value is the viewport sentinel.
type Limit struct {
	fixed bool
	n     int
}

// LimitCells returns a fixed maximum of n cells.
func LimitCells(n int) Limit { return Limit{fixed: true, n: n} }

// LimitViewport tracks the viewport dimension.
var LimitViewport = Limit{}

// IsViewport reports whether the limit tracks the viewport.
func (l Limit) IsViewport() bool { return !l.fixed }

// Resolve returns the effective maximum against the given viewport dimension.
func (l Limit) Resolve(viewportDim int) int {
	if l.fixed {
		return l.n
	}
	return viewportDim
}

// Bounds are the configured size constraints for a panel.
type Bounds struct {
	MinWidth  int
	MinHeight int
	MaxWidth  Limit
	MaxHeight Limit
	// Confine keeps the whole panel box inside the viewport.
	Confine bool
}

// Direction identifies which edge or corner a resize grips.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthWest
	NorthEast
	SouthWest
	SouthEast
)

// Directions lists all eight resize directions in a stable order.
var Directions = []Direction{North, South, East, West, NorthWest, NorthEast, SouthWest, SouthEast}

func (d Direction) String() string {
	switch d {
	case North:
		return "n"
	case South:
		return "s"
	case East:
		return "e"
	case West:
		return "w"
	case NorthWest:
		return "nw"
	case NorthEast:
		return "ne"
	case SouthWest:
		return "sw"
	case SouthEast:
		return "se"
	}
	return "?"
}

// Cursor returns the pointer cursor hint for the direction.
func (d Direction) Cursor() string {
	switch d {
	case North, South:
		return "ns-resize"
	case East, West:
		return "ew-resize"
	case NorthWest, SouthEast:
		return "nwse-resize"
	default:
		return "nesw-resize"
	}
}

// TouchesTop reports whether the direction grips the top edge.
func (d Direction) TouchesTop() bool {
	return d == North || d == NorthWest || d == NorthEast
}

// TouchesBottom reports whether the direction grips the bottom edge.
func (d Direction) TouchesBottom() bool {
	return d == South || d == SouthWest || d == SouthEast
}

// TouchesLeft reports whether the direction grips the left edge.
func (d Direction) TouchesLeft() bool {
	return d == West || d == NorthWest || d == SouthWest
}

// TouchesRight reports whether the direction grips the right edge.
func (d Direction) TouchesRight() bool {
	return d == East || d == NorthEast || d == SouthEast
}
