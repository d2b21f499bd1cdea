package panel

import "github.com/jmallory/floatpane/pkg/geometry"

// Resize grip dimensions in cells. Grips grow while a session is live so a
// finger can find them again mid-interaction.
const (
	edgeThickness       = 1
	cornerSize          = 2
	activeEdgeThickness = 2
	activeCornerSize    = 3
)

// Rect is an axis-aligned cell region in viewport coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Handle is one directional resize grip.
type Handle struct {
	Dir    geometry.Direction
	Rect   Rect
	Cursor string
}

// Handles returns the eight resize grips for the current box, corners
// first. Slice order is hit-test priority: a press on a corner cell wins
// over the edge runs beside it. Grips sit on the border and straddle it
// outward while active.
func (p *Panel) Handles() []Handle {
	return handleRegions(p.geo.Pos, p.renderedW, p.renderedH, p.interacting)
}

// HitTest maps a press position to the grip under it, if any.
func (p *Panel) HitTest(x, y int) (geometry.Direction, bool) {
	for _, h := range p.Handles() {
		if h.Rect.Contains(x, y) {
			return h.Dir, true
		}
	}
	return 0, false
}

func handleRegions(pos geometry.Point, w, h int, active bool) []Handle {
	c, t := cornerSize, edgeThickness
	if active {
		c, t = activeCornerSize, activeEdgeThickness
	}
	// Active grips extend one cell past the border.
	out := t - 1
	x, y := pos.X, pos.Y

	mk := func(dir geometry.Direction, r Rect) Handle {
		return Handle{Dir: dir, Rect: r, Cursor: dir.Cursor()}
	}
	return []Handle{
		mk(geometry.NorthWest, Rect{x - out, y - out, c, c}),
		mk(geometry.NorthEast, Rect{x + w - c + out, y - out, c, c}),
		mk(geometry.SouthWest, Rect{x - out, y + h - c + out, c, c}),
		mk(geometry.SouthEast, Rect{x + w - c + out, y + h - c + out, c, c}),
		mk(geometry.North, Rect{x + c, y - out, w - 2*c, t}),
		mk(geometry.South, Rect{x + c, y + h - 1, w - 2*c, t}),
		mk(geometry.West, Rect{x - out, y + c, t, h - 2*c}),
		mk(geometry.East, Rect{x + w - 1, y + c, t, h - 2*c}),
	}
}
