package geometry

// The resolvers below take a start geometry captured at interaction start,
// which always carries fixed cell sizes (auto/full panels are snapshotted at
// their rendered size before a session begins). Clamp ordering is load
// bearing: the maximum clamp runs before the position is recomputed so a
// panel resized from its fixed edge does not drift at the max bound, and the
// minimum floor runs last so confinement never squeezes a panel below its
// configured minimum, even when that leaves it protruding past the viewport.

// ResolveDrag translates start by (dx, dy). Size never changes on a drag.
// With Confine set the whole box, at start's size, is kept inside the
// viewport; position is floored at zero last so an oversized panel pins to
// the top-left rather than the bottom-right.
func ResolveDrag(start Geometry, dx, dy int, b Bounds, vp Viewport) Geometry {
	g := start
	g.Pos.X += dx
	g.Pos.Y += dy
	if !b.Confine {
		return g
	}
	w, h := startCells(start)
	if g.Pos.X+w > vp.Width {
		g.Pos.X = vp.Width - w
	}
	if g.Pos.X < 0 {
		g.Pos.X = 0
	}
	if g.Pos.Y+h > vp.Height {
		g.Pos.Y = vp.Height - h
	}
	if g.Pos.Y < 0 {
		g.Pos.Y = 0
	}
	return g
}

// ResolveResize grows or shrinks start by (dx, dy) from the gripped edge or
// corner, keeping the opposite edge fixed where no confinement interferes.
func ResolveResize(start Geometry, dx, dy int, dir Direction, b Bounds, vp Viewport) Geometry {
	x, y := start.Pos.X, start.Pos.Y
	w, h := startCells(start)
	nw, nh := w, h

	switch {
	case dir.TouchesRight():
		nw = w + dx
	case dir.TouchesLeft():
		nw = w - dx
	}
	switch {
	case dir.TouchesBottom():
		nh = h + dy
	case dir.TouchesTop():
		nh = h - dy
	}

	nw = clamp(nw, b.MinWidth, b.MaxWidth.Resolve(vp.Width))
	nh = clamp(nh, b.MinHeight, b.MaxHeight.Resolve(vp.Height))

	// Left/top grips move the origin so the far edge stays put.
	if dir.TouchesLeft() {
		x = start.Pos.X + (w - nw)
	}
	if dir.TouchesTop() {
		y = start.Pos.Y + (h - nh)
	}

	if b.Confine {
		if x < 0 {
			nw += x // shed the overflow before pinning to the edge
			x = 0
		}
		if y < 0 {
			nh += y
			y = 0
		}
		if x+nw > vp.Width {
			nw = vp.Width - x
		}
		if y+nh > vp.Height {
			nh = vp.Height - y
		}
		// Minimum wins over confinement.
		if nw < b.MinWidth {
			nw = b.MinWidth
		}
		if nh < b.MinHeight {
			nh = b.MinHeight
		}
	}

	return Geometry{
		Pos:  Point{X: x, Y: y},
		Size: Size{Width: Cells(nw), Height: Cells(nh)},
	}
}

// Reconcile re-applies bounds to existing geometry after the viewport or
// bounds change, with no pointer input. Fixed dimensions are clamped to the
// effective maximum; confinement uses the panel's actual rendered box, since
// auto/full sizes are resolved by the rendering layer. The second return is
// false when nothing changed, so callers can skip redundant writes.
func Reconcile(current Geometry, renderedW, renderedH int, b Bounds, vp Viewport) (Geometry, bool) {
	g := current

	bw, bh := renderedW, renderedH
	if w, ok := g.Size.Width.Fixed(); ok {
		cw := clamp(w, b.MinWidth, b.MaxWidth.Resolve(vp.Width))
		if cw != w {
			g.Size.Width = Cells(cw)
		}
		bw = cw
	}
	if h, ok := g.Size.Height.Fixed(); ok {
		ch := clamp(h, b.MinHeight, b.MaxHeight.Resolve(vp.Height))
		if ch != h {
			g.Size.Height = Cells(ch)
		}
		bh = ch
	}

	if b.Confine {
		if g.Pos.X+bw > vp.Width {
			g.Pos.X = vp.Width - bw
		}
		if g.Pos.X < 0 {
			g.Pos.X = 0
		}
		if g.Pos.Y+bh > vp.Height {
			g.Pos.Y = vp.Height - bh
		}
		if g.Pos.Y < 0 {
			g.Pos.Y = 0
		}
	}

	return g, g != current
}

func startCells(g Geometry) (int, int) {
	w, _ := g.Size.Width.Fixed()
	h, _ := g.Size.Height.Fixed()
	return w, h
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
