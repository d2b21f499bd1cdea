package panel

import "github.com/jmallory/floatpane/pkg/geometry"

// SetViewport records the latest viewport dimensions and re-evaluates the
// panel's constraints against them. Every notification runs a pass; the
// reconcile itself is a no-op write when nothing moved, so hosts that want
// to debounce resize storms (watcher.Debouncer) can without changing the
// end state.
func (p *Panel) SetViewport(width, height int) {
	p.vp = geometry.Viewport{Width: width, Height: height}
	p.machine.SetViewport(p.vp)
	p.reconcile()
}

// Viewport returns the last seen viewport.
func (p *Panel) Viewport() geometry.Viewport { return p.vp }

func (p *Panel) reconcile() {
	if g, changed := geometry.Reconcile(p.geo, p.renderedW, p.renderedH, p.bounds(), p.vp); changed {
		p.geo = g
	}
}
