// Package panel implements the floating panel widget: a draggable,
// resizable box for bubbletea programs. A Panel owns its geometry
// exclusively; the interaction machine and the viewport reconciliation pass
// are the only writers. Mouse messages and window-size messages go through
// Update; View renders the styled box and records its rendered dimensions
// for the next interaction start.
package panel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallory/floatpane/pkg/geometry"
	"github.com/jmallory/floatpane/pkg/interaction"
	"github.com/jmallory/floatpane/pkg/style"
)

// Default minimum box, applied when the config leaves the minimums zero.
const (
	DefaultMinWidth  = 16
	DefaultMinHeight = 5
)

// Config describes a panel. Supplied once at construction; ApplyConfig
// swaps it later (live reload). Bound sanity is the caller's problem: a
// minimum above the maximum just means the minimum wins in clamping.
type Config struct {
	Title string

	X, Y          int
	Width, Height geometry.SizeValue

	MinWidth, MinHeight int
	MaxWidth, MaxHeight geometry.Limit
	Confine             bool

	// Stacking is the compositing order, higher on top. Passed through to
	// the host; the panel itself does no z management.
	Stacking int

	Style style.Tokens
	// Backdrop is the color translucent tokens composite over.
	Backdrop style.RGB
	// Overflow is the scroll-overflow behavior token, passed through
	// uninterpreted.
	Overflow string
}

// Panel is one widget instance.
type Panel struct {
	cfg      Config
	geo      geometry.Geometry
	machine  *interaction.Machine
	vp       geometry.Viewport
	resolved style.Resolved

	content  string
	targetAt func(x, y int) interaction.Target

	// Rendered box dimensions from the last View, including the border.
	// Zero until first measured; interactions are no-ops until then.
	renderedW, renderedH int

	interacting bool
}

func normalize(cfg Config) Config {
	if w, ok := cfg.Width.Fixed(); ok && w == 0 {
		cfg.Width = geometry.Auto
	}
	if h, ok := cfg.Height.Fixed(); ok && h == 0 {
		cfg.Height = geometry.Auto
	}
	if cfg.MinWidth == 0 {
		cfg.MinWidth = DefaultMinWidth
	}
	if cfg.MinHeight == 0 {
		cfg.MinHeight = DefaultMinHeight
	}
	return cfg
}

// New builds a panel from cfg. Zero-value width/height mean auto sizing;
// zero minimums get the package defaults.
func New(cfg Config) *Panel {
	cfg = normalize(cfg)

	p := &Panel{
		cfg: cfg,
		geo: geometry.Geometry{
			Pos:  geometry.Point{X: cfg.X, Y: cfg.Y},
			Size: geometry.Size{Width: cfg.Width, Height: cfg.Height},
		},
		resolved: style.Resolve(cfg.Style, cfg.Backdrop),
	}
	p.machine = interaction.NewMachine(p.bounds())
	p.machine.OnGeometry = p.writeGeometry
	p.machine.OnSessionStart = func() { p.interacting = true }
	p.machine.OnSessionEnd = func() { p.interacting = false }
	return p
}

// writeGeometry is the single write path during a session. Drags only move
// the panel, so auto/full size values survive them; resizes pin the size to
// the resolved cell counts.
func (p *Panel) writeGeometry(g geometry.Geometry) {
	if s, ok := p.machine.Session(); ok && s.Kind.IsDrag() {
		p.geo.Pos = g.Pos
		return
	}
	p.geo = g
}

func (p *Panel) bounds() geometry.Bounds {
	return geometry.Bounds{
		MinWidth:  p.cfg.MinWidth,
		MinHeight: p.cfg.MinHeight,
		MaxWidth:  p.cfg.MaxWidth,
		MaxHeight: p.cfg.MaxHeight,
		Confine:   p.cfg.Confine,
	}
}

// SetContent replaces the panel body.
func (p *Panel) SetContent(s string) { p.content = s }

// SetTargetAt installs the hit descriptor callback for embedded controls.
// Coordinates are panel-relative (origin at the panel's top-left corner).
func (p *Panel) SetTargetAt(f func(x, y int) interaction.Target) { p.targetAt = f }

// ApplyConfig swaps the configuration in place (live reload): new size
// values and bounds take effect, the current position is kept, and the
// constraints are re-evaluated against the current viewport.
func (p *Panel) ApplyConfig(cfg Config) {
	cfg = normalize(cfg)
	p.cfg = cfg
	p.resolved = style.Resolve(cfg.Style, cfg.Backdrop)
	p.geo.Size = geometry.Size{Width: cfg.Width, Height: cfg.Height}
	p.machine.SetBounds(p.bounds())
	p.reconcile()
}

// Update routes bubbletea messages into the widget. It reports whether the
// message was consumed, so hosts can stop propagation to lower panels.
func (p *Panel) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetViewport(msg.Width, msg.Height)
		return false

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				return false
			}
			return p.PointerDown(msg.X, msg.Y, false)
		case tea.MouseActionMotion:
			// Motion is only interesting while a session (or a touch
			// hold) is live; an idle panel ignores the stream.
			if p.machine.Active() || p.machine.Pending() {
				p.machine.PointerMove(msg.X, msg.Y)
				return true
			}
		case tea.MouseActionRelease:
			if p.machine.Active() || p.machine.Pending() {
				p.machine.PointerUp()
				return true
			}
		}
	}
	return false
}

// PointerDown feeds a normalized press. Returns false when the press missed
// the panel or the panel has never been measured.
func (p *Panel) PointerDown(x, y int, touch bool) bool {
	if p.renderedW == 0 || p.renderedH == 0 {
		return false
	}
	start := p.snapshot()

	if dir, ok := p.HitTest(x, y); ok {
		p.machine.PointerDown(interaction.Event{X: x, Y: y, Touch: touch}, interaction.Resize(dir), start)
		return true
	}
	if p.Contains(x, y) {
		var target interaction.Target
		if p.targetAt != nil {
			target = p.targetAt(x-p.geo.Pos.X, y-p.geo.Pos.Y)
		}
		p.machine.PointerDown(interaction.Event{X: x, Y: y, Target: target, Touch: touch}, interaction.Drag, start)
		return true
	}
	return false
}

// PointerMove feeds a normalized pointer move.
func (p *Panel) PointerMove(x, y int) { p.machine.PointerMove(x, y) }

// PointerUp feeds a normalized release.
func (p *Panel) PointerUp() { p.machine.PointerUp() }

// PointerCancel finalizes a session whose pointer was lost.
func (p *Panel) PointerCancel() { p.machine.PointerCancel() }

// snapshot captures the geometry with concrete cell sizes from the last
// render, so sessions on auto/full panels resize from real dimensions.
func (p *Panel) snapshot() geometry.Geometry {
	return geometry.Geometry{
		Pos: p.geo.Pos,
		Size: geometry.Size{
			Width:  geometry.Cells(p.renderedW),
			Height: geometry.Cells(p.renderedH),
		},
	}
}

// Contains reports whether the point is inside the panel box.
func (p *Panel) Contains(x, y int) bool {
	return x >= p.geo.Pos.X && x < p.geo.Pos.X+p.renderedW &&
		y >= p.geo.Pos.Y && y < p.geo.Pos.Y+p.renderedH
}

// Geometry returns the current geometry.
func (p *Panel) Geometry() geometry.Geometry { return p.geo }

// IsInteracting reports whether a drag or resize session is live. Hosts use
// it to suppress text selection and to widen the resize grips.
func (p *Panel) IsInteracting() bool { return p.interacting }

// Stacking returns the configured compositing order.
func (p *Panel) Stacking() int { return p.cfg.Stacking }

// Title returns the configured title.
func (p *Panel) Title() string { return p.cfg.Title }

// Overflow returns the uninterpreted scroll-overflow token.
func (p *Panel) Overflow() string { return p.cfg.Overflow }

// Resolved returns the style attribute bundle.
func (p *Panel) Resolved() style.Resolved { return p.resolved }

// RenderedSize returns the box dimensions from the last View, zero before
// the first render.
func (p *Panel) RenderedSize() (int, int) { return p.renderedW, p.renderedH }
