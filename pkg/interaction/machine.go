package interaction

import (
	"sync"
	"time"

	"github.com/jmallory/floatpane/pkg/geometry"
)

const (
	// DefaultHoldDelay is how long a touch press must hold still before a
	// drag session starts, so touch scrolling is not hijacked.
	DefaultHoldDelay = 200 * time.Millisecond
	// DefaultMoveThreshold is how far a held touch may wander before the
	// prospective drag is abandoned.
	DefaultMoveThreshold = 10
)

// Session is the transient record of an in-progress drag or resize. Start
// always carries concrete cell sizes, snapshotted from the rendered box
// before the session began.
type Session struct {
	Kind   Kind
	Origin geometry.Point
	Start  geometry.Geometry
}

// pendingTouch is a touch drag waiting out the hold delay. No session
// exists yet; movement past the threshold abandons it without one.
type pendingTouch struct {
	origin geometry.Point
	start  geometry.Geometry
	timer  stoppable
}

type stoppable interface{ Stop() bool }

// Machine is the interaction state machine: Idle, or Active with exactly
// one session. Pointer events go in; constrained geometry comes out through
// OnGeometry. OnSessionStart/OnSessionEnd fire on the Idle->Active and
// Active->Idle transitions and are where hosts attach and detach their
// global motion listeners.
type Machine struct {
	// OnGeometry receives every geometry produced during a session.
	OnGeometry func(geometry.Geometry)
	// OnSessionStart runs when a session begins. May be called from the
	// hold timer's goroutine for deferred touch drags.
	OnSessionStart func()
	// OnSessionEnd runs when a session finishes or is cancelled.
	OnSessionEnd func()

	holdDelay     time.Duration
	moveThreshold int

	mu       sync.Mutex
	bounds   geometry.Bounds
	viewport geometry.Viewport
	session  *Session
	pending  *pendingTouch
	seq      uint64

	// afterFunc is swapped out by tests for deterministic timer control.
	afterFunc func(time.Duration, func()) stoppable
}

// NewMachine returns an idle machine with the default hold delay and
// movement threshold.
func NewMachine(bounds geometry.Bounds) *Machine {
	return &Machine{
		bounds:        bounds,
		holdDelay:     DefaultHoldDelay,
		moveThreshold: DefaultMoveThreshold,
		afterFunc: func(d time.Duration, f func()) stoppable {
			return time.AfterFunc(d, f)
		},
	}
}

// SetBounds replaces the size constraints used for subsequent moves.
func (m *Machine) SetBounds(b geometry.Bounds) {
	m.mu.Lock()
	m.bounds = b
	m.mu.Unlock()
}

// SetViewport records the viewport used for subsequent moves.
func (m *Machine) SetViewport(vp geometry.Viewport) {
	m.mu.Lock()
	m.viewport = vp
	m.mu.Unlock()
}

// Pending reports whether a touch drag is waiting out the hold delay.
func (m *Machine) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Active reports whether a session is in progress.
func (m *Machine) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// Session returns a copy of the active session, if any.
func (m *Machine) Session() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// PointerDown starts an interaction. start is the geometry snapshot with
// concrete cell sizes; a start without a measurable box is a no-op (the
// panel has not rendered yet). Presses are ignored while a session is
// active: one interaction at a time.
//
// Drags are rejected on interactive targets, and touch drags wait out the
// hold delay first. Resize entry is immediate for both mouse and touch.
func (m *Machine) PointerDown(ev Event, kind Kind, start geometry.Geometry) {
	w, wok := start.Size.Width.Fixed()
	h, hok := start.Size.Height.Fixed()
	if !wok || !hok || w <= 0 || h <= 0 {
		return
	}

	m.mu.Lock()
	if m.session != nil || m.pending != nil {
		m.mu.Unlock()
		return
	}
	if kind.IsDrag() && ev.Target.Interactive() {
		m.mu.Unlock()
		return
	}

	origin := geometry.Point{X: ev.X, Y: ev.Y}

	if kind.IsDrag() && ev.Touch {
		m.seq++
		seq := m.seq
		p := &pendingTouch{origin: origin, start: start}
		p.timer = m.afterFunc(m.holdDelay, func() { m.holdElapsed(seq) })
		m.pending = p
		m.mu.Unlock()
		return
	}

	m.session = &Session{Kind: kind, Origin: origin, Start: start}
	onStart := m.OnSessionStart
	m.mu.Unlock()

	if onStart != nil {
		onStart()
	}
}

// holdElapsed promotes a pending touch drag into a session. The sequence
// guard keeps a stale timer from firing into a wait that was already
// cancelled or superseded.
func (m *Machine) holdElapsed(seq uint64) {
	m.mu.Lock()
	if seq != m.seq || m.pending == nil || m.session != nil {
		m.mu.Unlock()
		return
	}
	p := m.pending
	m.pending = nil
	m.session = &Session{Kind: Drag, Origin: p.origin, Start: p.start}
	onStart := m.OnSessionStart
	m.mu.Unlock()

	if onStart != nil {
		onStart()
	}
}

// PointerMove advances the active session, producing new geometry through
// OnGeometry. During a touch hold it only checks the movement threshold;
// crossing it abandons the prospective drag entirely.
func (m *Machine) PointerMove(x, y int) {
	m.mu.Lock()

	if p := m.pending; p != nil {
		if abs(x-p.origin.X) > m.moveThreshold || abs(y-p.origin.Y) > m.moveThreshold {
			m.cancelPendingLocked()
		}
		m.mu.Unlock()
		return
	}

	s := m.session
	if s == nil {
		m.mu.Unlock()
		return
	}
	dx := x - s.Origin.X
	dy := y - s.Origin.Y

	var g geometry.Geometry
	if s.Kind.IsDrag() {
		g = geometry.ResolveDrag(s.Start, dx, dy, m.bounds, m.viewport)
	} else {
		g = geometry.ResolveResize(s.Start, dx, dy, s.Kind.Dir(), m.bounds, m.viewport)
	}
	onGeometry := m.OnGeometry
	m.mu.Unlock()

	if onGeometry != nil {
		onGeometry(g)
	}
}

// PointerUp ends the active session at its last known geometry.
func (m *Machine) PointerUp() {
	m.mu.Lock()
	m.cancelPendingLocked()
	ended := m.session != nil
	m.session = nil
	onEnd := m.OnSessionEnd
	m.mu.Unlock()

	if ended && onEnd != nil {
		onEnd()
	}
}

// PointerCancel handles lost capture or the pointer leaving the tracked
// surface. Treated exactly like PointerUp: finalize, never dangle.
func (m *Machine) PointerCancel() {
	m.PointerUp()
}

func (m *Machine) cancelPendingLocked() {
	m.seq++
	if m.pending != nil {
		if m.pending.timer != nil {
			m.pending.timer.Stop()
		}
		m.pending = nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
