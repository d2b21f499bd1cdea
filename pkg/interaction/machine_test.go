package interaction

import (
	"testing"
	"time"

	"github.com/jmallory/floatpane/pkg/geometry"
)

type fakeTimer struct{ stopped bool }

func (f *fakeTimer) Stop() bool {
	f.stopped = true
	return true
}

// testMachine returns a machine whose hold timer never fires on its own;
// the returned func fires the most recently armed timer by hand.
func testMachine(b geometry.Bounds) (*Machine, func()) {
	m := NewMachine(b)
	m.SetViewport(geometry.Viewport{Width: 200, Height: 100})

	var pendingFire func()
	m.afterFunc = func(_ time.Duration, f func()) stoppable {
		pendingFire = f
		return &fakeTimer{}
	}
	return m, func() {
		if pendingFire != nil {
			pendingFire()
		}
	}
}

func testBounds() geometry.Bounds {
	return geometry.Bounds{
		MinWidth:  10,
		MinHeight: 4,
		MaxWidth:  geometry.LimitViewport,
		MaxHeight: geometry.LimitViewport,
	}
}

func startGeo() geometry.Geometry {
	return geometry.Geometry{
		Pos:  geometry.Point{X: 20, Y: 10},
		Size: geometry.Size{Width: geometry.Cells(40), Height: geometry.Cells(12)},
	}
}

func TestMouseDragSession(t *testing.T) {
	m, _ := testMachine(testBounds())

	var got []geometry.Geometry
	starts, ends := 0, 0
	m.OnGeometry = func(g geometry.Geometry) { got = append(got, g) }
	m.OnSessionStart = func() { starts++ }
	m.OnSessionEnd = func() { ends++ }

	m.PointerDown(Event{X: 30, Y: 15}, Drag, startGeo())
	if !m.Active() {
		t.Fatal("mouse drag should start immediately")
	}
	if starts != 1 {
		t.Fatalf("starts = %d, want 1", starts)
	}

	m.PointerMove(35, 18)
	if len(got) != 1 {
		t.Fatalf("moves produced %d geometries, want 1", len(got))
	}
	if got[0].Pos != (geometry.Point{X: 25, Y: 13}) {
		t.Errorf("pos = %+v, want (25,13)", got[0].Pos)
	}

	m.PointerUp()
	if m.Active() {
		t.Error("still active after release")
	}
	if ends != 1 {
		t.Errorf("ends = %d, want 1", ends)
	}

	m.PointerMove(99, 99)
	if len(got) != 1 {
		t.Error("idle machine produced geometry")
	}
}

func TestResizeSession(t *testing.T) {
	m, _ := testMachine(testBounds())

	var last geometry.Geometry
	m.OnGeometry = func(g geometry.Geometry) { last = g }

	m.PointerDown(Event{X: 60, Y: 22}, Resize(geometry.SouthEast), startGeo())
	m.PointerMove(70, 25)

	w, _ := last.Size.Width.Fixed()
	h, _ := last.Size.Height.Fixed()
	if w != 50 || h != 15 {
		t.Errorf("size = %dx%d, want 50x15", w, h)
	}
	if last.Pos != startGeo().Pos {
		t.Errorf("south-east resize moved the origin: %+v", last.Pos)
	}
}

func TestDragRejectedOnInteractiveTarget(t *testing.T) {
	m, _ := testMachine(testBounds())
	moved := false
	m.OnGeometry = func(geometry.Geometry) { moved = true }

	targets := []Target{
		{Tag: "input"},
		{Tag: "textarea"},
		{Tag: "button"},
		{Tag: "select"},
		{Tag: "a"},
		{Editable: true},
		{Ancestors: []string{"span", "a"}},
		{Ancestors: []string{"button"}},
	}
	for _, target := range targets {
		m.PointerDown(Event{X: 30, Y: 15, Target: target}, Drag, startGeo())
		if m.Active() {
			t.Errorf("drag started on interactive target %+v", target)
			m.PointerUp()
		}
	}
	m.PointerMove(80, 40)
	if moved {
		t.Error("rejected drags still produced geometry")
	}
}

func TestResizeAllowedOnInteractiveTarget(t *testing.T) {
	// Only drags defer to embedded controls; a grip press always resizes.
	m, _ := testMachine(testBounds())
	m.PointerDown(Event{X: 60, Y: 22, Target: Target{Tag: "input"}}, Resize(geometry.East), startGeo())
	if !m.Active() {
		t.Error("resize should start regardless of target")
	}
}

func TestTouchDragWaitsForHold(t *testing.T) {
	m, fire := testMachine(testBounds())
	starts := 0
	m.OnSessionStart = func() { starts++ }

	m.PointerDown(Event{X: 30, Y: 15, Touch: true}, Drag, startGeo())
	if m.Active() {
		t.Fatal("touch drag must not start before the hold elapses")
	}

	// Wandering inside the threshold keeps the wait alive.
	m.PointerMove(33, 17)
	fire()
	if !m.Active() {
		t.Fatal("hold elapsed without movement past threshold; session expected")
	}
	if starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}
}

func TestTouchDragCancelledByMovement(t *testing.T) {
	m, fire := testMachine(testBounds())
	moved := false
	m.OnGeometry = func(geometry.Geometry) { moved = true }

	m.PointerDown(Event{X: 30, Y: 15, Touch: true}, Drag, startGeo())
	m.PointerMove(55, 15) // past the threshold: scrolling, not dragging
	if m.Active() {
		t.Fatal("movement past threshold must abandon the drag")
	}

	// A stale timer firing afterwards must not resurrect it.
	fire()
	if m.Active() {
		t.Error("stale hold timer created a session")
	}
	m.PointerMove(80, 40)
	if moved {
		t.Error("abandoned touch drag produced geometry")
	}
}

func TestTouchDragCancelledByRelease(t *testing.T) {
	m, fire := testMachine(testBounds())
	ends := 0
	m.OnSessionEnd = func() { ends++ }

	m.PointerDown(Event{X: 30, Y: 15, Touch: true}, Drag, startGeo())
	m.PointerUp()
	fire()
	if m.Active() {
		t.Error("release during hold still produced a session")
	}
	if ends != 0 {
		t.Errorf("no session ever existed but ends = %d", ends)
	}
}

func TestTouchResizeIsImmediate(t *testing.T) {
	m, _ := testMachine(testBounds())
	m.PointerDown(Event{X: 60, Y: 22, Touch: true}, Resize(geometry.South), startGeo())
	if !m.Active() {
		t.Error("touch resize should not wait for the hold delay")
	}
}

func TestSingleSessionDiscipline(t *testing.T) {
	m, _ := testMachine(testBounds())
	m.PointerDown(Event{X: 30, Y: 15}, Drag, startGeo())

	m.PointerDown(Event{X: 60, Y: 22}, Resize(geometry.East), startGeo())
	s, ok := m.Session()
	if !ok {
		t.Fatal("session vanished")
	}
	if !s.Kind.IsDrag() {
		t.Error("second press replaced the active session")
	}
}

func TestUnmeasuredStartIsNoOp(t *testing.T) {
	m, _ := testMachine(testBounds())
	auto := geometry.Geometry{
		Pos:  geometry.Point{X: 5, Y: 5},
		Size: geometry.Size{Width: geometry.Auto, Height: geometry.Auto},
	}
	m.PointerDown(Event{X: 10, Y: 6}, Drag, auto)
	if m.Active() {
		t.Error("session created from an unmeasured panel")
	}
}

func TestCancelMatchesRelease(t *testing.T) {
	m, _ := testMachine(testBounds())
	var last geometry.Geometry
	ends := 0
	m.OnGeometry = func(g geometry.Geometry) { last = g }
	m.OnSessionEnd = func() { ends++ }

	m.PointerDown(Event{X: 30, Y: 15}, Drag, startGeo())
	m.PointerMove(40, 20)
	final := last
	m.PointerCancel()

	if m.Active() {
		t.Error("cancel left a dangling session")
	}
	if ends != 1 {
		t.Errorf("ends = %d, want 1", ends)
	}
	if last != final {
		t.Error("cancel altered the last known geometry")
	}
}

func TestConfinedDragThroughMachine(t *testing.T) {
	b := testBounds()
	b.Confine = true
	m, _ := testMachine(b)

	var last geometry.Geometry
	m.OnGeometry = func(g geometry.Geometry) { last = g }

	m.PointerDown(Event{X: 30, Y: 15}, Drag, startGeo())
	m.PointerMove(-500, 900)

	if last.Pos.X != 0 {
		t.Errorf("x = %d, want 0", last.Pos.X)
	}
	if last.Pos.Y != 100-12 {
		t.Errorf("y = %d, want %d", last.Pos.Y, 100-12)
	}
}
