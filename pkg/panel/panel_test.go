package panel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallory/floatpane/pkg/geometry"
	"github.com/jmallory/floatpane/pkg/interaction"
	"github.com/jmallory/floatpane/pkg/style"
)

func testPanel() *Panel {
	p := New(Config{
		Title:  "demo",
		X:      10,
		Y:      5,
		Width:  geometry.Cells(30),
		Height: geometry.Cells(10),
		Style:  style.Tokens{Color: "slate-800", Border: "slate-500", Radius: "lg", BorderWidth: 1, Shadow: "none"},
	})
	p.SetViewport(80, 24)
	p.SetContent("hello")
	p.View()
	return p
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestViewRecordsRenderedSize(t *testing.T) {
	p := testPanel()
	w, h := p.RenderedSize()
	if w != 30 || h != 10 {
		t.Errorf("rendered size = %dx%d, want 30x10", w, h)
	}
}

func TestPointerDownBeforeFirstRenderIsNoOp(t *testing.T) {
	p := New(Config{X: 10, Y: 5, Width: geometry.Cells(30), Height: geometry.Cells(10)})
	p.SetViewport(80, 24)
	if p.PointerDown(15, 8, false) {
		t.Error("press before first render should not be consumed")
	}
	if p.IsInteracting() {
		t.Error("session started on an unmeasured panel")
	}
}

func TestMouseDragThroughUpdate(t *testing.T) {
	p := testPanel()

	if !p.Update(press(20, 8)) {
		t.Fatal("press inside the panel should be consumed")
	}
	if !p.IsInteracting() {
		t.Fatal("drag session should be live")
	}
	p.Update(motion(25, 10))
	if got := p.Geometry().Pos; got != (geometry.Point{X: 15, Y: 7}) {
		t.Errorf("pos = %+v, want (15,7)", got)
	}
	p.Update(release(25, 10))
	if p.IsInteracting() {
		t.Error("release did not end the session")
	}

	// Motion while idle is ignored and unconsumed.
	if p.Update(motion(40, 12)) {
		t.Error("idle panel consumed a motion event")
	}
	if got := p.Geometry().Pos; got != (geometry.Point{X: 15, Y: 7}) {
		t.Errorf("idle motion moved the panel to %+v", got)
	}
}

func TestPressOutsideIsNotConsumed(t *testing.T) {
	p := testPanel()
	if p.Update(press(70, 2)) {
		t.Error("press outside the panel was consumed")
	}
}

func TestDragPreservesAutoSize(t *testing.T) {
	p := New(Config{Title: "auto", X: 10, Y: 5, Style: style.Tokens{BorderWidth: 1, Shadow: "none"}})
	p.SetViewport(80, 24)
	p.SetContent("line one\nline two")
	p.View()

	p.PointerDown(12, 6, false)
	p.PointerMove(20, 9)
	p.PointerUp()

	g := p.Geometry()
	if !g.Size.Width.IsAuto() || !g.Size.Height.IsAuto() {
		t.Errorf("drag rewrote auto size to %v x %v", g.Size.Width, g.Size.Height)
	}
	if g.Pos.X == 10 && g.Pos.Y == 5 {
		t.Error("drag did not move the panel")
	}
}

func TestResizePinsAutoSizeToCells(t *testing.T) {
	p := New(Config{Title: "auto", X: 10, Y: 5, Style: style.Tokens{BorderWidth: 1, Shadow: "none"}})
	p.SetViewport(80, 24)
	p.SetContent("0123456789012345678901234567890123456789")
	p.View()
	w0, h0 := p.RenderedSize()

	dir, ok := p.HitTest(10+w0-1, 5+h0-1)
	if !ok || dir != geometry.SouthEast {
		t.Fatalf("bottom-right cell should hit the SE grip, got %v %v", dir, ok)
	}
	p.PointerDown(10+w0-1, 5+h0-1, false)
	p.PointerMove(10+w0+4, 5+h0+2)

	g := p.Geometry()
	w, wok := g.Size.Width.Fixed()
	h, hok := g.Size.Height.Fixed()
	if !wok || !hok {
		t.Fatal("resize should pin auto sizes to cells")
	}
	if w != w0+5 || h != h0+3 {
		t.Errorf("size = %dx%d, want %dx%d", w, h, w0+5, h0+3)
	}
}

func TestEmbeddedControlBlocksDrag(t *testing.T) {
	p := testPanel()
	p.SetTargetAt(func(x, y int) interaction.Target {
		if y == 2 {
			return interaction.Target{Tag: "input"}
		}
		return interaction.Target{}
	})

	// Row 2 of the panel hosts the control: press consumed, no session.
	if !p.Update(press(20, 7)) {
		t.Error("press on embedded control should still be consumed by the panel")
	}
	if p.IsInteracting() {
		t.Error("drag started on an embedded control")
	}

	// A passive row drags fine.
	p.Update(press(20, 8))
	if !p.IsInteracting() {
		t.Error("drag refused on passive content")
	}
}

func TestViewportShrinkReconciles(t *testing.T) {
	p := New(Config{
		X:        750,
		Y:        0,
		Width:    geometry.Cells(100),
		Height:   geometry.Cells(100),
		MinWidth: 100,
		MaxWidth: geometry.LimitCells(500),
		Confine:  true,
	})
	p.Update(tea.WindowSizeMsg{Width: 800, Height: 600})

	p.Update(tea.WindowSizeMsg{Width: 400, Height: 600})
	g := p.Geometry()
	w, _ := g.Size.Width.Fixed()
	if g.Pos.X > 300 {
		t.Errorf("x = %d, want <= 300", g.Pos.X)
	}
	if w > 400 {
		t.Errorf("width = %d, want <= 400", w)
	}
}

func TestApplyConfigReconciles(t *testing.T) {
	p := testPanel()
	cfg := p.cfg
	cfg.Confine = true
	cfg.MaxWidth = geometry.LimitCells(20)
	p.ApplyConfig(cfg)

	w, _ := p.Geometry().Size.Width.Fixed()
	if w != 20 {
		t.Errorf("width = %d, want clamped 20", w)
	}
}

func TestShadowFringeOutsideMeasuredBox(t *testing.T) {
	p := New(Config{
		Title:  "shadowed",
		X:      0,
		Y:      0,
		Width:  geometry.Cells(20),
		Height: geometry.Cells(6),
		Style:  style.Tokens{BorderWidth: 1, Shadow: "xl/50"},
	})
	p.SetViewport(80, 24)
	out := p.View()

	w, h := p.RenderedSize()
	if w != 20 || h != 6 {
		t.Errorf("measured box = %dx%d, want 20x6 excluding the fringe", w, h)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 7 {
		t.Errorf("shadowed view has %d rows, want 7 (box plus fringe)", len(lines))
	}
}

func TestOverlaySplicesPlainBase(t *testing.T) {
	base := strings.TrimPrefix(strings.Repeat("\n..........", 4), "\n")
	out := Overlay(base, "XX\nXX", 3, 1)

	lines := strings.Split(out, "\n")
	if lines[0] != ".........." {
		t.Errorf("row 0 changed: %q", lines[0])
	}
	if lines[1] != "...XX....." {
		t.Errorf("row 1 = %q, want ...XX.....", lines[1])
	}
	if lines[2] != "...XX....." {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestOverlayClipsOffBase(t *testing.T) {
	base := "....\n...."
	out := Overlay(base, "AB\nCD\nEF", 3, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("overlay grew the base to %d rows", len(lines))
	}
	if lines[1] != "...AB" {
		t.Errorf("row 1 = %q, want ...AB", lines[1])
	}
}
