package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfly/render"
)

func newTestScreen(t *testing.T, cols, rows int) *Screen {
	t.Helper()
	s, err := NewSimulation(cols, rows)
	if err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func TestSizeIsTwoPixelsPerRow(t *testing.T) {
	s := newTestScreen(t, 10, 5)
	w, h := s.Size()
	if w != 10 || h != 10 {
		t.Errorf("Expected 10x10 pixels for a 10x5 terminal, got %dx%d", w, h)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	s := newTestScreen(t, 10, 5)
	fb := render.NewFramebuffer(10, 10)

	// Rows are stored bottom-up: row 9 is the top display row, shown as
	// the foreground of cell row 0; row 8 is its background
	red := render.RGB{R: 255}
	blue := render.RGB{B: 255}
	fb.Set(2, 9, red, 1)
	fb.Set(2, 8, blue, 1)

	if err := s.Present(fb); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	sim := s.screen.(tcell.SimulationScreen)
	cells, w, _ := sim.GetContents()
	cell := cells[2+0*w]
	if len(cell.Runes) == 0 || cell.Runes[0] != '▀' {
		t.Fatalf("Expected upper half block, got %v", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Expected blue background, got %v", bg)
	}
}

func TestPresentClipsToSurface(t *testing.T) {
	s := newTestScreen(t, 5, 5)
	fb := render.NewFramebuffer(20, 20)
	fb.Set(19, 19, render.RGBWhite, 1)

	// Oversized buffer must clip, not panic
	if err := s.Present(fb); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
}

func TestPresentSmallerBuffer(t *testing.T) {
	s := newTestScreen(t, 20, 20)
	fb := render.NewFramebuffer(4, 4)
	if err := s.Present(fb); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
}

func settledWatcher() *ExitWatcher {
	w := NewExitWatcher()
	w.start = time.Now().Add(-time.Minute)
	return w
}

func TestExitWatcherSettlingPeriod(t *testing.T) {
	w := NewExitWatcher()
	key := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if w.ShouldExit(key) {
		t.Error("Expected key presses during settling to be ignored")
	}

	if !settledWatcher().ShouldExit(key) {
		t.Error("Expected key press to end a settled session")
	}
}

func TestExitWatcherMouseClick(t *testing.T) {
	w := settledWatcher()
	click := tcell.NewEventMouse(4, 4, tcell.Button1, tcell.ModNone)
	if !w.ShouldExit(click) {
		t.Error("Expected click to end the session")
	}
}

func TestExitWatcherMouseTolerance(t *testing.T) {
	w := settledWatcher()

	// First observation sets the baseline
	if w.ShouldExit(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)) {
		t.Error("Expected the baseline observation to be tolerated")
	}
	// Small wiggle stays below tolerance
	if w.ShouldExit(tcell.NewEventMouse(12, 11, tcell.ButtonNone, tcell.ModNone)) {
		t.Error("Expected a small move to be tolerated")
	}
	// Deliberate movement ends the session
	if !w.ShouldExit(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone)) {
		t.Error("Expected a large move to end the session")
	}
}

func TestExitWatcherIgnoresResize(t *testing.T) {
	w := settledWatcher()
	if w.ShouldExit(tcell.NewEventResize(80, 24)) {
		t.Error("Expected resize events to be ignored")
	}
}
