package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfly/render"
)

// Screen presents a framebuffer on a terminal through tcell, two vertical
// pixels per cell via the upper half block: foreground is the top pixel,
// background the bottom one.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New initializes the real terminal screen with mouse reporting enabled
func New() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := ts.Init(); err != nil {
		return nil, err
	}
	return wrap(ts), nil
}

// NewSimulation initializes a tcell simulation screen for tests
func NewSimulation(cols, rows int) (*Screen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, err
	}
	sim.SetSize(cols, rows)
	return wrap(sim), nil
}

func wrap(ts tcell.Screen) *Screen {
	ts.EnableMouse()
	ts.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	ts.Clear()

	s := &Screen{
		screen: ts,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go ts.ChannelEvents(s.events, s.quit)
	return s
}

// Size returns the presentable area in pixels: terminal columns by twice
// the terminal rows
func (s *Screen) Size() (width, height int) {
	cols, rows := s.screen.Size()
	return cols, rows * 2
}

// Present blits the color plane to the terminal, clipped to whichever of
// the buffer and the current terminal is smaller. The plane stores rows
// bottom-up, so cells read it in reverse row order.
func (s *Screen) Present(fb *render.Framebuffer) error {
	cols, rows := s.screen.Size()
	w := min(fb.Width(), cols)
	cellRows := min(fb.Height()/2, rows)
	fbH := fb.Height()

	for cy := 0; cy < cellRows; cy++ {
		top := fbH - 1 - cy*2
		bottom := top - 1
		for x := 0; x < w; x++ {
			fg := fb.At(x, top)
			bg := fb.At(x, bottom)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
				Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
			s.screen.SetContent(x, cy, '▀', nil, st)
		}
	}

	s.screen.Show()
	return nil
}

// Events exposes the terminal event stream for exit handling
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Fini restores the terminal
func (s *Screen) Fini() {
	close(s.quit)
	s.screen.Fini()
}
