package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starfly/config"
	"github.com/lixenwraith/starfly/constant"
	"github.com/lixenwraith/starfly/render"
	"github.com/lixenwraith/starfly/starfield"
)

// Surface receives the composited color plane once per tick. Present must
// tolerate the plane's fixed dimensions even if the output area resized.
type Surface interface {
	Size() (width, height int)
	Present(fb *render.Framebuffer) error
}

// Session drives the simulation at a fixed cadence on a single goroutine:
// clear, advance, composite, present. Ticks never overlap; teardown waits
// for an in-flight tick with a bounded timeout and then proceeds anyway,
// accepting the small risk of a torn final frame.
type Session struct {
	cfg     *config.Config
	field   *starfield.Field
	fb      *render.Framebuffer
	surface Surface

	inRender atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	err      error
	prev     time.Time
}

// New allocates the framebuffer at the surface's initial size and places
// the initial star field. A zero-sized surface is a fatal bootstrap
// failure: the caller must abort startup.
func New(cfg *config.Config, surface Surface, src starfield.Source) (*Session, error) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface reports unusable size %dx%d", width, height)
	}

	return &Session{
		cfg:      cfg,
		field:    starfield.NewField(cfg, width, height, src),
		fb:       render.NewFramebuffer(width, height),
		surface:  surface,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start launches the frame loop
func (s *Session) Start() {
	s.prev = time.Now()
	go s.run()
}

// Done is closed when the frame loop has exited, voluntarily or on a
// frame failure
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the frame failure that ended the loop, if any. Valid after
// Done is closed.
func (s *Session) Err() error {
	return s.err
}

// Rendering reports whether a tick is in flight
func (s *Session) Rendering() bool {
	return s.inRender.Load()
}

// Stop asks the frame loop to end and waits for the in-flight tick up to
// the teardown timeout. On timeout it returns anyway; shared buffers are
// only released by the caller afterwards, best effort.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	select {
	case <-s.done:
	case <-time.After(constant.TeardownTimeout):
	}
}

func (s *Session) run() {
	defer close(s.done)

	ticker := time.NewTicker(time.Duration(s.cfg.FrameInterval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if err := s.tick(); err != nil {
				s.err = err
				return
			}
		}
	}
}

// tick advances simulated time by the wall-clock elapsed interval and
// composites one frame. The barrier flag brackets all buffer access so a
// concurrent Stop can detect a render in progress.
func (s *Session) tick() error {
	s.inRender.Store(true)
	defer s.inRender.Store(false)

	now := time.Now()
	elapsed := now.Sub(s.prev)
	s.prev = now

	s.fb.Clear()
	s.field.Advance(float64(elapsed)/float64(time.Millisecond), s.fb)
	return s.surface.Present(s.fb)
}
