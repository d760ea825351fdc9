package starfield

import (
	"github.com/lixenwraith/starfly/config"
	"github.com/lixenwraith/starfly/constant"
	"github.com/lixenwraith/starfly/render"
)

// SizeType selects the star size distribution policy
type SizeType int

const (
	// SizeAllEqual gives every star the configured base size
	SizeAllEqual SizeType = iota
	// SizeUniform0to2 scales the base size by a uniform draw in [0, 2)
	SizeUniform0to2
	// SizeGammaLike scales by the gamma-like distribution with mode 1.0
	SizeGammaLike
)

// Field owns the fixed star array and the frame geometry derived from the
// configuration and the framebuffer dimensions. Dimensions are fixed for
// the session; the field is touched only by the single driver goroutine.
type Field struct {
	stars []Star
	src   Source

	width  int
	height int

	screenScale float64
	centerX     float64
	centerY     float64
	xRandSpan   float64
	yRandSpan   float64
	flySpeed    float64
	fadePower   float64
	fadeInTime  float64
	fadeInK     float64
	sizeFactor  float64
	sizeType    SizeType
	colorType   ColorType
	darkest     uint8
}

// NewField derives the frame geometry, allocates the star array and runs
// the initial placement so the first frame already shows a settled field
func NewField(cfg *config.Config, width, height int, src Source) *Field {
	scale := float64(min(width, height)) * cfg.Zoom

	f := &Field{
		stars:       make([]Star, cfg.Stars),
		src:         src,
		width:       width,
		height:      height,
		screenScale: scale,
		centerX:     cfg.CenterX,
		centerY:     cfg.CenterY,
		xRandSpan:   float64(width) * constant.FarPlane / scale,
		yRandSpan:   float64(height) * constant.FarPlane / scale,
		flySpeed:    cfg.FlySpeed,
		fadePower:   cfg.FadePower,
		fadeInTime:  float64(cfg.FadeInTime),
		sizeFactor:  cfg.StarSize,
		sizeType:    SizeType(cfg.SizeType),
		colorType:   ColorType(cfg.ColorType),
		darkest:     uint8(cfg.DarkestRGB),
	}
	if cfg.FadeInTime > 0 {
		f.fadeInK = 1 / float64(cfg.FadeInTime)
	}

	for i := range f.stars {
		s := &f.stars[i]
		s.Pos.Z = -1 // Force generation on first placement
		s.State = StateUninitialized
		f.place(s)
		s.State = StateActive
	}

	return f
}

// Count returns the number of star slots
func (f *Field) Count() int {
	return len(f.stars)
}

// Star returns a pointer to the slot at index i, for tests and tooling
func (f *Field) Star(i int) *Star {
	return &f.stars[i]
}

// place runs the regenerate-and-retry projection loop for one star.
// Retries are geometric in expectation (~3 for centered configurations);
// the cap guards against pathological center offsets. Returns false when
// the star could not be placed this frame, in which case it is skipped
// and retried next frame.
func (f *Field) place(s *Star) bool {
	for i := 0; i < constant.MaxProjectRetries; i++ {
		if s.project(f) {
			return true
		}
		s.regenerate(f)
	}
	return s.project(f)
}

// Advance moves simulated time forward by elapsedMs and composites every
// star into the framebuffer in index order. The depth test resolves
// overlap; exact depth ties go to the last writer, which makes tie pixels
// index-order dependent by accepted design.
func (f *Field) Advance(elapsedMs float64, fb *render.Framebuffer) {
	movedZ := f.flySpeed * elapsedMs

	for i := range f.stars {
		s := &f.stars[i]
		s.Pos.Z -= movedZ
		if s.FadeIn > 0 {
			s.FadeIn -= elapsedMs
		}
		if f.place(s) {
			s.Render(fb)
		}
	}
}
