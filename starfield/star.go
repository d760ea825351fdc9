package starfield

import (
	"math"

	"github.com/lixenwraith/starfly/constant"
	"github.com/lixenwraith/starfly/render"
	"github.com/lixenwraith/starfly/vmath"
)

// State is the lifecycle tag of a star slot
type State uint8

const (
	// StateUninitialized marks a slot awaiting its first generation at
	// session bootstrap; first generation places the star uniformly in
	// depth so the initial field looks lived-in
	StateUninitialized State = iota
	// StateActive is the steady state, re-entered on every regeneration
	StateActive
)

// Star is one simulated star. Slots live in a fixed array owned by the
// Field; index identity is stable and reused across regenerations.
type Star struct {
	// Absolute state
	Pos    vmath.Vec3F
	Size   float64
	Color  render.RGB
	FadeIn float64 // Time left to full color, ms
	State  State

	// View state, recomputed every frame
	XP, YP   float64 // Screen position
	ViewSize float64 // Radius on screen
	Fade     float64 // 0.0 black, 1.0 full color
}

// project computes the star's screen position, projected radius and fade
// for the current frame geometry. Returns false when the star is behind
// the viewer or its disc lies outside the screen, meaning it must be
// regenerated.
func (s *Star) project(f *Field) bool {
	if s.Pos.Z < 0 {
		return false
	}

	dist2 := vmath.V3FMagSq(s.Pos)
	s.ViewSize = s.Size / math.Sqrt(dist2)
	radius := float64(int(s.ViewSize))

	k := f.screenScale / s.Pos.Z

	s.XP = f.centerX*float64(f.width) + s.Pos.X*k
	if s.XP < -radius || s.XP >= float64(f.width)+radius {
		return false
	}

	s.YP = f.centerY*float64(f.height) + s.Pos.Y*k
	if s.YP < -radius || s.YP >= float64(f.height)+radius {
		return false
	}

	if s.ViewSize < 1 {
		s.Fade = math.Pow(s.ViewSize, f.fadePower)
	} else {
		s.Fade = 1
	}

	// Fade-in of a freshly generated star, regardless of distance fade.
	// A disc-sized star grows from a point at full brightness; a
	// point-sized star simply dims in from black.
	if s.FadeIn > 0 {
		k2 := 1 - s.FadeIn*f.fadeInK
		if s.ViewSize > 1 {
			s.ViewSize *= k2
			if s.ViewSize < 1 {
				s.Fade = s.ViewSize
			} else {
				s.Fade = 1
			}
		} else {
			s.ViewSize *= k2
			s.Fade *= k2
		}
	}

	return true
}

// regenerate draws a new absolute state for the star. Uninitialized slots
// are placed uniformly in depth with no fade-in; active stars respawn at
// the far plane and fade in from black.
func (s *Star) regenerate(f *Field) {
	if s.State == StateUninitialized {
		s.Pos.Z = f.src.Float64() * constant.FarPlane
		s.FadeIn = 0
	} else {
		s.Pos.Z = constant.FarPlane
		s.FadeIn = f.fadeInTime
	}

	// The rand spans are chosen so the random cuboid, projected at the far
	// plane, exactly covers the screen; nearer placements outside the view
	// pyramid are rejected by project and retried (p≈2/3, geometric)
	s.Pos.X = (f.src.Float64() - f.centerX) * f.xRandSpan
	s.Pos.Y = (f.src.Float64() - f.centerY) * f.yRandSpan

	var sizeR float64
	switch f.sizeType {
	case SizeAllEqual:
		sizeR = 1
	case SizeUniform0to2:
		sizeR = f.src.Float64() * 2
	default:
		sizeR = GammaLikeRadius(f.src)
	}

	if sizeR > constant.GiantFactor {
		// Giants appear proportionally further away so they do not
		// burst onto screen as oversized discs
		s.Pos = vmath.V3FScale(s.Pos, constant.GiantFactor)
	}
	s.Size = f.sizeFactor * sizeR

	switch f.colorType {
	case ColorRandomRGB:
		s.Color = RandomRGB(f.src, f.darkest)
	default:
		s.Color = RandomBlackBody(f.src, f.darkest)
	}
}

// Render composites the star into the framebuffer. Discs larger than a
// single pixel are rasterized as filled circles around the fractional
// screen center; everything else is a single depth-tested pixel.
func (s *Star) Render(fb *render.Framebuffer) {
	zp := uint16(s.Pos.Z)
	c := s.Color.Scale(s.Fade)

	if s.ViewSize > constant.MinCircleSize {
		radius := 1
		if s.ViewSize > 1 {
			radius = int(s.ViewSize)
		}
		xp1 := int(s.XP)
		yp1 := int(s.YP)

		drawn := false
		lim := s.ViewSize * s.ViewSize
		// Scan the bounding box intersected with the screen; a pixel is
		// part of the disc when its squared distance from the fractional
		// center stays within the squared radius
		for j := max(0, yp1-radius); j < min(yp1+radius+2, fb.Height()); j++ {
			yd := float64(j) - s.YP
			lim2 := lim - yd*yd
			if lim2 < 0 {
				continue
			}
			for k := max(0, xp1-radius); k < min(xp1+radius+2, fb.Width()); k++ {
				xd := float64(k) - s.XP
				if xd*xd > lim2 {
					continue
				}
				fb.Set(k, j, c, zp)
				drawn = true
			}
		}
		if drawn {
			return
		}
		// Tiny radii near the circle threshold can round to zero pixels;
		// fall through to the single-pixel path
	}

	fb.SetChecked(int(s.XP), int(s.YP), c, zp)
}
