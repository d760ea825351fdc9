package starfield

import (
	"github.com/lixenwraith/starfly/render"
)

// ColorType selects the star color generation policy
type ColorType int

const (
	// ColorRandomRGB draws each channel uniformly in [darkest, 256)
	// Can produce green, purple, cyan - colors impossible for real starlight
	ColorRandomRGB ColorType = iota
	// ColorBlackBody draws a synthetic B-V color index and maps it to RGB
	ColorBlackBody
)

// RandomRGB generates a uniformly random color with every channel at or
// above the darkest floor
func RandomRGB(src Source, darkest uint8) render.RGB {
	span := float64(256 - int(darkest))
	return render.RGB{
		R: darkest + uint8(src.Float64()*span),
		G: darkest + uint8(src.Float64()*span),
		B: darkest + uint8(src.Float64()*span),
	}
}

// RandomBlackBody generates a black-body radiation color from a uniform
// B-V index in [-0.4, 2.4). The darkest floor decreases saturation.
func RandomBlackBody(src Source, darkest uint8) render.RGB {
	bv := -0.4 + src.Float64()*2.4
	return BlackBodyRGB(bv, darkest)
}

// BlackBodyRGB maps a B-V color index to RGB via per-channel piecewise
// polynomial approximations of the stellar spectrum. Pure function: the
// same bv and darkest always yield the same color.
// Based on https://stackoverflow.com/questions/21977786/star-b-v-color-index-to-apparent-rgb-color/#22630970
func BlackBodyRGB(bv float64, darkest uint8) render.RGB {
	span := float64(255 - int(darkest))
	var t float64
	c := render.RGB{R: darkest, G: darkest, B: darkest}

	// The green polynomial dips below zero near the red end of the index
	// range; a negative float to uint8 conversion is platform dependent
	contrib := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return uint8(span)
		}
		return uint8(span * v)
	}

	// Red
	switch {
	case bv < 0.00:
		t = (bv + 0.40) / (0.00 + 0.40)
		c.R += contrib(0.61 + 0.11*t + 0.1*t*t)
	case bv < 0.40:
		t = (bv - 0.00) / (0.40 - 0.00)
		c.R += contrib(0.83 + 0.17*t)
	default:
		c.R += uint8(span)
	}

	// Green
	switch {
	case bv < 0.00:
		t = (bv + 0.40) / (0.00 + 0.40)
		c.G += contrib(0.70 + 0.07*t + 0.1*t*t)
	case bv < 0.40:
		t = (bv - 0.00) / (0.40 - 0.00)
		c.G += contrib(0.87 + 0.11*t)
	case bv < 1.60:
		t = (bv - 0.40) / (1.60 - 0.40)
		c.G += contrib(0.98 - 0.16*t)
	default:
		t = (bv - 1.60) / (2.00 - 1.60)
		c.G += contrib(0.82 - 0.5*t*t)
	}

	// Blue
	switch {
	case bv < 0.40:
		c.B += uint8(span)
	case bv < 1.50:
		t = (bv - 0.40) / (1.50 - 0.40)
		c.B += contrib(1.00 - 0.47*t + 0.1*t*t)
	case bv < 1.94:
		t = (bv - 1.50) / (1.94 - 1.50)
		c.B += contrib(0.63 - 0.6*t*t)
	}

	return c
}
