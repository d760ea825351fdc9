package render

// RGB stores explicit 8-bit color channels, decoupled from the terminal backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Scale multiplies each channel by k with truncation, k is expected in [0,1]
func (c RGB) Scale(k float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}
