package render

// DepthMax is the farthest representable depth value
const DepthMax = 0xFFFF

// Framebuffer pairs a BGRX color plane with a 16-bit depth plane
// for nearest-wins compositing.
//
// The color plane uses 4 bytes per pixel (B, G, R, pad) and stores rows
// bottom-up: row 0 is the bottom of the image. Presenters iterate rows in
// reverse; CenterY in the configuration is pre-inverted to compensate.
// Smaller depth values are nearer.
type Framebuffer struct {
	pix    []byte
	depth  []uint16
	width  int
	height int
}

// NewFramebuffer allocates cleared color and depth planes
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		pix:    make([]byte, width*height*4),
		depth:  make([]uint16, width*height),
		width:  width,
		height: height,
	}
	fb.Clear()
	return fb
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Pix exposes the raw BGRX plane for presentation
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}

// Clear resets color to black and depth to the maximum distance
func (fb *Framebuffer) Clear() {
	if len(fb.depth) == 0 {
		return
	}
	for i := range fb.pix {
		fb.pix[i] = 0
	}
	// Exponential copy for the depth plane
	fb.depth[0] = DepthMax
	for filled := 1; filled < len(fb.depth); filled *= 2 {
		copy(fb.depth[filled:], fb.depth[:filled])
	}
}

// Set writes a depth-tested pixel without bounds checking
// The write proceeds when z is nearer than or equal to the stored depth,
// so the last writer wins on exact ties
func (fb *Framebuffer) Set(x, y int, c RGB, z uint16) {
	i := x + y*fb.width
	if fb.depth[i] < z {
		return
	}
	o := i << 2
	fb.pix[o] = c.B
	fb.pix[o+1] = c.G
	fb.pix[o+2] = c.R
	fb.depth[i] = z
}

// SetChecked bounds-checks then delegates to Set
func (fb *Framebuffer) SetChecked(x, y int, c RGB, z uint16) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.Set(x, y, c, z)
}

// At returns the stored color at x,y, for tests and presenters
func (fb *Framebuffer) At(x, y int) RGB {
	o := (x + y*fb.width) << 2
	return RGB{R: fb.pix[o+2], G: fb.pix[o+1], B: fb.pix[o]}
}

// DepthAt returns the stored depth at x,y
func (fb *Framebuffer) DepthAt(x, y int) uint16 {
	return fb.depth[x+y*fb.width]
}
