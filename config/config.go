package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all session settings. Values are immutable once the
// session starts; changing them requires a restart.
type Config struct {
	Stars         int     // Number of stars seen simultaneously
	FlySpeed      float64 // 1.0 means the far plane distance is flown in 5s
	FrameInterval int     // Interval between frames, ms
	CenterX       float64 // Destination point as a fraction of the screen
	CenterY       float64 // Stored inverted: the color plane rows are bottom-up
	Zoom          float64 // 1.0 ~90° view, >>1 telescope, <<1 fish-eye
	StarSize      float64 // Distance at which a star has radius 1px
	SizeType      int     // 0 all equal, 1 uniform [0,2), 2 gamma-like
	DarkestRGB    int     // Darkest value for generated color channels
	ColorType     int     // 0 random RGB, 1 black-body
	FadePower     float64 // Distance fade exponent, 0 disables fading
	FadeInTime    int     // Fade-in duration of new stars, ms
	Sound         bool    // Ambient drone
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Stars:         4000,
		FlySpeed:      0.005,
		FrameInterval: 40, // ~25 fps
		CenterX:       0.5,
		CenterY:       0.5,
		Zoom:          1.0,
		StarSize:      500,
		SizeType:      2,
		DarkestRGB:    64,
		ColorType:     1,
		FadePower:     1.0,
		FadeInTime:    2000,
		Sound:         false,
	}
}

// Load reads settings from a key=value file. Keys are case-insensitive,
// the last occurrence wins, and unknown or malformed lines are silently
// skipped. An absent file keeps every default: a screensaver must never
// hard-fail over bad configuration.
func Load(path string) *Config {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			cfg.apply(strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}

	cfg.normalize()
	return cfg
}

// apply sets a single setting, ignoring unparseable values
func (c *Config) apply(key, value string) {
	switch strings.ToLower(key) {
	case "stars":
		if v, err := strconv.Atoi(value); err == nil {
			c.Stars = v
		}
	case "frameinterval":
		if v, err := strconv.Atoi(value); err == nil {
			c.FrameInterval = v
		}
	case "sizetype":
		if v, err := strconv.Atoi(value); err == nil {
			c.SizeType = v
		}
	case "colortype":
		if v, err := strconv.Atoi(value); err == nil {
			c.ColorType = v
		}
	case "darkestrgb":
		if v, err := strconv.Atoi(value); err == nil {
			c.DarkestRGB = v
		}
	case "fadeintime":
		if v, err := strconv.Atoi(value); err == nil {
			c.FadeInTime = v
		}
	case "starsize":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.StarSize = v
		}
	case "speed":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.FlySpeed = v
		}
	case "zoom":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.Zoom = v
		}
	case "centerx":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.CenterX = v
		}
	case "centery":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.CenterY = v
		}
	case "fadepower":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.FadePower = v
		}
	case "sound":
		if v, err := strconv.Atoi(value); err == nil {
			c.Sound = v != 0
		}
	}
}

// normalize clamps ranges and derives stored forms after loading
func (c *Config) normalize() {
	if c.Stars < 1 {
		c.Stars = 1
	}
	if c.DarkestRGB < 0 {
		c.DarkestRGB = 0
	}
	if c.DarkestRGB > 255 {
		c.DarkestRGB = 255
	}
	if c.FrameInterval < 1 {
		c.FrameInterval = 1
	}
	// The framebuffer stores rows bottom-up, so the configured center is
	// inverted once here and the star field still looks the same
	c.CenterY = 1.0 - c.CenterY
}
