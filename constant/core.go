package constant

import "time"

// Simulation Volume
const (
	// FarPlane is the depth at which new stars are generated
	// Stars fly from FarPlane towards the viewer at z=0
	FarPlane = 5000.0

	// GiantFactor pushes oversized stars proportionally further away
	// so they do not pop into view as large discs
	GiantFactor = 5.0
)

// Projection
const (
	// MaxProjectRetries caps the regenerate-and-retry loop per star per frame
	// Expected retries are ~3 for centered configurations; the cap guards
	// against pathological center offsets
	MaxProjectRetries = 16

	// MinCircleSize is the projected radius above which a star is drawn
	// as a filled circle instead of a single pixel
	MinCircleSize = 0.8
)

// Session Timing
const (
	// SettlingTime suppresses exit triggers right after start
	SettlingTime = 500 * time.Millisecond

	// MouseTolerance in cells, smaller mouse moves do not end the session
	MouseTolerance = 3

	// TeardownTimeout bounds the wait for an in-flight frame during Stop
	TeardownTimeout = time.Second
)
