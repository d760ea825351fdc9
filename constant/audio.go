package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Ambient Drone
const (
	// AmbientBufferDuration determines speaker latency
	AmbientBufferDuration = 100 * time.Millisecond

	// AmbientBaseFreq is the drone fundamental
	AmbientBaseFreq = 55.0

	// AmbientDetune separates the second oscillator for a slow beat
	AmbientDetune = 0.35

	// AmbientLFOFreq modulates drone amplitude
	AmbientLFOFreq = 0.08

	// AmbientVolume is the linear output level of the drone
	AmbientVolume = 0.25
)
