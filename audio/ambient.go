package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starfly/constant"
)

// drone is an endless two-oscillator pad with a slow amplitude LFO.
// Two slightly detuned sines beat against each other for movement.
type drone struct {
	rate     beep.SampleRate
	phase1   float64
	phase2   float64
	lfoPhase float64
}

// NewDrone creates the ambient streamer at the given sample rate
func NewDrone(rate beep.SampleRate) beep.Streamer {
	return &drone{rate: rate}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	inv := 1.0 / float64(d.rate)
	for i := range samples {
		v := 0.6*math.Sin(2*math.Pi*d.phase1) + 0.4*math.Sin(2*math.Pi*d.phase2)
		amp := 0.75 + 0.25*math.Sin(2*math.Pi*d.lfoPhase)
		v *= amp

		samples[i][0] = v
		samples[i][1] = v

		d.phase1 += constant.AmbientBaseFreq * inv
		d.phase1 -= math.Floor(d.phase1)
		d.phase2 += (constant.AmbientBaseFreq + constant.AmbientDetune) * inv
		d.phase2 -= math.Floor(d.phase2)
		d.lfoPhase += constant.AmbientLFOFreq * inv
		d.lfoPhase -= math.Floor(d.lfoPhase)
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

// newVolume wraps a streamer at a linear volume
// math.Log2(0) is -Inf, so zero volume switches to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Start initializes the speaker and begins the ambient drone. Failure is
// reported but never fatal: the session runs silent without audio.
func Start() error {
	rate := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constant.AmbientBufferDuration)); err != nil {
		return err
	}
	speaker.Play(newVolume(NewDrone(rate), constant.AmbientVolume))
	return nil
}

// Stop silences and releases the speaker
func Stop() {
	speaker.Clear()
	speaker.Close()
}
