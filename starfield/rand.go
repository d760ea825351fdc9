package starfield

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source supplies the random stream used for star placement, size and color.
// Tests inject deterministic sources; the session uses a time-seeded PCG.
type Source interface {
	// Float64 returns a value uniformly distributed in [0, 1)
	Float64() float64
}

// NewSessionSource seeds a PCG stream from the high-resolution clock,
// so each session shows a different star field
func NewSessionSource() Source {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now^0x9E3779B97F4A7C15))
}

// GammaLikeRadius draws a size multiplier vaguely resembling a Gamma
// distribution for k=3.0-5.0: mode at 1.0, long right tail, range [0, ~27.15].
// Rare large values stand in for giant stars without a true Gamma sampler.
func GammaLikeRadius(src Source) float64 {
	const (
		pwr   = 0.3
		coeff = 1.2
		steps = 32768 // Quantized draw keeps the r/(1-r) tail below ~27.15/1.2
	)
	r := math.Floor(src.Float64()*steps) / steps
	return coeff * math.Pow(r/(1-r), pwr)
}
