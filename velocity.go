package flick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VelocityEstimator turns a jittery sequence of timestamped positions into
// a single throw velocity. It keeps a short window of recent samples and
// weights per-pair velocities by recency, so the terminal flick of a drag
// dominates the estimate instead of being averaged away.
type VelocityEstimator struct {
	samples    []velocitySample
	maxSamples int
	maxAgeMs   float64
	decayMs    float64
}

type velocitySample struct {
	pos mgl64.Vec3
	tMs float64
}

// NewVelocityEstimator creates an estimator keeping at most maxSamples
// samples, discarding samples older than maxAgeMs relative to the newest,
// and decaying pair weights with the given time constant in milliseconds.
func NewVelocityEstimator(maxSamples int, maxAgeMs, decayMs float64) *VelocityEstimator {
	if maxSamples < 2 {
		maxSamples = 2
	}
	return &VelocityEstimator{
		samples:    make([]velocitySample, 0, maxSamples),
		maxSamples: maxSamples,
		maxAgeMs:   maxAgeMs,
		decayMs:    decayMs,
	}
}

// AddSample appends a position observed at tMs and prunes the window by
// count and by age.
func (e *VelocityEstimator) AddSample(pos mgl64.Vec3, tMs float64) {
	e.samples = append(e.samples, velocitySample{pos: pos, tMs: tMs})

	if len(e.samples) > e.maxSamples {
		copy(e.samples, e.samples[len(e.samples)-e.maxSamples:])
		e.samples = e.samples[:e.maxSamples]
	}

	// Drop samples that have aged out of the window.
	cutoff := tMs - e.maxAgeMs
	first := 0
	for first < len(e.samples)-1 && e.samples[first].tMs < cutoff {
		first++
	}
	if first > 0 {
		copy(e.samples, e.samples[first:])
		e.samples = e.samples[:len(e.samples)-first]
	}
}

// HasEnoughSamples reports whether Velocity can return a meaningful
// estimate (at least two samples in the window).
func (e *VelocityEstimator) HasEnoughSamples() bool {
	return len(e.samples) >= 2
}

// Velocity returns the estimated instantaneous velocity in units/second:
// the mean of per-adjacent-pair velocities, each weighted by
// exp(-age/decay) where age is measured from the newest sample. Pairs with
// a zero-duration interval are skipped. With fewer than two samples the
// zero vector is returned.
func (e *VelocityEstimator) Velocity() mgl64.Vec3 {
	if len(e.samples) < 2 {
		return mgl64.Vec3{}
	}

	now := e.samples[len(e.samples)-1].tMs
	var sum mgl64.Vec3
	var totalWeight float64

	for i := 0; i < len(e.samples)-1; i++ {
		a, b := e.samples[i], e.samples[i+1]
		dtMs := b.tMs - a.tMs
		if dtMs <= 0 {
			continue
		}
		v := b.pos.Sub(a.pos).Mul(1000.0 / dtMs)
		w := math.Exp(-(now - b.tMs) / e.decayMs)
		sum = sum.Add(v.Mul(w))
		totalWeight += w
	}

	if totalWeight == 0 {
		return mgl64.Vec3{}
	}
	return sum.Mul(1.0 / totalWeight)
}

// Speed returns the magnitude of the current velocity estimate.
func (e *VelocityEstimator) Speed() float64 {
	return e.Velocity().Len()
}

// Reset discards all samples. Called at the start of each drag so a throw
// never inherits motion from a previous gesture.
func (e *VelocityEstimator) Reset() {
	e.samples = e.samples[:0]
}
