// Package simulation holds the time/state model: the calendar clock, the
// per-body orbital angles, the view controller and the input command set.
// One tick happens per rendered frame; nothing here runs concurrently.
package simulation

import (
	"math"

	"github.com/maforn/digital-antikythera-mechanism/config"
)

// Mode selects how orbital angles are derived from time.
type Mode int

const (
	// Direct recomputes every angle from the elapsed-day count each tick.
	// Stateless and idempotent: the same elapsed time always yields the
	// same angles. Used by the ancient variant.
	Direct Mode = iota

	// Incremental accumulates a per-tick angular delta scaled by the frame
	// time. Smooth under a variable frame rate, but order-dependent and
	// subject to float drift over long runs. Used by the modern variant.
	Incremental
)

// Orbits tracks the angular position of every configured body.
type Orbits struct {
	mode   Mode
	bodies []config.Body
	angles map[string]float64
}

// NewOrbits seeds each body at its configured initial angle.
func NewOrbits(mode Mode, bodies []config.Body) *Orbits {
	angles := make(map[string]float64, len(bodies))
	for _, b := range bodies {
		angles[b.Name] = b.InitialAngle
	}
	return &Orbits{mode: mode, bodies: bodies, angles: angles}
}

// Mode reports the derivation strategy in use.
func (o *Orbits) Mode() Mode { return o.mode }

// Angle returns the current orbital angle of a body, in radians. Angles grow
// unbounded; callers normalize when they need [0, 2π).
func (o *Orbits) Angle(name string) float64 {
	return o.angles[name]
}

// Update advances the angles for one tick. Direct mode derives them from the
// total elapsed days; Incremental mode integrates the per-tick step from the
// speed multiplier and the frame-normalized delta.
func (o *Orbits) Update(elapsedDays, multiplier, delta float64) {
	switch o.mode {
	case Direct:
		for _, b := range o.bodies {
			o.angles[b.Name] = (elapsedDays / b.PeriodDays) * 2 * math.Pi
		}
	case Incremental:
		for _, b := range o.bodies {
			step := (360 / b.PeriodDays) * multiplier * delta
			o.angles[b.Name] += step * math.Pi / 180
		}
	}
}

// Snapshot copies the current angles for the renderer.
func (o *Orbits) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(o.angles))
	for name, angle := range o.angles {
		out[name] = angle
	}
	return out
}
