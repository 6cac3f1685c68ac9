// Package core implements the cycle arithmetic behind the mechanism's dials:
// normalized progress through a repeating period, subdivision indexing, and
// the moon phase helpers shared by both simulation variants.
package core

import (
	"fmt"
	"math"
)

// InvalidParameterError reports a cycle or body configured with an impossible
// value. All periods are compile-time constants, so hitting this at startup
// means a programming error, not a runtime condition.
type InvalidParameterError struct {
	Name  string
	Field string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter for %s: %s = %g", e.Name, e.Field, e.Value)
}

// Cycle describes one repeating astronomical period and how its dial is
// subdivided (e.g. the Metonic cycle: 235 synodic months over ~19 years).
type Cycle struct {
	Name         string
	PeriodDays   float64
	Subdivisions int
}

// NewCycle validates the descriptor once at configuration time so the
// per-tick math can assume a positive period.
func NewCycle(name string, periodDays float64, subdivisions int) (Cycle, error) {
	if periodDays <= 0 {
		return Cycle{}, &InvalidParameterError{Name: name, Field: "periodDays", Value: periodDays}
	}
	if subdivisions <= 0 {
		return Cycle{}, &InvalidParameterError{Name: name, Field: "subdivisions", Value: float64(subdivisions)}
	}
	return Cycle{Name: name, PeriodDays: periodDays, Subdivisions: subdivisions}, nil
}

// Progress returns where elapsed falls within one period, in [0,1).
// Uses a floored modulo so negative elapsed values still map into [0,1).
func Progress(elapsedDays, periodDays float64) float64 {
	m := math.Mod(elapsedDays, periodDays)
	if m < 0 {
		m += periodDays
	}
	p := m / periodDays
	if p >= 1 { // guard against float rounding at the wrap point
		p = 0
	}
	return p
}

// Progress returns the cycle-relative position of elapsed, in [0,1).
func (c Cycle) Progress(elapsedDays float64) float64 {
	return Progress(elapsedDays, c.PeriodDays)
}

// Index returns which subdivision the elapsed time falls in,
// in [0, Subdivisions).
func (c Cycle) Index(elapsedDays float64) int {
	return int(math.Floor(c.Progress(elapsedDays)*float64(c.Subdivisions))) % c.Subdivisions
}

// MoonPhase maps elapsed days onto the synodic cycle, offset so that phase 0
// lands on a known new moon. 0 = new, 0.5 = full.
func MoonPhase(elapsedDays, synodicPeriodDays, epochOffsetDays float64) float64 {
	return Progress(elapsedDays-epochOffsetDays, synodicPeriodDays)
}

// PhaseFromAngles derives the moon phase from the geocentric sun and moon
// angles, as the ancient front face does: the phase is the normalized
// elongation, shifted so that opposition reads as new moon and conjunction
// as full.
func PhaseFromAngles(sunAngle, moonAngle float64) float64 {
	diff := math.Mod(moonAngle-sunAngle+math.Pi, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	return diff / (2 * math.Pi)
}

// MoonPhaseName picks one of the eight phase names. Buckets are centered on
// the named phases (the +0.5 rounding), so e.g. phase 0.0625 already reads
// as Waxing Crescent rather than New.
func MoonPhaseName(phase float64, names [8]string) string {
	idx := int(math.Floor(phase*8+0.5)) % 8
	if idx < 0 {
		idx += 8
	}
	return names[idx]
}

// LitFraction returns the lit-disc radius fraction for a phase: a triangular
// wave rising 0→1 while waxing and falling 1→0 while waning. The display is
// a simple fill/shrink animation, not a crescent terminator.
func LitFraction(phase float64) float64 {
	if phase < 0.5 {
		return phase / 0.5
	}
	return 1 - (phase-0.5)/0.5
}
