package simulation

import (
	"time"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/core"
)

const hoursPerDay = 24

// Clock is the calendar heart of the simulation: a virtual day counter
// advanced under a speed multiplier, with pause/resume. It owns the orbital
// state and the dial cycles and recomputes both on every tick.
//
// The clock is driven by exactly one caller per frame; it is not safe for
// concurrent use.
type Clock struct {
	elapsedDays float64
	multiplier  float64
	paused      bool

	// epoch maps elapsed days onto a calendar date for the modern variant.
	// The zero time means "day counter only" (ancient variant).
	epoch time.Time

	// dialOffsetDays shifts elapsed time onto the back-face dial reference
	// (days between DialEpoch and epoch). Zero for the ancient variant.
	dialOffsetDays float64

	// moonOffsetDays anchors the synodic phase on a known new moon.
	moonOffsetDays float64

	orbits *Orbits
	cycles []core.Cycle
}

// NewAncientClock starts a geocentric clock at day zero with every body at
// angle zero.
func NewAncientClock() (*Clock, error) {
	cycles, err := config.AncientCycles()
	if err != nil {
		return nil, err
	}
	return &Clock{
		multiplier: 1.0,
		orbits:     NewOrbits(Direct, config.GeocentricBodies()),
		cycles:     cycles,
	}, nil
}

// NewModernClock starts a heliocentric clock at the given wall-clock moment,
// usually time.Now().
func NewModernClock(now time.Time) (*Clock, error) {
	cycles, err := config.ModernCycles()
	if err != nil {
		return nil, err
	}
	c := &Clock{
		multiplier:     1.0,
		epoch:          now,
		dialOffsetDays: -daysBetween(config.DialEpoch, now),
		moonOffsetDays: -daysBetween(config.MoonEpoch, now),
		orbits:         NewOrbits(Incremental, config.HeliocentricBodies()),
		cycles:         cycles,
	}
	return c, nil
}

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / hoursPerDay
}

// Tick advances the clock by one simulation step. delta is the tick length
// in frame-normalized units: a steady 60 updates per second yields delta 1.
// No-op while paused. Calling Tick is the only way elapsed time changes.
func (c *Clock) Tick(delta float64) {
	if c.paused {
		return
	}
	c.elapsedDays += c.multiplier * delta
	c.orbits.Update(c.elapsedDays, c.multiplier, delta)
}

// SetSpeed scales the time multiplier. The range is deliberately unbounded;
// input events apply ×1.5 or ÷1.5 per key press.
func (c *Clock) SetSpeed(factor float64) {
	c.multiplier *= factor
}

// TogglePause flips between Running and Paused without touching elapsed
// time or the multiplier.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether the clock is currently paused.
func (c *Clock) Paused() bool { return c.paused }

// Multiplier returns the current time multiplier.
func (c *Clock) Multiplier() float64 { return c.multiplier }

// ElapsedDays returns the virtual days since the clock's epoch.
func (c *Clock) ElapsedDays() float64 { return c.elapsedDays }

// Snapshot is the read-only view handed to the renderers once per frame.
type Snapshot struct {
	ElapsedDays float64
	Date        time.Time // zero for the ancient variant
	HasDate     bool
	Multiplier  float64
	Paused      bool

	BodyAngles    map[string]float64
	CycleProgress map[string]float64
	CycleIndex    map[string]int

	MoonPhase float64
}

// Snapshot captures the current state. The dial cycles are evaluated against
// the dial reference epoch; the moon phase derivation follows the orbital
// mode (angle elongation for Direct, synodic days for Incremental).
func (c *Clock) Snapshot() Snapshot {
	snap := Snapshot{
		ElapsedDays:   c.elapsedDays,
		Multiplier:    c.multiplier,
		Paused:        c.paused,
		BodyAngles:    c.orbits.Snapshot(),
		CycleProgress: make(map[string]float64, len(c.cycles)),
		CycleIndex:    make(map[string]int, len(c.cycles)),
	}

	dialDays := c.elapsedDays - c.dialOffsetDays
	for _, cyc := range c.cycles {
		snap.CycleProgress[cyc.Name] = cyc.Progress(dialDays)
		snap.CycleIndex[cyc.Name] = cyc.Index(dialDays)
	}

	if !c.epoch.IsZero() {
		snap.HasDate = true
		// Whole days go through AddDate so very fast clocks don't overflow
		// a time.Duration.
		whole := int(c.elapsedDays)
		frac := c.elapsedDays - float64(whole)
		snap.Date = c.epoch.AddDate(0, 0, whole).
			Add(time.Duration(frac * float64(hoursPerDay) * float64(time.Hour)))
	}

	switch c.orbits.Mode() {
	case Direct:
		snap.MoonPhase = core.PhaseFromAngles(c.orbits.Angle("Sun"), c.orbits.Angle("Moon"))
	case Incremental:
		snap.MoonPhase = core.MoonPhase(c.elapsedDays, config.SynodicMonthShort, c.moonOffsetDays)
	}

	return snap
}
