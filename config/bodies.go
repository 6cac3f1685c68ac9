// Package config holds the fixed astronomical tables and runtime settings
// for both simulation variants. The tables are built once at startup and
// passed by reference; nothing here mutates after construction.
package config

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Variant selects which orbital model a process runs. It is fixed for the
// lifetime of the process; only the displayed face switches at runtime.
type Variant int

const (
	Ancient Variant = iota // geocentric, day counter from zero
	Modern                 // heliocentric, wall-clock calendar
)

func (v Variant) String() string {
	if v == Ancient {
		return "ancient"
	}
	return "modern"
}

// Body describes one celestial body: its orbital period and how it is drawn.
// Distance is a unitless orbit radius relative to the largest in the table.
type Body struct {
	Name         string
	PeriodDays   float64
	Distance     float64
	Color        rl.Color
	Size         float32
	InitialAngle float64 // radians at elapsed zero
}

// GeocentricBodies returns the ancient model: everything circles the Earth.
// Periods are the simplified visual values of the mechanism reconstruction,
// not real ephemerides.
func GeocentricBodies() []Body {
	return []Body{
		{Name: "Moon", PeriodDays: 27.3, Distance: 0.2, Color: rl.NewColor(200, 200, 200, 255), Size: 5},
		{Name: "Sun", PeriodDays: 365.25, Distance: 0.8, Color: rl.NewColor(255, 220, 0, 255), Size: 10},
		{Name: "Mercury", PeriodDays: 88.0, Distance: 0.3, Color: rl.NewColor(180, 180, 180, 255), Size: 4},
		{Name: "Venus", PeriodDays: 224.7, Distance: 0.5, Color: rl.NewColor(255, 220, 100, 255), Size: 6},
		{Name: "Mars", PeriodDays: 687.0, Distance: 1.0, Color: rl.NewColor(220, 70, 80, 255), Size: 5},
		{Name: "Jupiter", PeriodDays: 4331.0, Distance: 1.3, Color: rl.NewColor(230, 190, 140, 255), Size: 9},
		{Name: "Saturn", PeriodDays: 10747.0, Distance: 1.6, Color: rl.NewColor(240, 200, 150, 255), Size: 8},
	}
}

// HeliocentricBodies returns the modern model: the eight planets around the
// Sun. Initial angles are staggered 45° apart so the start frame is not a
// syzygy line-up.
func HeliocentricBodies() []Body {
	bodies := []Body{
		{Name: "Mercury", PeriodDays: 88.0, Color: rl.NewColor(180, 180, 180, 255), Size: 5},
		{Name: "Venus", PeriodDays: 224.7, Color: rl.NewColor(255, 220, 100, 255), Size: 7},
		{Name: "Earth", PeriodDays: 365.25, Color: rl.NewColor(0, 150, 255, 255), Size: 8},
		{Name: "Mars", PeriodDays: 687.0, Color: rl.NewColor(220, 70, 80, 255), Size: 6},
		{Name: "Jupiter", PeriodDays: 4331.0, Color: rl.NewColor(230, 190, 140, 255), Size: 12},
		{Name: "Saturn", PeriodDays: 10747.0, Color: rl.NewColor(240, 200, 150, 255), Size: 11},
		{Name: "Uranus", PeriodDays: 30687.0, Color: rl.NewColor(150, 220, 230, 255), Size: 9},
		{Name: "Neptune", PeriodDays: 60190.0, Color: rl.NewColor(80, 120, 200, 255), Size: 9},
	}
	for i := range bodies {
		bodies[i].InitialAngle = float64(i) * 45 * degToRad
	}
	return bodies
}

const degToRad = 0.017453292519943295 // math.Pi / 180
