package config

import (
	"time"

	"github.com/maforn/digital-antikythera-mechanism/core"
)

// Cycle periods, in days. The two synodic constants differ on purpose: the
// back-face dials use the mechanism's full-precision month, the modern front
// moon display uses the rounded value.
const (
	SynodicMonthDays  = 29.530589
	SynodicMonthShort = 29.53
	SolarYearDays     = 365.25
	SarosDays         = 6585.3211
	EgyptianYearDays  = 354
)

// MoonEpoch is a known new moon used to anchor the modern phase display.
var MoonEpoch = time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC)

// DialEpoch anchors the modern back-face cycle dials.
var DialEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Dial cycle names, used as snapshot keys by the renderers.
const (
	CycleMetonic   = "Metonic"
	CycleSaros     = "Saros"
	CycleGames     = "Games"
	CycleExeligmos = "Exeligmos"
	CycleEgyptian  = "Egyptian"
	CycleYear      = "Year"
)

// AncientCycles builds the dial descriptors for the geocentric variant.
// Elapsed time is measured from day zero.
func AncientCycles() ([]core.Cycle, error) {
	return buildCycles([]cycleSpec{
		{CycleMetonic, 235 * SynodicMonthDays, 235},
		{CycleSaros, 223 * SynodicMonthDays, 223},
		{CycleGames, 4 * SolarYearDays, 4},
		{CycleExeligmos, 3 * SarosDays, 3},
		{CycleEgyptian, EgyptianYearDays, EgyptianYearDays},
	})
}

// ModernCycles builds the dial descriptors for the heliocentric variant.
// Elapsed time for these is measured from DialEpoch.
func ModernCycles() ([]core.Cycle, error) {
	return buildCycles([]cycleSpec{
		{CycleMetonic, 19 * SolarYearDays, 19},
		{CycleSaros, 223 * SynodicMonthShort, 223},
		{CycleExeligmos, 3 * 223 * SynodicMonthShort, 3},
		{CycleYear, SolarYearDays, 365},
	})
}

type cycleSpec struct {
	name         string
	periodDays   float64
	subdivisions int
}

func buildCycles(specs []cycleSpec) ([]core.Cycle, error) {
	cycles := make([]core.Cycle, 0, len(specs))
	for _, s := range specs {
		c, err := core.NewCycle(s.name, s.periodDays, s.subdivisions)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, nil
}
