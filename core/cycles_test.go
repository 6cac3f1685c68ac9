package core

import (
	"errors"
	"math"
	"testing"
)

const synodicMonth = 29.530589

var phaseNames = [8]string{
	"New", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

func TestProgressRange(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		period  float64
		want    float64
		epsilon float64
	}{
		{"zero", 0, 365.25, 0, 1e-12},
		{"quarter period", 91.3125, 365.25, 0.25, 1e-12},
		{"exactly one period", 365.25, 365.25, 0, 1e-12},
		{"many periods plus half", 365.25*7 + 182.625, 365.25, 0.5, 1e-9},
		{"negative lands in range", -91.3125, 365.25, 0.75, 1e-12},
		{"negative whole period", -365.25, 365.25, 0, 1e-12},
		{"tiny period", 0.75, 0.5, 0.5, 1e-12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(tc.elapsed, tc.period)
			if got < 0 || got >= 1 {
				t.Fatalf("Progress(%g, %g) = %g, outside [0,1)", tc.elapsed, tc.period, got)
			}
			if math.Abs(got-tc.want) > tc.epsilon {
				t.Errorf("Progress(%g, %g) = %g, want %g", tc.elapsed, tc.period, got, tc.want)
			}
		})
	}
}

func TestProgressPeriodicity(t *testing.T) {
	period := synodicMonth
	for _, elapsed := range []float64{0, 1, 17.3, 100, 6939.688, -50} {
		a := Progress(elapsed, period)
		b := Progress(elapsed+period, period)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("Progress(%g) = %g but Progress(+period) = %g", elapsed, a, b)
		}
	}
}

func TestNewCycleValidation(t *testing.T) {
	tests := []struct {
		name         string
		period       float64
		subdivisions int
		wantErr      bool
	}{
		{"metonic", 235 * synodicMonth, 235, false},
		{"zero period", 0, 12, true},
		{"negative period", -5, 12, true},
		{"zero subdivisions", 100, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCycle(tc.name, tc.period, tc.subdivisions)
			if tc.wantErr {
				var invalid *InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Fatalf("NewCycle(%g, %d) error = %v, want InvalidParameterError", tc.period, tc.subdivisions, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCycle(%g, %d) unexpected error: %v", tc.period, tc.subdivisions, err)
			}
		})
	}
}

func TestCycleIndex(t *testing.T) {
	metonic, err := NewCycle("Metonic", 235*synodicMonth, 235)
	if err != nil {
		t.Fatal(err)
	}

	if got := metonic.Index(0); got != 0 {
		t.Errorf("Index(0) = %d, want 0", got)
	}
	// Middle of the third month.
	if got := metonic.Index(2.5 * synodicMonth); got != 2 {
		t.Errorf("Index(2.5 months) = %d, want 2", got)
	}
	// Last month of the cycle.
	if got := metonic.Index(234.5 * synodicMonth); got != 234 {
		t.Errorf("Index(234.5 months) = %d, want 234", got)
	}
}

// One full Metonic cycle of 235 synodic months wraps back to the start.
func TestMetonicFullCycle(t *testing.T) {
	metonic, err := NewCycle("Metonic", 235*synodicMonth, 235)
	if err != nil {
		t.Fatal(err)
	}

	elapsed := 0.0
	for i := 0; i < 235; i++ {
		elapsed += synodicMonth
	}

	progress := metonic.Progress(elapsed)
	// The wrap may land just below 1 or just above 0 depending on rounding.
	if progress > 1e-9 && progress < 1-1e-9 {
		t.Errorf("progress after full cycle = %g, want ~0", progress)
	}
	if idx := metonic.Index(elapsed); idx != 0 && idx != 234 {
		t.Errorf("index after full cycle = %d, want wrap to 0", idx)
	}
	// Nudged past the boundary it must be cleanly back at the start.
	if idx := metonic.Index(elapsed + 1e-6); idx != 0 {
		t.Errorf("index just past full cycle = %d, want 0", idx)
	}
}

func TestMoonPhaseNameBuckets(t *testing.T) {
	tests := []struct {
		phase float64
		want  string
	}{
		{0.0, "New"},
		{0.0624, "New"},             // just below the bucket boundary
		{0.0626, "Waxing Crescent"}, // just above it
		{0.125, "Waxing Crescent"},
		{0.25, "First Quarter"},
		{0.5, "Full"},
		{0.75, "Last Quarter"},
		{0.93, "Waning Crescent"},
		{0.94, "New"}, // wraps back around
	}

	for _, tc := range tests {
		if got := MoonPhaseName(tc.phase, phaseNames); got != tc.want {
			t.Errorf("MoonPhaseName(%g) = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

func TestMoonPhaseEpochOffset(t *testing.T) {
	// At exactly the epoch offset the phase is a new moon.
	if got := MoonPhase(100, 29.53, 100); got != 0 {
		t.Errorf("MoonPhase at epoch = %g, want 0", got)
	}
	// Half a synodic month later it is full.
	got := MoonPhase(100+29.53/2, 29.53, 100)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("MoonPhase half month after epoch = %g, want 0.5", got)
	}
}

func TestPhaseFromAngles(t *testing.T) {
	tests := []struct {
		name      string
		sun, moon float64
		want      float64
	}{
		{"opposite angles read new", 1.2, 1.2 + math.Pi, 0},
		{"equal angles read full", 0.7, 0.7, 0.5},
		{"quarter elongation", 0, math.Pi/2 + math.Pi, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PhaseFromAngles(tc.sun, tc.moon)
			if math.Abs(got-tc.want) > 1e-9 && math.Abs(got-tc.want-1) > 1e-9 {
				t.Errorf("PhaseFromAngles(%g, %g) = %g, want %g", tc.sun, tc.moon, got, tc.want)
			}
		})
	}
}

func TestLitFraction(t *testing.T) {
	tests := []struct {
		phase float64
		want  float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{0.999999, 0},
	}

	for _, tc := range tests {
		got := LitFraction(tc.phase)
		if math.Abs(got-tc.want) > 1e-5 {
			t.Errorf("LitFraction(%g) = %g, want %g", tc.phase, got, tc.want)
		}
	}

	// Symmetric around the full moon.
	for _, d := range []float64{0.05, 0.1, 0.2, 0.4} {
		a, b := LitFraction(0.5-d), LitFraction(0.5+d)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("LitFraction not symmetric at ±%g: %g vs %g", d, a, b)
		}
	}
}
