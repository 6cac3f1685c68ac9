package rendering

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const geomEpsilon = 1e-4

func TestRadialPoint(t *testing.T) {
	center := rl.Vector2{X: 100, Y: 100}

	tests := []struct {
		name     string
		angle    float64
		distance float64
		wantX    float32
		wantY    float32
	}{
		{"zero angle points right", 0, 50, 150, 100},
		{"quarter turn points down", math.Pi / 2, 50, 100, 150},
		{"half turn points left", math.Pi, 50, 50, 100},
		{"zero distance stays put", math.Pi / 3, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := radialPoint(center, tt.angle, tt.distance)
			if math.Abs(float64(got.X-tt.wantX)) > geomEpsilon || math.Abs(float64(got.Y-tt.wantY)) > geomEpsilon {
				t.Errorf("radialPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.angle, tt.distance, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDialAngle(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"zero is twelve o'clock", 0, -math.Pi / 2},
		{"quarter is three o'clock", 0.25, 0},
		{"half is six o'clock", 0.5, math.Pi / 2},
		{"three quarters is nine o'clock", 0.75, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dialAngle(tt.progress); math.Abs(got-tt.want) > geomEpsilon {
				t.Errorf("dialAngle(%v) = %v, want %v", tt.progress, got, tt.want)
			}
		})
	}
}

func TestSpiralRadius(t *testing.T) {
	if got := spiralRadius(200, 0, 0.95); got != 200 {
		t.Errorf("spiral start = %v, want outer radius 200", got)
	}
	if got := spiralRadius(200, 1, 0.95); math.Abs(got-10) > geomEpsilon {
		t.Errorf("spiral end = %v, want 10", got)
	}

	// Radius shrinks monotonically along the spiral.
	prev := spiralRadius(200, 0, 0.9)
	for i := 1; i <= 10; i++ {
		r := spiralRadius(200, float64(i)/10, 0.9)
		if r >= prev {
			t.Fatalf("spiral radius not shrinking at t=%v: %v >= %v", float64(i)/10, r, prev)
		}
		prev = r
	}
}

func TestDeg(t *testing.T) {
	if got := deg(math.Pi); math.Abs(float64(got)-180) > geomEpsilon {
		t.Errorf("deg(pi) = %v, want 180", got)
	}
	if got := deg(-math.Pi / 2); math.Abs(float64(got)+90) > geomEpsilon {
		t.Errorf("deg(-pi/2) = %v, want -90", got)
	}

	// Ring arcs start at the dial zero, twelve o'clock in degrees.
	if got := deg(dialAngle(0)); math.Abs(float64(got)+90) > geomEpsilon {
		t.Errorf("deg(dialAngle(0)) = %v, want -90", got)
	}
	if got := deg(dialAngle(0.5)); math.Abs(float64(got)-90) > geomEpsilon {
		t.Errorf("deg(dialAngle(0.5)) = %v, want 90", got)
	}
}
