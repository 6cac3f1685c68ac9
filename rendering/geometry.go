// Package rendering draws the four faces of the mechanism with raylib. All
// renderers read only the per-tick simulation snapshot; none of them mutate
// simulation state.
package rendering

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// radialPoint returns the point at the given angle (radians) and distance
// from a center. Screen coordinates, so positive angles run clockwise.
func radialPoint(center rl.Vector2, angle, distance float64) rl.Vector2 {
	return rl.Vector2{
		X: center.X + float32(math.Cos(angle)*distance),
		Y: center.Y + float32(math.Sin(angle)*distance),
	}
}

// dialAngle converts a dial position in [0,1) to the screen angle in radians,
// with zero at twelve o'clock.
func dialAngle(progress float64) float64 {
	return progress*2*math.Pi - math.Pi/2
}

// spiralRadius interpolates a spiral's radius from its outer rim inwards.
// t is the normalized position along the whole spiral; shrink is how much of
// the outer radius the spiral loses from start to end.
func spiralRadius(outer, t, shrink float64) float64 {
	return outer - t*outer*shrink
}

func deg(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

// drawTextCentered places text with its midpoint at pos using the default
// font.
func drawTextCentered(text string, pos rl.Vector2, fontSize int32, col rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(pos.X)-w/2, int32(pos.Y)-fontSize/2, fontSize, col)
}
