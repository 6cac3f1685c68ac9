package rendering

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

// ModernBack renders the astronomical cycle dials of the modern view as four
// circular gauges with progress arcs instead of the original spirals.
type ModernBack struct {
	width  int32
	height int32
	radius float32
	fonts  fontSet
}

func NewModernBack(width, height int32) *ModernBack {
	return &ModernBack{
		width:  width,
		height: height,
		radius: float32(width) / 8,
		fonts:  modernFonts(width),
	}
}

func (r *ModernBack) Draw(snap simulation.Snapshot) {
	rl.ClearBackground(config.ModernBackBG)

	w := float32(r.width)
	h := float32(r.height)

	r.drawCycleDial(rl.Vector2{X: w * 0.3, Y: h * 0.35}, "Metonic Cycle",
		snap.CycleProgress[config.CycleMetonic],
		fmt.Sprintf("Year %d / 19", snap.CycleIndex[config.CycleMetonic]+1))

	r.drawCycleDial(rl.Vector2{X: w * 0.7, Y: h * 0.35}, "Saros Cycle",
		snap.CycleProgress[config.CycleSaros],
		fmt.Sprintf("Month %d / 223", snap.CycleIndex[config.CycleSaros]))

	r.drawGamesDial(rl.Vector2{X: w * 0.3, Y: h * 0.75}, snap)

	r.drawCycleDial(rl.Vector2{X: w * 0.7, Y: h * 0.75}, "Exeligmos Cycle",
		snap.CycleProgress[config.CycleExeligmos],
		fmt.Sprintf("Saros %d / 3", snap.CycleIndex[config.CycleExeligmos]+1))

	r.drawLegend()
	drawModernStatus(snap, r.fonts, config.BackTextColor, true)
}

// drawCycleDial draws a gauge: dial face, a progress arc around the rim, a
// pointer at the current position and a counter caption below the title.
func (r *ModernBack) drawCycleDial(center rl.Vector2, title string, progress float64, caption string) {
	rl.DrawCircleV(center, r.radius, config.DialBGColor)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), r.radius, config.DialOutlineColor)

	// Progress arc. DrawRing measures angles in degrees from three o'clock.
	rl.DrawRing(center, r.radius-8, r.radius-3, deg(dialAngle(0)), deg(dialAngle(progress)), 64, config.ProgressBarColor)

	pointerAngle := dialAngle(progress)
	rl.DrawLineEx(center, radialPoint(center, pointerAngle, float64(r.radius)-12), 3, config.BackPointerColor)
	rl.DrawCircleV(center, 4, config.BackPointerColor)

	titlePos := rl.Vector2{X: center.X, Y: center.Y - r.radius - 25}
	drawTextCentered(title, titlePos, r.fonts.medium, config.BackTextColor)

	captionPos := rl.Vector2{X: center.X, Y: center.Y + r.radius + 15}
	drawTextCentered(caption, captionPos, r.fonts.small, config.BackTextColor)
}

// drawGamesDial shows the four-year games cycle with the current year's
// festival highlighted and the year's progress on the rim.
func (r *ModernBack) drawGamesDial(center rl.Vector2, snap simulation.Snapshot) {
	rl.DrawCircleV(center, r.radius, config.DialBGColor)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), r.radius, config.DialOutlineColor)

	yearIndex := 0
	if snap.HasDate {
		yearIndex = snap.Date.Year() % 4
	}

	for i, games := range config.GamesModern {
		sectorAngle := dialAngle((float64(i) + 0.5) / 4)
		col := config.BackTextColor
		if i == yearIndex {
			col = config.ProgressBarColor
		}
		drawTextCentered(games, radialPoint(center, sectorAngle, float64(r.radius)*0.6), r.fonts.small, col)

		divider := dialAngle(float64(i) / 4)
		rl.DrawLineV(center, radialPoint(center, divider, float64(r.radius)), config.DialOutlineColor)
	}

	yearProgress := snap.CycleProgress[config.CycleYear]
	rl.DrawRing(center, r.radius-8, r.radius-3, deg(dialAngle(0)), deg(dialAngle(yearProgress)), 64, config.ProgressBarColor)

	pointerAngle := dialAngle((float64(yearIndex) + yearProgress) / 4)
	rl.DrawLineEx(center, radialPoint(center, pointerAngle, float64(r.radius)-12), 3, config.BackPointerColor)
	rl.DrawCircleV(center, 4, config.BackPointerColor)

	titlePos := rl.Vector2{X: center.X, Y: center.Y - r.radius - 25}
	drawTextCentered("Games Cycle", titlePos, r.fonts.medium, config.BackTextColor)

	captionPos := rl.Vector2{X: center.X, Y: center.Y + r.radius + 15}
	drawTextCentered(config.GamesModern[yearIndex], captionPos, r.fonts.small, config.BackTextColor)
}

func (r *ModernBack) drawLegend() {
	lines := []string{
		"Back Dials Explained",
		"Metonic: 19 solar years = 235 lunar months",
		"Saros: 223 lunar months between eclipse repeats",
		"Games: the four-year panhellenic festival round",
		"Exeligmos: three Saros cycles, eclipses shift 8 hours each",
	}

	x := int32(20)
	y := r.height - int32(len(lines))*(r.height/55) - 20
	for i, line := range lines {
		size := r.fonts.small
		col := config.BackTextColor
		if i == 0 {
			size = r.fonts.medium
			col = rl.White
		}
		rl.DrawText(line, x, y, size, col)
		y += r.height / 55
	}
}
