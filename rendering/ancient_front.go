package rendering

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/core"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

// AncientFront renders the geocentric face: the Earth-centered bodies, the
// zodiac and Egyptian calendar dials, and the moon phase display.
type AncientFront struct {
	width  int32
	height int32
	center rl.Vector2
	bodies []config.Body
	fonts  fontSet
}

func NewAncientFront(width, height int32) *AncientFront {
	return &AncientFront{
		width:  width,
		height: height,
		center: rl.Vector2{X: float32(width) / 2, Y: float32(height) / 2},
		bodies: config.GeocentricBodies(),
		fonts:  ancientFonts(width),
	}
}

// Draw renders the whole face from a snapshot.
func (r *AncientFront) Draw(snap simulation.Snapshot) {
	rl.ClearBackground(config.AncientBackground)
	r.drawFrontDials(snap)
	r.drawCelestialBodies(snap)
	r.drawMoonPhase(snap)
	r.drawUI(snap)
}

func (r *AncientFront) drawCelestialBodies(snap simulation.Snapshot) {
	// Central Earth.
	rl.DrawCircleV(r.center, 15, config.EarthColor)

	// Normalize orbit radii so the outermost body stays on screen.
	maxDist := 0.0
	for _, b := range r.bodies {
		if b.Distance > maxDist {
			maxDist = b.Distance
		}
	}
	maxScreenDist := float64(r.width)/2 - 80

	for _, b := range r.bodies {
		orbitRadius := maxScreenDist * (b.Distance / maxDist)
		angle := snap.BodyAngles[b.Name]
		pos := radialPoint(r.center, angle, orbitRadius)

		rl.DrawCircleLines(int32(r.center.X), int32(r.center.Y), float32(orbitRadius), rl.Fade(b.Color, 0.2))
		rl.DrawLineV(r.center, pos, rl.Fade(b.Color, 0.3))
		rl.DrawCircleV(pos, b.Size, b.Color)

		labelPos := radialPoint(r.center, angle, orbitRadius+float64(b.Size)+10)
		drawTextCentered(b.Name, labelPos, r.fonts.planet, b.Color)
	}
}

func (r *AncientFront) drawFrontDials(snap simulation.Snapshot) {
	zodiacRadius := float64(r.width) / 2.5
	monthRadius := zodiacRadius - float64(r.width)/15

	// Zodiac dial: twelve 30-degree sectors with Greek inscriptions.
	rl.DrawCircleLines(int32(r.center.X), int32(r.center.Y), float32(zodiacRadius), config.DialColor)
	for i := 0; i < 12; i++ {
		tick := dialAngle(float64(i) / 12)
		rl.DrawLineEx(radialPoint(r.center, tick, monthRadius), radialPoint(r.center, tick, zodiacRadius), 2, config.DialColor)

		labelAngle := dialAngle(float64(i)/12) - 15*math.Pi/180
		drawTextCentered(config.ZodiacGreek[i], radialPoint(r.center, labelAngle, zodiacRadius-20), r.fonts.zodiac, config.TextColor)
	}

	// Egyptian calendar dial: 354 day ticks with month labels.
	rl.DrawCircleLines(int32(r.center.X), int32(r.center.Y), float32(monthRadius), config.DialColor)
	for i := 0; i < config.EgyptianYearDays; i++ {
		angle := float64(i) / config.EgyptianYearDays * 2 * math.Pi
		tickLen := 2.0
		if i%5 == 0 {
			tickLen = 5
		}
		rl.DrawLineV(radialPoint(r.center, angle, monthRadius-tickLen), radialPoint(r.center, angle, monthRadius), config.TextColor)
	}
	for i, month := range config.EgyptianMonths {
		labelAngle := dialAngle(float64(i)/12) - 15*math.Pi/180
		drawTextCentered(month, radialPoint(r.center, labelAngle, monthRadius-25), r.fonts.small, config.TextColor)
	}

	// Date pointer across the 354-day ring.
	dateAngle := dialAngle(snap.CycleProgress[config.CycleEgyptian])
	start := radialPoint(r.center, dateAngle, monthRadius-40)
	end := radialPoint(r.center, dateAngle, zodiacRadius)
	rl.DrawLineEx(start, end, 2, config.PointerColor)
	rl.DrawCircleV(end, 4, config.PointerColor)
}

func (r *AncientFront) drawMoonPhase(snap simulation.Snapshot) {
	moonRadius := float64(r.width) / 15
	center := rl.Vector2{X: float32(r.width) - float32(moonRadius) - 30, Y: float32(moonRadius) + 30}

	rl.DrawCircleV(center, float32(moonRadius+10), rl.NewColor(20, 20, 30, 255))
	rl.DrawCircleV(center, float32(moonRadius), config.MoonDark)

	// Simple fill/shrink animation: the lit disc grows while waxing and
	// shrinks while waning.
	if lit := core.LitFraction(snap.MoonPhase) * moonRadius; lit > 0 {
		rl.DrawCircleV(center, float32(lit), config.MoonLit)
	}
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(moonRadius), rl.Gray)

	name := core.MoonPhaseName(snap.MoonPhase, config.MoonPhaseNames)
	label := rl.Vector2{X: center.X, Y: center.Y + float32(moonRadius) + 20}
	drawTextCentered(fmt.Sprintf("Moon: %s", name), label, r.fonts.medium, config.TextColor)
}

func (r *AncientFront) drawUI(snap simulation.Snapshot) {
	drawAncientStatus(snap, r.fonts, true)
}
