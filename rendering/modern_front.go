package rendering

import (
	"fmt"
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/core"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

// ModernFront renders the heliocentric face: the planets around a glowing
// sun inside the calendar, zodiac and parapegma rings.
type ModernFront struct {
	width  int32
	height int32
	center rl.Vector2
	bodies []config.Body
	fonts  fontSet
}

func NewModernFront(width, height int32) *ModernFront {
	return &ModernFront{
		width:  width,
		height: height,
		center: rl.Vector2{X: float32(width) / 2, Y: float32(height) / 2},
		bodies: config.HeliocentricBodies(),
		fonts:  modernFonts(width),
	}
}

// Draw renders the whole face from a snapshot.
func (r *ModernFront) Draw(snap simulation.Snapshot) {
	rl.DrawRectangleGradientV(0, 0, r.width, r.height, config.ModernBGTop, config.ModernBGBottom)
	r.drawCelestialBodies(snap)
	r.drawCalendarRings(snap)
	r.drawMoonPhase(snap)
	r.drawParapegmaLegend()
	drawModernStatus(snap, r.fonts, rl.NewColor(200, 200, 200, 255), true)
}

// drawGlow layers translucent circles behind a body for a soft glow.
func drawGlow(pos rl.Vector2, radius float32, col rl.Color) {
	rl.DrawCircleV(pos, radius, col)
	if radius > 2 {
		rl.DrawCircleV(pos, radius*2, rl.Fade(col, 0.12))
		rl.DrawCircleV(pos, radius*1.5, rl.Fade(col, 0.2))
	}
}

func (r *ModernFront) drawCelestialBodies(snap simulation.Snapshot) {
	sunRadius := float32(r.width) / 48
	drawGlow(r.center, sunRadius, config.SunColor)

	orbitSpacing := float64(r.width) / 26.6
	baseOrbit := float64(r.width) / 17
	scale := float32(r.width) / 1200

	for i, b := range r.bodies {
		orbitRadius := baseOrbit + float64(i)*orbitSpacing
		angle := snap.BodyAngles[b.Name]
		pos := radialPoint(r.center, angle, orbitRadius)
		size := b.Size * scale

		rl.DrawCircleLines(int32(r.center.X), int32(r.center.Y), float32(orbitRadius), config.OrbitRingColor)
		drawGlow(pos, size, b.Color)

		labelPos := radialPoint(r.center, angle, orbitRadius+float64(size)+10)
		drawTextCentered(b.Name, labelPos, r.fonts.planet, b.Color)

		if b.Name == "Earth" {
			r.drawOrbitingMoon(snap, pos, size, angle)
		}
	}
}

// drawOrbitingMoon places the small moon around Earth so that its position
// matches the displayed synodic phase.
func (r *ModernFront) drawOrbitingMoon(snap simulation.Snapshot, earth rl.Vector2, earthRadius float32, earthAngle float64) {
	moonSize := earthRadius / 2.5
	if moonSize < 1 {
		moonSize = 1
	}
	orbit := float64(earthRadius) + math.Max(5, float64(earthRadius)*1.5)

	moonAngle := earthAngle + snap.MoonPhase*2*math.Pi + math.Pi
	pos := radialPoint(earth, moonAngle, orbit)

	rl.DrawCircleV(pos, moonSize, rl.NewColor(200, 200, 200, 255))
	rl.DrawLineV(earth, pos, rl.NewColor(70, 70, 70, 255))
}

func (r *ModernFront) drawCalendarRings(snap simulation.Snapshot) {
	parapegmaRadius := float64(r.width)/2 - float64(r.width)/30
	zodiacRadius := parapegmaRadius - float64(r.width)/20
	dayRingRadius := zodiacRadius - float64(r.width)/25
	monthRadius := dayRingRadius - float64(r.width)/25

	// Zodiac ring.
	for i, sign := range config.ZodiacModern {
		labelAngle := dialAngle(float64(i)/12) + 15*math.Pi/180
		drawTextCentered(sign, radialPoint(r.center, labelAngle, zodiacRadius-float64(r.width)/60), r.fonts.zodiac, rl.NewColor(180, 180, 220, 255))

		tick := dialAngle(float64(i) / 12)
		rl.DrawLineEx(radialPoint(r.center, tick, zodiacRadius-10), radialPoint(r.center, tick, zodiacRadius), 2, rl.NewColor(100, 100, 120, 255))
	}

	// Day ring: a tick per day, numbered every tenth day.
	for day := 1; day <= 365; day++ {
		angle := dialAngle(float64(day) / config.SolarYearDays)
		tickLen := 2.0
		if day%5 == 0 {
			tickLen = 5
		}
		rl.DrawLineV(radialPoint(r.center, angle, dayRingRadius-tickLen), radialPoint(r.center, angle, dayRingRadius), rl.NewColor(120, 120, 120, 255))

		if day%10 == 0 {
			drawTextCentered(strconv.Itoa(day), radialPoint(r.center, angle, dayRingRadius-15), r.fonts.day, rl.NewColor(150, 150, 150, 255))
		}
	}

	// Month ring.
	for i, month := range config.MonthsModern {
		labelAngle := dialAngle(float64(i)/12) + 15*math.Pi/180
		drawTextCentered(month, radialPoint(r.center, labelAngle, monthRadius-float64(r.width)/60), r.fonts.small, rl.NewColor(150, 150, 150, 255))
	}

	// Parapegma markers on the outer ring.
	for _, marker := range config.ParapegmaMarkers {
		angle := dialAngle(float64(marker.DayOfYear) / config.SolarYearDays)
		drawTextCentered(marker.Symbol, radialPoint(r.center, angle, parapegmaRadius-float64(r.width)/60), r.fonts.medium, config.ParapegmaColor)
	}

	// Date pointer across all rings.
	dateAngle := dialAngle(float64(snap.Date.YearDay()) / config.SolarYearDays)
	start := radialPoint(r.center, dateAngle, monthRadius-float64(r.width)/34)
	end := radialPoint(r.center, dateAngle, parapegmaRadius)
	rl.DrawLineEx(start, end, 2, config.BackPointerColor)
	rl.DrawCircleV(end, 4, config.BackPointerColor)
}

func (r *ModernFront) drawMoonPhase(snap simulation.Snapshot) {
	moonRadius := float64(r.width) / 15
	center := rl.Vector2{X: float32(r.width) - float32(moonRadius) - 30, Y: float32(moonRadius) + 30}

	rl.DrawCircleV(center, float32(moonRadius+10), rl.NewColor(20, 20, 30, 255))
	rl.DrawCircleV(center, float32(moonRadius), rl.NewColor(80, 80, 80, 255))

	if lit := core.LitFraction(snap.MoonPhase) * moonRadius; lit > 0 {
		rl.DrawCircleV(center, float32(lit), rl.NewColor(200, 200, 200, 255))
	}
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(moonRadius), rl.Gray)

	name := core.MoonPhaseName(snap.MoonPhase, config.MoonPhaseNamesModern)
	label := rl.Vector2{X: center.X, Y: center.Y + float32(moonRadius) + 20}
	drawTextCentered(fmt.Sprintf("Moon: %s", name), label, r.fonts.medium, rl.White)
}

func (r *ModernFront) drawParapegmaLegend() {
	legendX := int32(20)
	legendY := r.height - r.height/7
	legendW := r.width / 5
	legendH := r.height / 8

	rl.DrawRectangle(legendX, legendY, legendW, legendH, rl.NewColor(30, 30, 50, 180))
	rl.DrawText("Parapegma", legendX+10, legendY+5, r.fonts.medium, rl.White)

	y := legendY + 30
	for _, marker := range config.ParapegmaMarkers {
		if y > r.height-20 {
			break
		}
		rl.DrawText(marker.Symbol+":", legendX+15, y, r.fonts.medium, config.ParapegmaColor)
		rl.DrawText(marker.Name, legendX+55, y+2, r.fonts.small, rl.NewColor(200, 200, 200, 255))
		y += r.height / 60
	}
}
