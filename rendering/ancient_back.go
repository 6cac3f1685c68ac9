package rendering

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

// AncientBack renders the back dials: the Metonic and Saros spirals and the
// small Games and Exeligmos dials, laid out as on the mechanism fragments.
type AncientBack struct {
	width       int32
	height      int32
	upperCenter rl.Vector2
	lowerCenter rl.Vector2
	fonts       fontSet
}

func NewAncientBack(width, height int32) *AncientBack {
	return &AncientBack{
		width:       width,
		height:      height,
		upperCenter: rl.Vector2{X: float32(width) / 2, Y: float32(height) * 0.35},
		lowerCenter: rl.Vector2{X: float32(width) / 2, Y: float32(height) * 0.75},
		fonts:       ancientFonts(width),
	}
}

// Draw renders the whole face from a snapshot.
func (r *AncientBack) Draw(snap simulation.Snapshot) {
	rl.ClearBackground(config.AncientBackground)
	r.drawMetonicDial(snap)
	r.drawSarosDial(snap)
	r.drawGamesDial(snap)
	r.drawExeligmosDial(snap)
	r.drawLegend()
	drawAncientStatus(snap, r.fonts, true)
}

// drawSpiral traces a spiral dial path. The pointer is drawn separately so
// it sits on top of the path.
func (r *AncientBack) drawSpiral(center rl.Vector2, outer float64, totalMonths int, monthsPerLoop, shrink float64, col rl.Color) {
	// Four sample points per month keep the path smooth.
	points := make([]rl.Vector2, 0, totalMonths*4)
	for i := 0; i < totalMonths*4; i++ {
		angle := float64(i)*(2*math.Pi/(monthsPerLoop*4)) - math.Pi/2
		t := float64(i) / float64(totalMonths*4)
		points = append(points, radialPoint(center, angle, spiralRadius(outer, t, shrink)))
	}
	rl.DrawLineStrip(points, col)
}

func (r *AncientBack) drawMetonicDial(snap simulation.Snapshot) {
	outer := float64(r.height) / 4
	const totalMonths = 235
	const monthsPerLoop = 47.0 // five loops of the spiral
	const shrink = 0.95

	r.drawSpiral(r.upperCenter, outer, totalMonths, monthsPerLoop, shrink, config.DialColor)

	// Month markings, with a Corinthian month name every twelfth month.
	for m := 0; m < totalMonths; m++ {
		angle := float64(m)*(2*math.Pi/monthsPerLoop) - math.Pi/2
		t := float64(m) / float64(totalMonths)
		radius := spiralRadius(outer, t, shrink)

		rl.DrawLineV(radialPoint(r.upperCenter, angle, radius-5), radialPoint(r.upperCenter, angle, radius+5), config.DialColor)

		if m%12 == 0 {
			label := config.MetonicMonths[(m/12)%len(config.MetonicMonths)]
			drawTextCentered(label, radialPoint(r.upperCenter, angle, radius+15), r.fonts.small, config.TextColor)
		}
	}

	// Pointer follows the spiral to the current synodic month.
	month := snap.CycleProgress[config.CycleMetonic] * totalMonths
	angle := month*(2*math.Pi/monthsPerLoop) - math.Pi/2
	radius := spiralRadius(outer, month/totalMonths, shrink)
	tip := radialPoint(r.upperCenter, angle, radius)
	rl.DrawLineEx(r.upperCenter, tip, 2, config.PointerColor)
	rl.DrawCircleV(tip, 5, config.PointerColor)
	rl.DrawCircleV(r.upperCenter, 8, config.DialColor)
}

func (r *AncientBack) drawSarosDial(snap simulation.Snapshot) {
	outer := float64(r.height) / 4.5
	const totalMonths = 223
	const monthsPerLoop = 55.75 // four loops of the spiral
	const shrink = 0.9

	r.drawSpiral(r.lowerCenter, outer, totalMonths, monthsPerLoop, shrink, config.DialColor)

	for m := 0; m < totalMonths; m++ {
		angle := float64(m)*(2*math.Pi/monthsPerLoop) - math.Pi/2
		t := float64(m) / float64(totalMonths)
		radius := spiralRadius(outer, t, shrink)

		rl.DrawLineV(radialPoint(r.lowerCenter, angle, radius-3), radialPoint(r.lowerCenter, angle, radius+3), config.DialColor)
	}

	// Eclipse glyphs: Σ for lunar months, Η for solar.
	for _, m := range config.SarosEclipseGlyphs {
		angle := float64(m)*(2*math.Pi/monthsPerLoop) - math.Pi/2
		radius := spiralRadius(outer, float64(m)/float64(totalMonths), shrink)
		glyph := "Σ"
		if m%2 != 0 {
			glyph = "Η"
		}
		drawTextCentered(glyph, radialPoint(r.lowerCenter, angle, radius+10), r.fonts.small, config.PointerColor)
	}

	month := snap.CycleProgress[config.CycleSaros] * totalMonths
	angle := month*(2*math.Pi/monthsPerLoop) - math.Pi/2
	radius := spiralRadius(outer, month/totalMonths, shrink)
	tip := radialPoint(r.lowerCenter, angle, radius)
	rl.DrawLineEx(r.lowerCenter, tip, 2, config.PointerColor)
	rl.DrawCircleV(tip, 4, config.PointerColor)
	rl.DrawCircleV(r.lowerCenter, 8, config.DialColor)
}

func (r *AncientBack) drawGamesDial(snap simulation.Snapshot) {
	radius := float64(r.height) / 16
	center := rl.Vector2{X: float32(r.width) * 0.85, Y: float32(r.height) * 0.25}

	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(radius), config.DialColor)

	// Four sectors, one per year of the Panhellenic cycle.
	for i := 0; i < 4; i++ {
		sector := float64(i)*math.Pi/2 - math.Pi/4
		rl.DrawLineV(center, radialPoint(center, sector, radius), config.DialColor)

		labelAngle := float64(i) * math.Pi / 2
		game := config.GamesAncient[i][0]
		if len(game) > 4 {
			game = game[:4]
		}
		drawTextCentered(game, radialPoint(center, labelAngle, radius*0.6), r.fonts.small, config.TextColor)
	}

	yearInCycle := snap.CycleIndex[config.CycleGames]
	pointerAngle := float64(yearInCycle) * math.Pi / 2
	rl.DrawLineEx(center, radialPoint(center, pointerAngle, radius), 2, config.PointerColor)
}

func (r *AncientBack) drawExeligmosDial(snap simulation.Snapshot) {
	radius := float64(r.height) / 16
	center := rl.Vector2{X: float32(r.width) * 0.85, Y: float32(r.height) * 0.75}

	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(radius), config.DialColor)

	// Three sectors carrying the hour-correction glyphs.
	for i := 0; i < 3; i++ {
		sector := float64(i)*2*math.Pi/3 - math.Pi/6
		rl.DrawLineV(center, radialPoint(center, sector, radius), config.DialColor)

		labelAngle := float64(i)*2*math.Pi/3 + math.Pi/6
		drawTextCentered(config.ExeligmosLabels[i], radialPoint(center, labelAngle, radius*0.7), r.fonts.medium, config.TextColor)
	}

	segment := snap.CycleIndex[config.CycleExeligmos]
	pointerAngle := float64(segment)*2*math.Pi/3 + math.Pi/6
	rl.DrawLineEx(center, radialPoint(center, pointerAngle, radius), 2, config.PointerColor)
}

func (r *AncientBack) drawLegend() {
	legendX := int32(20)
	legendY := r.height - 140
	const lineHeight = 22

	items := [][2]string{
		{"Metonic Dial:", "19-year calendar cycle"},
		{"Saros Dial:", "18-year eclipse prediction cycle"},
		{"Games Dial:", "4-year Panhellenic games cycle"},
		{"Exeligmos Dial:", "54-year eclipse timing correction"},
	}

	rl.DrawText("Back Face Dials", legendX, legendY, r.fonts.medium, config.TextColor)
	for i, item := range items {
		y := legendY + int32(i+1)*lineHeight
		rl.DrawText(item[0], legendX, y, r.fonts.small, config.PointerColor)
		titleWidth := rl.MeasureText(item[0], r.fonts.small)
		rl.DrawText(item[1], legendX+titleWidth+5, y, r.fonts.small, config.TextColor)
	}
}
