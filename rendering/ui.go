package rendering

import (
	"fmt"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

// fontSet carries the default-font sizes for one face, derived from the
// window width the way the original display scales its text.
type fontSet struct {
	small  int32
	medium int32
	large  int32
	planet int32
	zodiac int32
	day    int32
}

func ancientFonts(width int32) fontSet {
	return fontSet{
		small:  width / 70,
		medium: width / 60,
		large:  width / 45,
		planet: width / 75,
		zodiac: width / 55,
		day:    width / 100,
	}
}

func modernFonts(width int32) fontSet {
	return fontSet{
		small:  width / 85,
		medium: width / 67,
		large:  width / 50,
		planet: width / 75,
		zodiac: width / 60,
		day:    width / 100,
	}
}

// drawAncientStatus prints the day counter and control help for the ancient
// faces. The day count is grouped with thousands separators since fast
// clocks push it into the millions.
func drawAncientStatus(snap simulation.Snapshot, fonts fontSet, withViewHint bool) {
	day := fmt.Sprintf("Day: %s", humanize.Comma(int64(snap.ElapsedDays)))
	rl.DrawText(day, 10, 10, fonts.large, config.TextColor)

	lines := []string{"Controls:", "UP/DOWN: Change Speed", "SPACE: Pause/Resume"}
	if withViewHint {
		lines = append(lines, "TAB: Switch View")
	}
	lines = append(lines, fmt.Sprintf("Speed: %.2fx", snap.Multiplier))
	if snap.Paused {
		lines = append(lines, "PAUSED")
	}
	drawControlLines(lines, fonts.medium, config.TextColor)
}

// drawModernStatus prints the calendar date and control help for the modern
// faces.
func drawModernStatus(snap simulation.Snapshot, fonts fontSet, col rl.Color, withViewHint bool) {
	date := snap.Date.Format("2006 - Jan - 02")
	rl.DrawText(date, 10, 10, fonts.large, rl.White)

	lines := []string{"Controls:", "UP/DOWN: Change Speed", "SPACE: Pause/Resume"}
	if withViewHint {
		lines = append(lines, "TAB: Switch View")
	}
	lines = append(lines, fmt.Sprintf("Speed: %.2fx", snap.Multiplier))
	if snap.Paused {
		lines = append(lines, "PAUSED")
	}
	drawControlLines(lines, fonts.medium, col)
}

func drawControlLines(lines []string, fontSize int32, col rl.Color) {
	for i, line := range lines {
		rl.DrawText(line, 10, 50+int32(i)*25, fontSize, col)
	}
}
