package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/recording"
	"github.com/maforn/digital-antikythera-mechanism/rendering"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

func main() {
	runtime.LockOSThread()

	var (
		variant      = flag.String("variant", "ancient", "Mechanism variant (ancient, modern)")
		settingsPath = flag.String("settings", "config/settings.json", "Path to settings file")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		logger.Error("settings load failed", "error", err)
		os.Exit(1)
	}

	var modelVariant config.Variant
	switch *variant {
	case "ancient":
		modelVariant = config.Ancient
	case "modern":
		modelVariant = config.Modern
	default:
		logger.Error("unknown variant", "variant", *variant)
		os.Exit(1)
	}

	clock, err := newClock(modelVariant)
	if err != nil {
		logger.Error("clock setup failed", "error", err)
		os.Exit(1)
	}
	view := simulation.NewView(modelVariant)

	fmt.Println("=== Digital Antikythera Mechanism ===")
	fmt.Printf("Variant: %s\n", modelVariant)
	fmt.Println("Controls:")
	fmt.Println("  UP/DOWN - speed up / slow down time")
	fmt.Println("  SPACE   - pause / resume")
	fmt.Println("  TAB     - switch front/back view")
	fmt.Println("  R       - record clip of current view")
	fmt.Println("  B       - record clip of back view")
	fmt.Println("  C       - record one full 365-day cycle of the front view")

	rl.InitWindow(100, 100, view.Caption())
	defer rl.CloseWindow()

	size := windowSize(settings)
	rl.SetWindowSize(int(size), int(size))
	rl.SetTargetFPS(settings.Window.TargetFPS)

	frontAncient := rendering.NewAncientFront(size, size)
	backAncient := rendering.NewAncientBack(size, size)
	frontModern := rendering.NewModernFront(size, size)
	backModern := rendering.NewModernBack(size, size)

	recorder := recording.NewRecorder(logger, clock, view, settings.Recording.OutputDir)
	recordOpts := recording.Options{GIF: settings.Recording.GIF, MP4: settings.Recording.MP4}

	caption := view.Caption()

	for !rl.WindowShouldClose() {
		handleInput(clock, view, recorder, recordOpts, settings.Recording.ClipLength)

		if c := view.Caption(); c != caption {
			caption = c
			rl.SetWindowTitle(caption)
		}

		// A recording drives the clock with a fixed step so every clip of
		// the same length covers the same simulated span.
		if recorder.Active() {
			clock.Tick(1.0)
		} else {
			clock.Tick(tickDelta(modelVariant))
		}
		snap := clock.Snapshot()

		rl.BeginDrawing()
		switch {
		case modelVariant == config.Ancient && view.Face() == simulation.FaceFront:
			frontAncient.Draw(snap)
		case modelVariant == config.Ancient:
			backAncient.Draw(snap)
		case view.Face() == simulation.FaceFront:
			frontModern.Draw(snap)
		default:
			backModern.Draw(snap)
		}
		rl.EndDrawing()

		recorder.Capture()
	}
}

func newClock(variant config.Variant) (*simulation.Clock, error) {
	if variant == config.Ancient {
		return simulation.NewAncientClock()
	}
	return simulation.NewModernClock(time.Now())
}

// windowSize picks a square window that fits the current monitor, capped at
// the configured maximum width.
func windowSize(settings config.Settings) int32 {
	size := settings.Window.MaxWidth
	monitorH := int32(rl.GetMonitorHeight(rl.GetCurrentMonitor())) - settings.Window.HeightMargin
	if monitorH > 0 && monitorH < size {
		size = monitorH
	}
	return size
}

// tickDelta normalizes a frame to simulation units: the ancient variant
// steps one day per frame; the modern variant scales real frame time so the
// nominal rate stays one day per frame at the target FPS.
func tickDelta(variant config.Variant) float64 {
	if variant == config.Ancient {
		return 1.0
	}
	return float64(rl.GetFrameTime()) * 60
}

// yearClipDays is the simulated span of a C-key clip: one full calendar
// cycle of the front face.
const yearClipDays = 365

func handleInput(clock *simulation.Clock, view *simulation.View, recorder *recording.Recorder, opts recording.Options, clipSeconds int) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		simulation.Apply(simulation.CmdIncreaseSpeed, clock, view)
	case rl.IsKeyPressed(rl.KeyDown):
		simulation.Apply(simulation.CmdDecreaseSpeed, clock, view)
	case rl.IsKeyPressed(rl.KeySpace):
		simulation.Apply(simulation.CmdTogglePause, clock, view)
	case rl.IsKeyPressed(rl.KeyTab):
		simulation.Apply(simulation.CmdSwitchFace, clock, view)
	case rl.IsKeyPressed(rl.KeyR):
		startRecording(recorder, view.Face(), clock.Multiplier(), clipSeconds, opts)
	case rl.IsKeyPressed(rl.KeyB):
		startRecording(recorder, simulation.FaceBack, clock.Multiplier(), clipSeconds, opts)
	case rl.IsKeyPressed(rl.KeyC):
		// Full-year clip: long enough to cover 365 simulated days at the
		// current speed rather than a fixed real length.
		if !recorder.Active() {
			if err := recorder.StartSpan(simulation.FaceFront, clock.Multiplier(), yearClipDays, opts); err != nil {
				slog.Warn("recording not started", "error", err)
			}
		}
	}
}

func startRecording(recorder *recording.Recorder, face simulation.Face, speed float64, seconds int, opts recording.Options) {
	if recorder.Active() {
		return
	}
	if err := recorder.Start(face, speed, seconds, opts); err != nil {
		slog.Warn("recording not started", "error", err)
	}
}
