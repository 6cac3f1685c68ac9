package recording

import (
	"image/color"
	"image/gif"
	"io"
	"log/slog"
	"testing"

	"github.com/maforn/digital-antikythera-mechanism/config"
	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

func newTestRecorder(t *testing.T) (*Recorder, *simulation.Clock, *simulation.View) {
	t.Helper()
	clock, err := simulation.NewAncientClock()
	if err != nil {
		t.Fatalf("NewAncientClock: %v", err)
	}
	view := simulation.NewView(config.Ancient)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecorder(log, clock, view, t.TempDir()), clock, view
}

func TestStartForcesRequestedState(t *testing.T) {
	rec, clock, view := newTestRecorder(t)

	clock.SetSpeed(4)
	clock.TogglePause()

	if err := rec.Start(simulation.FaceBack, 10, 1, Options{GIF: true}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !rec.Active() {
		t.Error("recorder not active after Start")
	}
	if view.Face() != simulation.FaceBack {
		t.Error("face not switched to requested face")
	}
	if got := clock.Multiplier(); got != 10 {
		t.Errorf("multiplier = %v, want forced 10", got)
	}
	if clock.Paused() {
		t.Error("clock still paused during recording")
	}
}

func TestFinishRestoresLiveState(t *testing.T) {
	rec, clock, view := newTestRecorder(t)

	clock.SetSpeed(4)
	clock.TogglePause()

	if err := rec.Start(simulation.FaceBack, 10, 1, Options{GIF: true}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.finish()

	if rec.Active() {
		t.Error("recorder still active after finish")
	}
	if view.Face() != simulation.FaceFront {
		t.Error("face not restored")
	}
	if got := clock.Multiplier(); got != 4 {
		t.Errorf("multiplier = %v, want restored 4", got)
	}
	if !clock.Paused() {
		t.Error("pause state not restored")
	}
}

func TestStartSpanCoversSimulatedSpan(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		days  float64
	}{
		{"full year at 10x", 10, 365},
		{"full year at 1x", 1, 365},
		{"speed not dividing the span", 7, 365},
		{"fractional speed", 1.5, 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, _ := newTestRecorder(t)
			if err := rec.StartSpan(simulation.FaceFront, tt.speed, tt.days, Options{GIF: true}); err != nil {
				t.Fatalf("StartSpan: %v", err)
			}

			// Each captured frame ticks the clock by speed days, so the
			// frame budget times the speed must reach the requested span.
			covered := float64(rec.framesLeft) * tt.speed
			if covered < tt.days {
				t.Errorf("clip covers %g days at speed %g, want at least %g", covered, tt.speed, tt.days)
			}
			if covered >= tt.days+tt.speed {
				t.Errorf("clip overshoots: %g days at speed %g for a %g-day span", covered, tt.speed, tt.days)
			}
		})
	}
}

func TestStartSpanRejectsBadRequests(t *testing.T) {
	rec, _, _ := newTestRecorder(t)

	if err := rec.StartSpan(simulation.FaceFront, 0, 365, Options{GIF: true}); err == nil {
		t.Error("StartSpan accepted a zero speed")
	}
	if err := rec.StartSpan(simulation.FaceFront, 1, 0, Options{GIF: true}); err == nil {
		t.Error("StartSpan accepted a zero span")
	}
}

func TestStartRejectsBadRequests(t *testing.T) {
	rec, _, _ := newTestRecorder(t)

	if err := rec.Start(simulation.FaceFront, 1, 1, Options{}); err == nil {
		t.Error("Start accepted a request with no output format")
	}

	if err := rec.Start(simulation.FaceFront, 1, 1, Options{GIF: true}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := rec.Start(simulation.FaceFront, 1, 1, Options{GIF: true}); err == nil {
		t.Error("Start accepted a second clip while one was in progress")
	}
}

func TestAppendGIFFrame(t *testing.T) {
	rec, _, _ := newTestRecorder(t)
	rec.gifAnim = &gif.GIF{}

	pixels := make([]color.RGBA, 4*3)
	for i := range pixels {
		pixels[i] = color.RGBA{R: uint8(i * 20), G: 100, B: 50, A: 255}
	}
	rec.appendGIFFrame(pixels, 4, 3)

	if len(rec.gifAnim.Image) != 1 {
		t.Fatalf("frames = %d, want 1", len(rec.gifAnim.Image))
	}
	frame := rec.gifAnim.Image[0]
	if b := frame.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("frame bounds = %v, want 4x3", b)
	}
	if rec.gifAnim.Delay[0] != gifFrameDelay {
		t.Errorf("frame delay = %d, want %d", rec.gifAnim.Delay[0], gifFrameDelay)
	}
}

func TestFaceName(t *testing.T) {
	if faceName(simulation.FaceFront) != "front" {
		t.Error("front face misnamed")
	}
	if faceName(simulation.FaceBack) != "back" {
		t.Error("back face misnamed")
	}
}
