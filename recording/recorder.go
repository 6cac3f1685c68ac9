// Package recording captures deterministic clips of the mechanism. While a
// clip is running the recorder owns the clock: it forces the requested face
// and speed, drives a fixed one-frame tick per captured frame, and restores
// the live state when the clip completes.
package recording

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/maforn/digital-antikythera-mechanism/simulation"
)

const (
	captureFPS = 60
	// GIFs keep every second frame; at 60 fps capture that is a 30 fps GIF
	// with a 3-centisecond frame delay.
	gifFrameStride = 2
	gifFrameDelay  = 3
)

// Options selects the output formats of a clip.
type Options struct {
	GIF bool
	MP4 bool
}

// Recorder composes over the live clock and view rather than replacing them,
// so the simulation code has no recording branches.
type Recorder struct {
	log    *slog.Logger
	clock  *simulation.Clock
	view   *simulation.View
	outDir string

	active     bool
	framesLeft int
	frameIndex int

	savedFace       simulation.Face
	savedMultiplier float64
	savedPaused     bool

	gifAnim *gif.GIF
	gifPath string

	ffmpeg     *exec.Cmd
	ffmpegPipe io.WriteCloser
	mp4Path    string
}

func NewRecorder(log *slog.Logger, clock *simulation.Clock, view *simulation.View, outDir string) *Recorder {
	return &Recorder{log: log, clock: clock, view: view, outDir: outDir}
}

// Active reports whether a clip is in progress. While active the main loop
// must drive the clock with Tick(1.0) so clips of equal length cover equal
// simulated spans regardless of real frame rate.
func (r *Recorder) Active() bool { return r.active }

// Start begins a clip of the given face at the given speed, running for a
// fixed number of real seconds. The live face, speed and pause state are
// saved and restored when the clip finishes.
func (r *Recorder) Start(face simulation.Face, speed float64, seconds int, opts Options) error {
	return r.start(face, speed, seconds*captureFPS, opts)
}

// StartSpan begins a clip long enough to cover the given simulated span.
// Each captured frame advances the clock by speed days, so the clip runs
// days/speed frames; the real length shrinks as the speed grows.
func (r *Recorder) StartSpan(face simulation.Face, speed, days float64, opts Options) error {
	if speed <= 0 {
		return fmt.Errorf("span recording needs a positive speed, got %g", speed)
	}
	if days <= 0 {
		return fmt.Errorf("span recording needs a positive span, got %g days", days)
	}
	return r.start(face, speed, int(math.Ceil(days/speed)), opts)
}

func (r *Recorder) start(face simulation.Face, speed float64, frames int, opts Options) error {
	if r.active {
		return fmt.Errorf("recording already in progress")
	}
	if !opts.GIF && !opts.MP4 {
		return fmt.Errorf("no output format selected")
	}
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	r.savedFace = r.view.Face()
	r.savedMultiplier = r.clock.Multiplier()
	r.savedPaused = r.clock.Paused()

	if r.view.Face() != face {
		r.view.Toggle()
	}
	r.clock.SetSpeed(speed / r.clock.Multiplier())
	if r.clock.Paused() {
		r.clock.TogglePause()
	}

	stamp := time.Now().Format("20060102_150405")
	base := fmt.Sprintf("antikythera_%s_speed_%.2fx_%s", faceName(face), speed, stamp)

	if opts.GIF {
		r.gifAnim = &gif.GIF{}
		r.gifPath = filepath.Join(r.outDir, base+".gif")
	}
	if opts.MP4 {
		r.mp4Path = filepath.Join(r.outDir, base+".mp4")
	}

	r.active = true
	r.framesLeft = frames
	r.frameIndex = 0

	r.log.Info("recording started",
		"face", faceName(face),
		"speed", speed,
		"frames", frames,
		"gif", opts.GIF,
		"mp4", opts.MP4)
	return nil
}

// Capture grabs the frame currently on screen. Call it once per frame after
// EndDrawing; it is a no-op when no clip is active.
func (r *Recorder) Capture() {
	if !r.active {
		return
	}

	img := rl.LoadImageFromScreen()
	pixels := rl.LoadImageColors(img)
	width := int(img.Width)
	height := int(img.Height)
	rl.UnloadImage(img)

	if r.mp4Path != "" {
		r.writeVideoFrame(pixels, width, height)
	}
	if r.gifAnim != nil && r.frameIndex%gifFrameStride == 0 {
		r.appendGIFFrame(pixels, width, height)
	}

	r.frameIndex++
	r.framesLeft--
	if r.framesLeft <= 0 {
		r.finish()
	}
}

// writeVideoFrame streams raw RGBA into ffmpeg, spawning it on the first
// frame. If ffmpeg is unavailable the MP4 output is dropped and the clip
// continues with whatever remains.
func (r *Recorder) writeVideoFrame(pixels []color.RGBA, width, height int) {
	if r.ffmpeg == nil {
		if err := r.startFFmpeg(width, height); err != nil {
			r.log.Warn("mp4 output disabled", "error", err)
			r.mp4Path = ""
			return
		}
	}

	buf := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		buf = append(buf, p.R, p.G, p.B, p.A)
	}
	if _, err := r.ffmpegPipe.Write(buf); err != nil {
		r.log.Warn("ffmpeg pipe write failed, dropping mp4 output", "error", err)
		r.ffmpegPipe.Close()
		r.ffmpeg = nil
		r.mp4Path = ""
	}
}

func (r *Recorder) startFFmpeg(width, height int) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	cmd := exec.Command("ffmpeg", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%d", captureFPS),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		r.mp4Path)

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	r.ffmpeg = cmd
	r.ffmpegPipe = pipe
	return nil
}

func (r *Recorder) appendGIFFrame(pixels []color.RGBA, width, height int) {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		x := i % width
		y := i / width
		rgba.SetRGBA(x, y, p)
	}

	paletted := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, rgba.Bounds(), rgba, image.Point{})

	r.gifAnim.Image = append(r.gifAnim.Image, paletted)
	r.gifAnim.Delay = append(r.gifAnim.Delay, gifFrameDelay)
}

// finish closes the outputs and restores the live face, speed and pause
// state saved at Start.
func (r *Recorder) finish() {
	r.active = false

	if r.ffmpeg != nil {
		r.ffmpegPipe.Close()
		if err := r.ffmpeg.Wait(); err != nil {
			r.log.Warn("ffmpeg exited with error", "error", err)
		} else {
			r.log.Info("mp4 saved", "path", r.mp4Path)
		}
		r.ffmpeg = nil
		r.ffmpegPipe = nil
	}

	if r.gifAnim != nil && len(r.gifAnim.Image) > 0 {
		if err := r.saveGIF(); err != nil {
			r.log.Warn("gif save failed", "error", err)
		} else {
			r.log.Info("gif saved", "path", r.gifPath, "frames", len(r.gifAnim.Image))
		}
	}
	r.gifAnim = nil

	if r.view.Face() != r.savedFace {
		r.view.Toggle()
	}
	r.clock.SetSpeed(r.savedMultiplier / r.clock.Multiplier())
	if r.clock.Paused() != r.savedPaused {
		r.clock.TogglePause()
	}

	r.log.Info("recording finished")
}

func (r *Recorder) saveGIF() error {
	f, err := os.Create(r.gifPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, r.gifAnim)
}

func faceName(face simulation.Face) string {
	if face == simulation.FaceBack {
		return "back"
	}
	return "front"
}
