package simulation

import (
	"testing"

	"github.com/maforn/digital-antikythera-mechanism/config"
)

func TestViewToggleFlipsFace(t *testing.T) {
	view := NewView(config.Ancient)
	if view.Face() != FaceFront {
		t.Fatal("view does not start on the front face")
	}

	caption := view.Toggle()
	if view.Face() != FaceBack {
		t.Error("first toggle did not reach the back face")
	}
	if caption != "Ancient Antikythera - Back Dials" {
		t.Errorf("back caption = %q", caption)
	}

	caption = view.Toggle()
	if view.Face() != FaceFront {
		t.Error("second toggle did not return to the front face")
	}
	if caption != "Ancient Antikythera - Geocentric View" {
		t.Errorf("front caption = %q", caption)
	}
}

func TestViewCaptionsPerVariant(t *testing.T) {
	modern := NewView(config.Modern)
	if got := modern.Caption(); got != "Modern Antikythera - Solar System View" {
		t.Errorf("modern front caption = %q", got)
	}
	modern.Toggle()
	if got := modern.Caption(); got != "Modern Antikythera - Astronomical Cycles" {
		t.Errorf("modern back caption = %q", got)
	}
}

func TestApplyCommands(t *testing.T) {
	clock, err := NewAncientClock()
	if err != nil {
		t.Fatal(err)
	}
	view := NewView(config.Ancient)

	Apply(CmdIncreaseSpeed, clock, view)
	if got := clock.Multiplier(); got != SpeedStep {
		t.Errorf("multiplier after increase = %g, want %g", got, SpeedStep)
	}

	Apply(CmdDecreaseSpeed, clock, view)
	if got := clock.Multiplier(); got < 0.999 || got > 1.001 {
		t.Errorf("multiplier after decrease = %g, want ~1", got)
	}

	Apply(CmdTogglePause, clock, view)
	if !clock.Paused() {
		t.Error("toggle pause command did not pause the clock")
	}

	caption := Apply(CmdSwitchFace, clock, view)
	if view.Face() != FaceBack || caption == "" {
		t.Error("switch face command did not flip the view")
	}

	if got := Apply(CmdNone, clock, view); got != "" {
		t.Errorf("no-op command returned caption %q", got)
	}
}
