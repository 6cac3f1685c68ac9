package simulation

import "github.com/maforn/digital-antikythera-mechanism/config"

// Face identifies which side of the mechanism is displayed.
type Face int

const (
	FaceFront Face = iota
	FaceBack
)

// View tracks which face is displayed. The variant is fixed at startup; only
// the face toggles at runtime.
type View struct {
	variant config.Variant
	face    Face
}

// NewView starts on the front face.
func NewView(variant config.Variant) *View {
	return &View{variant: variant, face: FaceFront}
}

// Face returns the displayed face.
func (v *View) Face() Face { return v.face }

// Variant returns the fixed model variant.
func (v *View) Variant() config.Variant { return v.variant }

// Toggle flips front⇄back and returns the new window caption for the
// windowing collaborator to apply.
func (v *View) Toggle() string {
	if v.face == FaceFront {
		v.face = FaceBack
	} else {
		v.face = FaceFront
	}
	return v.Caption()
}

// Caption names the current view for the window title bar.
func (v *View) Caption() string {
	switch {
	case v.variant == config.Ancient && v.face == FaceFront:
		return "Ancient Antikythera - Geocentric View"
	case v.variant == config.Ancient:
		return "Ancient Antikythera - Back Dials"
	case v.face == FaceFront:
		return "Modern Antikythera - Solar System View"
	default:
		return "Modern Antikythera - Astronomical Cycles"
	}
}
