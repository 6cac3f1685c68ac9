package config

import rl "github.com/gen2brain/raylib-go/raylib"

// Ancient face palette: parchment and bronze tones.
var (
	AncientBackground = rl.NewColor(10, 5, 0, 255)
	DialColor         = rl.NewColor(180, 150, 100, 255)
	TextColor         = rl.NewColor(220, 200, 180, 255)
	PointerColor      = rl.NewColor(255, 100, 100, 255)
	MoonLit           = rl.NewColor(230, 230, 220, 255)
	MoonDark          = rl.NewColor(50, 50, 40, 255)
	EarthColor        = rl.NewColor(0, 150, 255, 255)
)

// Modern face palette.
var (
	ModernBGTop      = rl.NewColor(20, 20, 50, 255)
	ModernBGBottom   = rl.NewColor(5, 5, 20, 255)
	ModernBackBG     = rl.NewColor(10, 15, 30, 255)
	DialBGColor      = rl.NewColor(25, 35, 60, 255)
	DialOutlineColor = rl.NewColor(100, 120, 150, 255)
	ProgressBarColor = rl.NewColor(0, 180, 255, 255)
	ProgressBGColor  = rl.NewColor(40, 50, 80, 255)
	BackPointerColor = rl.NewColor(255, 100, 100, 255)
	BackTextColor    = rl.NewColor(220, 220, 220, 255)
	SunColor         = rl.NewColor(255, 180, 0, 255)
	OrbitRingColor   = rl.NewColor(80, 80, 100, 255)
	ParapegmaColor   = rl.NewColor(255, 223, 0, 255)
)
