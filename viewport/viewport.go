// Package viewport derives surface size, character size and physics
// constants from the current viewport so gameplay feels the same at any
// resolution.
package viewport

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Config holds the viewport-proportional tuning. Character size, gravity and
// jump impulse scale with the viewport height; horizontal speed scales with the
// viewport width.
type Config struct {
	CharacterFraction float64
	SpeedFraction     float64
	GravityFraction   float64
	JumpFraction      float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		CharacterFraction: 0.20,
		SpeedFraction:     0.002,
		GravityFraction:   0.0005,
		JumpFraction:      0.025,
	}
}

// Metrics is everything derived from one viewport size. Width and Height are
// logical (CSS-like) pixels; the surface is Width*DPR by Height*DPR physical
// pixels.
type Metrics struct {
	Width  float64
	Height float64
	DPR    float64

	SurfaceWidth  int
	SurfaceHeight int

	CharacterSize float64

	Gravity     float64
	JumpImpulse float64
	Speed       float64
}

// Compute recomputes the metrics for a viewport. It is pure and idempotent.
func Compute(width, height, dpr float64, cfg Config) Metrics {
	if dpr <= 0 || math.IsNaN(dpr) {
		dpr = 1
	}
	width = math.Max(width, 0)
	height = math.Max(height, 0)

	size := height * cfg.CharacterFraction
	return Metrics{
		Width:         width,
		Height:        height,
		DPR:           dpr,
		SurfaceWidth:  int(width * dpr),
		SurfaceHeight: int(height * dpr),
		CharacterSize: size,
		Gravity:       height * cfg.GravityFraction,
		JumpImpulse:   -(height * cfg.JumpFraction),
		Speed:         width * cfg.SpeedFraction,
	}
}

// GroundLevel is the y coordinate at which the character's bottom edge
// touches the bottom of the viewport.
func (m Metrics) GroundLevel() float64 {
	return m.Height - m.CharacterSize
}

// Playfield returns the box the character's top-left corner may occupy.
func (m Metrics) Playfield() cp.BB {
	return m.PlayfieldFor(m.CharacterSize, m.CharacterSize)
}

// PlayfieldFor is Playfield for a body of the given size. L..R is the
// horizontal range; B..T runs from the top of the viewport down to ground
// level (screen y grows downward).
func (m Metrics) PlayfieldFor(width, height float64) cp.BB {
	return cp.BB{
		L: 0,
		B: 0,
		R: m.Width - width,
		T: m.Height - height,
	}
}

// ClampX clamps x into the playfield. When the character is wider than the
// viewport the right edge wins, pinning the character at Width-size.
func (m Metrics) ClampX(x float64) float64 {
	return ClampX(m.Playfield(), x)
}

// ClampX clamps x into bb's horizontal range, right edge winning.
func ClampX(bb cp.BB, x float64) float64 {
	return cp.Clamp(x, bb.L, bb.R)
}

// Portrait reports whether the viewport is narrower than it is tall.
func (m Metrics) Portrait() bool {
	return m.Width < m.Height
}

// Changed reports whether other describes a different viewport.
func (m Metrics) Changed(width, height, dpr float64) bool {
	if dpr <= 0 {
		dpr = 1
	}
	return m.Width != width || m.Height != height || m.DPR != dpr
}
