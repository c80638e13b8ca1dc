package controls

import "math"

// LayoutConfig sizes the on-screen controls relative to the viewport.
type LayoutConfig struct {
	ButtonFraction float64
	MarginFraction float64
	DeadZone       float64
	ThumbClamp     float64
}

// DefaultLayout returns the stock control layout.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ButtonFraction: 0.14,
		MarginFraction: 0.03,
		DeadZone:       15,
		ThumbClamp:     30,
	}
}

// Pad groups the directional buttons, the jump button and the optional drag
// joystick. Any member may be nil.
type Pad struct {
	Left  *Button
	Right *Button
	Jump  *Button
	Stick *Joystick

	cfg LayoutConfig
}

// NewPad builds a pad. With joystick set, a drag zone replaces the left and
// right buttons.
func NewPad(cfg LayoutConfig, joystick bool) *Pad {
	p := &Pad{
		Jump: NewButton(Rect{}),
		cfg:  cfg,
	}
	if joystick {
		p.Stick = NewJoystick(Rect{}, cfg.DeadZone, cfg.ThumbClamp)
	} else {
		p.Left = NewButton(Rect{})
		p.Right = NewButton(Rect{})
	}
	return p
}

// Relayout positions the controls for a viewport of the given logical size.
// Held controls stay held.
func (p *Pad) Relayout(width, height float64) {
	if p == nil {
		return
	}
	size := math.Min(width, height) * p.cfg.ButtonFraction
	margin := math.Min(width, height) * p.cfg.MarginFraction
	y := height - margin - size

	if p.Left != nil {
		p.Left.Bounds = Rect{X: margin, Y: y, W: size, H: size}
	}
	if p.Right != nil {
		p.Right.Bounds = Rect{X: 2*margin + size, Y: y, W: size, H: size}
	}
	if p.Jump != nil {
		p.Jump.Bounds = Rect{X: width - margin - size, Y: y, W: size, H: size}
	}
	if p.Stick != nil {
		p.Stick.Zone = Rect{X: 0, Y: height / 2, W: width / 2, H: height / 2}
	}
}

// SetLayout changes the sizing and joystick thresholds. Call Relayout
// afterwards to move the controls.
func (p *Pad) SetLayout(cfg LayoutConfig) {
	if p == nil {
		return
	}
	p.cfg = cfg
	if p.Stick != nil {
		p.Stick.DeadZone = cfg.DeadZone
		p.Stick.ThumbClamp = cfg.ThumbClamp
	}
}

// Update feeds this tick's pointers to every control.
func (p *Pad) Update(pointers []Pointer) {
	if p == nil {
		return
	}
	p.Left.Update(pointers)
	p.Right.Update(pointers)
	p.Jump.Update(pointers)
	p.Stick.Update(pointers)
}

// Reset releases every control without firing handlers.
func (p *Pad) Reset() {
	if p == nil {
		return
	}
	p.Left.Release()
	p.Right.Release()
	p.Jump.Release()
	if p.Stick != nil {
		p.Stick.holding = false
		p.Stick.dx = 0
		p.Stick.left, p.Stick.right = false, false
	}
}
