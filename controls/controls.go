// Package controls turns raw pointer samples into press, release and leave
// notifications for on-screen buttons and a drag joystick.
package controls

import "math"

// Pointer is one active touch or held mouse button, sampled once per tick.
// JustPressed is set on the tick the pointer went down.
type Pointer struct {
	ID          int
	X, Y        float64
	JustPressed bool
}

// Rect is an axis-aligned area in logical viewport pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is a held on-screen control. A handler left nil is simply not
// bound.
type Button struct {
	Bounds Rect

	OnDown  func()
	OnUp    func()
	OnLeave func()

	holder  int
	holding bool
}

// NewButton returns a released button covering bounds.
func NewButton(bounds Rect) *Button {
	return &Button{Bounds: bounds}
}

// Held reports whether a pointer currently holds the button.
func (b *Button) Held() bool {
	return b != nil && b.holding
}

// Update feeds this tick's pointers. A pointer going down inside the bounds
// captures the button; lifting it fires OnUp, dragging it outside fires
// OnLeave. Pointers that slide onto the button while already down are
// ignored.
func (b *Button) Update(pointers []Pointer) {
	if b == nil {
		return
	}
	if b.holding {
		p, ok := find(pointers, b.holder)
		switch {
		case !ok:
			b.holding = false
			call(b.OnUp)
		case !b.Bounds.Contains(p.X, p.Y):
			b.holding = false
			call(b.OnLeave)
		}
		return
	}

	for _, p := range pointers {
		if p.JustPressed && b.Bounds.Contains(p.X, p.Y) {
			b.holder, b.holding = p.ID, true
			call(b.OnDown)
			return
		}
	}
}

// Release drops any holder without firing handlers.
func (b *Button) Release() {
	if b != nil {
		b.holding = false
	}
}

// Joystick maps a horizontal drag that starts inside Zone to left/right.
type Joystick struct {
	Zone       Rect
	DeadZone   float64
	ThumbClamp float64

	OnChange func(left, right bool)

	holder  int
	holding bool
	originX float64
	originY float64
	dx      float64
	left    bool
	right   bool
}

// NewJoystick returns an idle joystick.
func NewJoystick(zone Rect, deadZone, thumbClamp float64) *Joystick {
	return &Joystick{Zone: zone, DeadZone: deadZone, ThumbClamp: thumbClamp}
}

// Update feeds this tick's pointers.
func (j *Joystick) Update(pointers []Pointer) {
	if j == nil {
		return
	}
	if !j.holding {
		for _, p := range pointers {
			if p.JustPressed && j.Zone.Contains(p.X, p.Y) {
				j.holder, j.holding = p.ID, true
				j.originX, j.originY = p.X, p.Y
				j.dx = 0
				break
			}
		}
		return
	}

	p, ok := find(pointers, j.holder)
	if !ok {
		j.holding = false
		j.dx = 0
		j.set(false, false)
		return
	}

	j.dx = p.X - j.originX
	j.set(j.dx < -j.DeadZone, j.dx > j.DeadZone)
}

// Active reports whether a drag is in progress.
func (j *Joystick) Active() bool {
	return j != nil && j.holding
}

// Origin is where the current drag started.
func (j *Joystick) Origin() (float64, float64) {
	return j.originX, j.originY
}

// Thumb is the drawn thumb offset: half the drag distance, clamped.
func (j *Joystick) Thumb() float64 {
	if j == nil || !j.holding {
		return 0
	}
	return math.Max(-j.ThumbClamp, math.Min(j.ThumbClamp, j.dx/2))
}

// Direction returns the current left/right state.
func (j *Joystick) Direction() (left, right bool) {
	return j.left, j.right
}

func (j *Joystick) set(left, right bool) {
	if left == j.left && right == j.right {
		return
	}
	j.left, j.right = left, right
	if j.OnChange != nil {
		j.OnChange(left, right)
	}
}

func find(pointers []Pointer, id int) (Pointer, bool) {
	for _, p := range pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
