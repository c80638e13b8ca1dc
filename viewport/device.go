package viewport

// DeviceTraits mirrors the "coarse pointer" and "no hover" media predicates
// used to decide whether a device is touch-primary.
type DeviceTraits struct {
	CoarsePointer bool
	NoHover       bool
}

// TouchPrimary reports whether the primary input is a finger.
func (d DeviceTraits) TouchPrimary() bool {
	return d.CoarsePointer && d.NoHover
}

// ShouldLock reports whether play must pause until the device is rotated:
// touch-primary devices held in portrait.
func ShouldLock(d DeviceTraits, m Metrics) bool {
	return d.TouchPrimary() && m.Portrait()
}

// TouchMode selects how DeviceTraits are obtained.
type TouchMode string

const (
	TouchAuto TouchMode = "auto"
	TouchOn   TouchMode = "on"
	TouchOff  TouchMode = "off"
)

// ParseTouchMode maps a flag value to a TouchMode, defaulting to auto.
func ParseTouchMode(s string) TouchMode {
	switch TouchMode(s) {
	case TouchOn, TouchOff:
		return TouchMode(s)
	default:
		return TouchAuto
	}
}

// Detector infers DeviceTraits from what the host reports. In auto mode a
// device counts as touch-primary when the platform is mobile, or once a touch
// has been seen without the mouse cursor ever moving.
type Detector struct {
	Mode   TouchMode
	Mobile bool

	sawTouch   bool
	sawHover   bool
	lastCursor [2]int
	cursorSet  bool
}

// ObserveTouch records that at least one touch was active this tick.
func (d *Detector) ObserveTouch() {
	d.sawTouch = true
}

// ObserveCursor records the cursor position; any movement after the first
// sample is treated as hover capability.
func (d *Detector) ObserveCursor(x, y int) {
	p := [2]int{x, y}
	if d.cursorSet && p != d.lastCursor && !d.sawTouch {
		d.sawHover = true
	}
	d.lastCursor = p
	d.cursorSet = true
}

// Traits returns the current best guess.
func (d *Detector) Traits() DeviceTraits {
	switch d.Mode {
	case TouchOn:
		return DeviceTraits{CoarsePointer: true, NoHover: true}
	case TouchOff:
		return DeviceTraits{}
	}
	if d.Mobile {
		return DeviceTraits{CoarsePointer: true, NoHover: true}
	}
	return DeviceTraits{CoarsePointer: d.sawTouch, NoHover: !d.sawHover}
}
