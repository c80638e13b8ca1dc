package component

// Action names one player intent, independent of the device that raised it.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Intent is the set of currently requested actions. Jump is one-shot: the
// physics step clears it when it applies the impulse.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Set raises or clears one action.
func (i *Intent) Set(a Action, on bool) {
	switch a {
	case ActionLeft:
		i.Left = on
	case ActionRight:
		i.Right = on
	case ActionJump:
		i.Jump = on
	}
}

// Active reports whether a is raised.
func (i Intent) Active(a Action) bool {
	switch a {
	case ActionLeft:
		return i.Left
	case ActionRight:
		return i.Right
	case ActionJump:
		return i.Jump
	default:
		return false
	}
}

// Moving reports whether a horizontal action is raised.
func (i Intent) Moving() bool {
	return i.Left || i.Right
}

var IntentComponent = NewComponent[Intent]()
