// Package loop drives the per-frame update as an explicit idle/running state
// machine on top of a host refresh scheduler.
package loop

import (
	"github.com/rs/zerolog/log"
)

// Handle identifies a scheduled callback.
type Handle uint64

// Scheduler is the host's display-refresh primitive: Schedule arranges for fn
// to run once on the next refresh and Cancel withdraws it.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

// State is the driver state.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Driver runs frame once per refresh while running.
type Driver struct {
	sched Scheduler
	frame func()

	state      State
	pending    Handle
	hasPending bool
	frames     uint64
}

// NewDriver returns an idle driver.
func NewDriver(sched Scheduler, frame func()) *Driver {
	return &Driver{sched: sched, frame: frame}
}

// State returns the current state.
func (d *Driver) State() State {
	return d.state
}

// Running reports whether the driver is running.
func (d *Driver) Running() bool {
	return d.state == Running
}

// Frames returns how many frames have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Start moves idle to running, runs one frame immediately and schedules the
// next. Starting a running driver does nothing.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.state = Running
	log.Debug().Str("component", "loop").Msg("start")
	d.tick()
}

// Stop cancels the pending frame and returns to idle. Stopping an idle driver
// does nothing.
func (d *Driver) Stop() {
	if d.state == Idle {
		return
	}
	d.state = Idle
	if d.hasPending {
		d.sched.Cancel(d.pending)
		d.hasPending = false
	}
	log.Debug().Str("component", "loop").Uint64("frames", d.frames).Msg("stop")
}

func (d *Driver) tick() {
	d.hasPending = false
	if d.state != Running {
		return
	}
	d.frames++
	if d.frame != nil {
		d.frame()
	}
	// frame may have stopped the driver
	if d.state != Running || d.hasPending {
		return
	}
	d.pending = d.sched.Schedule(d.tick)
	d.hasPending = true
}
