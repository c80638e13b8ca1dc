package loop

import (
	"reflect"
	"testing"
)

func TestDriverStartRunsImmediatelyThenPerRefresh(t *testing.T) {
	sched := NewTickScheduler()
	var calls int
	d := NewDriver(sched, func() { calls++ })

	if d.State() != Idle {
		t.Fatalf("new driver should be idle")
	}

	d.Start()
	if calls != 1 {
		t.Fatalf("start should run one frame immediately, got %d", calls)
	}
	if sched.Pending() != 1 {
		t.Fatalf("start should schedule the next frame, pending=%d", sched.Pending())
	}

	for i := 0; i < 3; i++ {
		sched.Run()
	}
	if calls != 4 {
		t.Fatalf("expected 4 frames, got %d", calls)
	}
	if d.Frames() != 4 {
		t.Fatalf("frame counter = %d, want 4", d.Frames())
	}
}

func TestDriverIdempotentTransitions(t *testing.T) {
	cases := []struct {
		name      string
		ops       []string
		wantState State
		wantCalls int
		wantQueue int
	}{
		{"stop_idle", []string{"stop"}, Idle, 0, 0},
		{"start_twice", []string{"start", "start"}, Running, 1, 1},
		{"start_stop", []string{"start", "stop"}, Idle, 1, 0},
		{"start_stop_stop", []string{"start", "stop", "stop"}, Idle, 1, 0},
		{"start_stop_start", []string{"start", "stop", "start"}, Running, 2, 1},
		{"stop_cancels_refresh", []string{"start", "stop", "run", "run"}, Idle, 1, 0},
		{"run_while_running", []string{"start", "run", "run"}, Running, 3, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sched := NewTickScheduler()
			var calls int
			d := NewDriver(sched, func() { calls++ })
			for _, op := range c.ops {
				switch op {
				case "start":
					d.Start()
				case "stop":
					d.Stop()
				case "run":
					sched.Run()
				}
			}
			if d.State() != c.wantState {
				t.Fatalf("state = %v, want %v", d.State(), c.wantState)
			}
			if calls != c.wantCalls {
				t.Fatalf("calls = %d, want %d", calls, c.wantCalls)
			}
			if sched.Pending() != c.wantQueue {
				t.Fatalf("pending = %d, want %d", sched.Pending(), c.wantQueue)
			}
		})
	}
}

func TestDriverStopFromInsideFrame(t *testing.T) {
	sched := NewTickScheduler()
	var d *Driver
	var calls int
	d = NewDriver(sched, func() {
		calls++
		if calls == 2 {
			d.Stop()
		}
	})
	d.Start()
	sched.Run()
	sched.Run()
	if calls != 2 || d.Running() || sched.Pending() != 0 {
		t.Fatalf("calls=%d running=%v pending=%d", calls, d.Running(), sched.Pending())
	}
}

func TestTickSchedulerCancelUnknownHandle(t *testing.T) {
	sched := NewTickScheduler()
	ran := false
	sched.Schedule(func() { ran = true })
	sched.Cancel(Handle(999))
	sched.Run()
	if !ran {
		t.Fatalf("unrelated cancel should not drop callbacks")
	}
}

func TestGate(t *testing.T) {
	sched := NewTickScheduler()
	d := NewDriver(sched, nil)
	g := NewGate(d, HoldLoading)

	if d.Running() {
		t.Fatalf("loading hold should keep the driver idle")
	}

	g.Set(HoldLoading, false)
	if !d.Running() {
		t.Fatalf("no holds should start the driver")
	}

	g.Set(HoldOrientation, true)
	g.Set(HoldPaused, true)
	if d.Running() {
		t.Fatalf("holds should stop the driver")
	}
	if got := g.Holds(); !reflect.DeepEqual(got, []string{HoldOrientation, HoldPaused}) {
		t.Fatalf("holds = %v", got)
	}

	g.Set(HoldOrientation, false)
	if d.Running() {
		t.Fatalf("pause still held")
	}
	g.Set(HoldPaused, false)
	if !d.Running() {
		t.Fatalf("all holds cleared; driver should run")
	}
	if g.Held(HoldPaused) {
		t.Fatalf("pause should be cleared")
	}
}
