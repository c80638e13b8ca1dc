package loop

type scheduled struct {
	handle Handle
	fn     func()
}

// TickScheduler queues callbacks until the host's next refresh. The game
// calls Run once per Ebiten tick.
type TickScheduler struct {
	next  Handle
	queue []scheduled
}

// NewTickScheduler returns an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Schedule queues fn for the next Run.
func (s *TickScheduler) Schedule(fn func()) Handle {
	s.next++
	s.queue = append(s.queue, scheduled{handle: s.next, fn: fn})
	return s.next
}

// Cancel removes a queued callback. Unknown handles are ignored.
func (s *TickScheduler) Cancel(h Handle) {
	for i, e := range s.queue {
		if e.handle == h {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (s *TickScheduler) Pending() int {
	return len(s.queue)
}

// Run executes the callbacks queued before this call. Callbacks scheduled
// while running wait for the next Run.
func (s *TickScheduler) Run() {
	due := s.queue
	s.queue = nil
	for _, e := range due {
		e.fn()
	}
}
