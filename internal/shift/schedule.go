package shift

import "context"

// task is a deferred controller action. Tasks replace the reference
// implementation's wall-clock timeouts: they come due at a tick count,
// and they carry the epoch they were scheduled in so a day transition
// can invalidate anything still in flight.
type task struct {
	due   int64
	epoch uint64
	name  string
	fn    func(ctx context.Context)
}

// schedule is the controller's pending-task queue. Not safe for
// concurrent use on its own; the controller's mutex covers it.
type schedule struct {
	tasks []task
}

// after queues fn to run delay ticks from now.
func (s *schedule) after(now int64, delay int, epoch uint64, name string, fn func(ctx context.Context)) {
	s.tasks = append(s.tasks, task{
		due:   now + int64(delay),
		epoch: epoch,
		name:  name,
		fn:    fn,
	})
}

// due removes and returns all tasks due at or before now that still
// belong to the current epoch. Stale-epoch tasks are dropped silently;
// their work belongs to a day that already ended.
func (s *schedule) due(now int64, epoch uint64) []task {
	var ready []task
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.epoch != epoch:
			// dropped
		case t.due <= now:
			ready = append(ready, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining
	return ready
}

// pending returns the number of queued tasks.
func (s *schedule) pending() int {
	return len(s.tasks)
}
