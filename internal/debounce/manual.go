package debounce

import (
	"sync"
	"time"
)

// ManualScheduler is a Scheduler driven by a virtual clock. Nothing runs until
// Advance moves the clock past a task's due time. Tests use it to replay
// keystroke timelines deterministically.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner     *ManualScheduler
	due       time.Duration
	seq       uint64
	fn        func()
	done      bool
	cancelled bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule registers task to run once the clock reaches now+delay
func (s *ManualScheduler) Schedule(delay time.Duration, task func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTask{
		owner: s,
		due:   s.now + delay,
		seq:   s.seq,
		fn:    task,
	}
	s.tasks = append(s.tasks, t)
	return t
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Advance moves the clock forward by d, running every task that falls due in
// due-time order. Tasks scheduled by running tasks are honoured if they fall
// due within the same window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d

	for {
		next := s.nextDueLocked(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.done = true

		s.mu.Unlock()
		next.fn()
		s.mu.Lock()
	}

	s.now = target
	s.compactLocked()
	s.mu.Unlock()
}

// AdvanceTo moves the clock to the absolute virtual time at
func (s *ManualScheduler) AdvanceTo(at time.Duration) {
	s.mu.Lock()
	d := at - s.now
	s.mu.Unlock()
	if d > 0 {
		s.Advance(d)
	}
}

// Now returns the virtual time elapsed since the scheduler was created
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of tasks that are neither run nor cancelled
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) nextDueLocked(limit time.Duration) *manualTask {
	var next *manualTask
	for _, t := range s.tasks {
		if t.done || t.cancelled || t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *ManualScheduler) compactLocked() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
}
