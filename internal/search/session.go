package search

import (
	"time"

	"findbar/internal/debounce"
	"findbar/internal/domain"
	"findbar/internal/store"
)

// DefaultDelay is the debounce applied between an edit and recomputation
const DefaultDelay = 300 * time.Millisecond

// State is the lifecycle state of a search session
type State int

const (
	// StateIdle means the query is empty and no results are shown
	StateIdle State = iota
	// StatePending means a recomputation is scheduled but not yet applied
	StatePending
	// StateSettled means the results reflect the current query and filters
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Session owns the query, active tab, visibility flags and the last
// materialized results. Edits schedule a debounced recomputation; only the
// most recently scheduled one is ever applied.
//
// A Session is not safe for concurrent use. Scheduled tasks must be run on
// the same goroutine that calls its methods, which is what a Scheduler with a
// Dispatch function is for.
type Session struct {
	store     store.ResultStore
	scheduler debounce.Scheduler
	delay     time.Duration

	state   State
	query   string
	tab     domain.TabID
	vis     domain.Visibility
	results []domain.Item

	handle     debounce.Handle
	generation uint64
	closed     bool

	settleFn func(*Session)
}

// NewSession creates a session in the Idle state
func NewSession(rs store.ResultStore, scheduler debounce.Scheduler, delay time.Duration, vis domain.Visibility) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Session{
		store:     rs,
		scheduler: scheduler,
		delay:     delay,
		state:     StateIdle,
		tab:       domain.TabAll,
		vis:       vis,
	}
}

// SetSettleFunction sets a callback run after each applied recomputation
func (s *Session) SetSettleFunction(fn func(*Session)) {
	s.settleFn = fn
}

// SetQuery records a query edit. An empty query returns to Idle at once;
// anything else restarts the debounce. It reports whether the query changed.
func (s *Session) SetQuery(query string) bool {
	if s.closed || query == s.query {
		return false
	}

	if query == "" {
		s.cancelPending()
		s.query = ""
		s.results = nil
		s.state = StateIdle
		return true
	}

	s.query = query
	s.schedule()
	return true
}

// SetTab changes the active tab. Outside Idle this restarts the debounce.
func (s *Session) SetTab(tab domain.TabID) bool {
	if s.closed || tab == s.tab {
		return false
	}
	s.tab = tab
	if s.state != StateIdle {
		s.schedule()
	}
	return true
}

// ToggleVisibility flips one settings flag. If the active tab is no longer
// offered it falls back to "all". Outside Idle this restarts the debounce.
func (s *Session) ToggleVisibility(g domain.VisibilityGroup) domain.Visibility {
	if s.closed {
		return s.vis
	}
	s.vis = s.vis.Toggle(g)
	s.tab = ResolveTab(s.tab, s.vis)
	if s.state != StateIdle {
		s.schedule()
	}
	return s.vis
}

// Clear empties the query and results and drops any pending recomputation
func (s *Session) Clear() {
	s.cancelPending()
	s.query = ""
	s.results = nil
	s.state = StateIdle
}

// Close cancels any pending recomputation. The session ignores all further
// edits and scheduled tasks.
func (s *Session) Close() {
	s.cancelPending()
	s.closed = true
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Searching reports whether a recomputation is pending
func (s *Session) Searching() bool {
	return s.state == StatePending
}

// Query returns the current query
func (s *Session) Query() string {
	return s.query
}

// Tab returns the active tab
func (s *Session) Tab() domain.TabID {
	return s.tab
}

// Visibility returns the current visibility flags
func (s *Session) Visibility() domain.Visibility {
	return s.vis
}

// Delay returns the debounce delay
func (s *Session) Delay() time.Duration {
	return s.delay
}

// Results returns a copy of the last applied result sequence
func (s *Session) Results() []domain.Item {
	if len(s.results) == 0 {
		return nil
	}
	result := make([]domain.Item, len(s.results))
	copy(result, s.results)
	return result
}

// Tabs derives the tab list for the current query and visibility
func (s *Session) Tabs() []Tab {
	return Tabs(MatchAll(s.store.Items(), s.query), s.vis)
}

// Internal methods
func (s *Session) schedule() {
	s.cancelPending()
	s.state = StatePending

	gen := s.generation
	s.handle = s.scheduler.Schedule(s.delay, func() {
		s.fire(gen)
	})
}

// cancelPending stops the current timer and invalidates any task already
// handed to a dispatcher.
func (s *Session) cancelPending() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.generation++
}

func (s *Session) fire(gen uint64) {
	if s.closed || gen != s.generation || s.state != StatePending {
		return
	}

	s.handle = nil
	s.results = Filter(s.store.Items(), s.query, s.tab, s.vis)
	s.state = StateSettled

	if s.settleFn != nil {
		s.settleFn(s)
	}
}
