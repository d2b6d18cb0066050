// Package debounce provides cancellable deferred tasks.
//
// A Scheduler runs a task after a delay and hands back a Handle that can
// cancel it. Owners that must run tasks on a particular goroutine (a Bubble Tea
// program, for example) supply a Dispatch function that marshals the task
// there instead of running it on the timer goroutine.
package debounce

import "time"

// Handle refers to a scheduled task
type Handle interface {
	// Cancel stops the task. It reports false if the task already ran or was
	// already cancelled.
	Cancel() bool
}

// Scheduler defers tasks
type Scheduler interface {
	Schedule(delay time.Duration, task func()) Handle
}

// AfterFuncScheduler schedules tasks on the wall clock
type AfterFuncScheduler struct {
	// Dispatch, if set, receives the task when its timer fires and is
	// responsible for running it. Nil runs the task on the timer goroutine.
	Dispatch func(task func())
}

// Schedule arms a timer for the task
func (s AfterFuncScheduler) Schedule(delay time.Duration, task func()) Handle {
	dispatch := s.Dispatch
	t := time.AfterFunc(delay, func() {
		if dispatch != nil {
			dispatch(task)
			return
		}
		task()
	})
	return timerHandle{timer: t}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.timer.Stop()
}
