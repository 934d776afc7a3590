package controllers

import (
	"sync"
	"time"
)

// Scheduler runs a callback later on the presentation layer's own context
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}

// TimerScheduler fires callbacks from time.AfterFunc and hands them to
// dispatch, which must move them onto the UI goroutine.
type TimerScheduler struct {
	dispatch func(func())
	mu       sync.Mutex
	timers   map[*time.Timer]struct{}
	closed   bool
}

func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TimerScheduler{
		dispatch: dispatch,
		timers:   make(map[*time.Timer]struct{}),
	}
}

func (s *TimerScheduler) AfterFunc(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, timer)
		closed := s.closed
		s.mu.Unlock()

		if !closed {
			s.dispatch(fn)
		}
	})
	s.timers[timer] = struct{}{}
}

// Pending returns the number of callbacks that have not fired yet
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown stops every pending callback; later AfterFunc calls are ignored
func (s *TimerScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
}
