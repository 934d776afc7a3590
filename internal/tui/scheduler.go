package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menu-manager/internal/controllers"
)

// timerFiredMsg carries a deferred controller callback into Update
type timerFiredMsg struct {
	fn func()
}

// Waiter hands fired timers to the program as messages
type Waiter interface {
	Wait() tea.Cmd
}

// Scheduler runs controller callbacks inside the bubbletea update loop.
// Timers fire on their own goroutines and are queued until Wait delivers them.
type Scheduler struct {
	timers *controllers.TimerScheduler
	fired  chan func()
	done   chan struct{}
}

func NewScheduler() *Scheduler {
	s := &Scheduler{
		fired: make(chan func(), 16),
		done:  make(chan struct{}),
	}
	s.timers = controllers.NewTimerScheduler(func(fn func()) {
		select {
		case s.fired <- fn:
		case <-s.done:
		}
	})
	return s
}

func (s *Scheduler) AfterFunc(delay time.Duration, fn func()) {
	s.timers.AfterFunc(delay, fn)
}

// Wait blocks until the next callback fires
func (s *Scheduler) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-s.fired:
			return timerFiredMsg{fn: fn}
		case <-s.done:
			return nil
		}
	}
}

// Pending returns the number of timers that have not fired yet
func (s *Scheduler) Pending() int {
	return s.timers.Pending()
}

func (s *Scheduler) Shutdown() {
	select {
	case <-s.done:
		return
	default:
	}
	s.timers.Shutdown()
	close(s.done)
}
