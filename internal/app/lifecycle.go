package app

import (
	"menu-manager/internal/controllers"
	"menu-manager/internal/logger"
	"menu-manager/internal/shutdown"
	"menu-manager/internal/views"
)

// Lifecycle stops the scheduler, then the controllers, then the view
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(log logger.Logger, scheduler *controllers.TimerScheduler, controller *controllers.MainController, view *views.MainView) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("view", shutdown.Func(view.Shutdown))
	manager.Register("controllers", controller)
	manager.Register("scheduler", scheduler)

	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

// Listen calls onSignal on SIGINT or SIGTERM; onSignal is responsible for
// calling Shutdown
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

// Done is closed once shutdown has started
func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
