package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"menu-manager/internal/config"
	"menu-manager/internal/controllers"
	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
	"menu-manager/internal/views"
)

const (
	AppName    = "Menu Manager"
	AppID      = "com.restaurant.menumanager"
	AppVersion = "1.0.0"
)

// Application wires the menu store, controllers and Fyne views into one window
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	store      *models.MenuStore
	router     *navigation.Router
	scheduler  *controllers.TimerScheduler
	controller *controllers.MainController
	view       *views.MainView

	lifecycle *Lifecycle
}

// NewApplication builds the desktop application. A nil fyneApp creates the
// default driver; tests pass a test app.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("application requires a configuration")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if fyneApp == nil {
		fyneapp.SetMetadata(fyne.AppMetadata{
			ID:      AppID,
			Name:    AppName,
			Version: AppVersion,
		})
		fyneApp = fyneapp.NewWithID(AppID)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	store := models.NewMenuStore()
	router := navigation.NewRouter(log)
	scheduler := controllers.NewTimerScheduler(fyne.Do)

	mainController := controllers.NewMainController(store, router, scheduler, controllers.Settings{
		Currency:           cfg.Currency,
		AckDelay:           cfg.AckDelay,
		RequireDescription: cfg.RequireDescription,
		DefaultFilter:      cfg.DefaultFilter,
	}, log)
	mainView := views.NewMainView(window, mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		store:      store,
		router:     router,
		scheduler:  scheduler,
		controller: mainController,
		view:       mainView,
	}
	application.lifecycle = NewLifecycle(log, scheduler, mainController, mainView)
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":     AppVersion,
		"currency":    cfg.Currency,
		"ack_delay":   cfg.AckDelay.String(),
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
	})
	return application, nil
}

// Run shows the window and blocks until the Fyne event loop exits
func (a *Application) Run() error {
	a.lifecycle.Listen(a.handleSignal)

	a.view.Center()
	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		if a.store.Snapshot().IsEmpty() {
			a.close()
			return
		}
		a.view.ShowConfirm("Exit", "The menu is not saved. Exit anyway?", func(confirmed bool) {
			if confirmed {
				a.close()
			}
		})
	})
}

// handleSignal moves shutdown onto the UI goroutine, where the views and
// controllers are otherwise touched
func (a *Application) handleSignal() {
	fyne.Do(a.close)
}

func (a *Application) close() {
	a.lifecycle.Shutdown()
	a.window.Close()
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}
