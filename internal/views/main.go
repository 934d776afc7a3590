package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"menu-manager/internal/controllers"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
	"menu-manager/internal/views/components"
)

// MainView owns the window chrome and swaps the active screen on navigation
type MainView struct {
	window     fyne.Window
	controller *controllers.MainController

	mainContainer *fyne.Container
	content       *fyne.Container
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	home    *HomeView
	addDish *AddDishView
	filter  *FilterView

	detachStats func()
}

// NewMainView builds every screen, binds it to its controller and shows the
// current route in window.
func NewMainView(window fyne.Window, controller *controllers.MainController) *MainView {
	view := &MainView{
		window:     window,
		controller: controller,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()

	mv.home = NewHomeView(mv.controller.Home)
	mv.addDish = NewAddDishView(mv.controller.AddDish)
	mv.filter = NewFilterView(mv.controller.Filter, mv.window)
}

func (mv *MainView) buildLayout() {
	mv.content = container.NewStack()
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.content,
	)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.controller.Home.Bind(mv.home)
	mv.controller.AddDish.Bind(mv.addDish)
	mv.controller.Filter.Bind(mv.filter)

	mv.toolbar.SetBackHandler(func() {
		mv.controller.Back()
	})

	mv.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyEscape {
			mv.controller.Back()
		}
	})

	mv.addDish.SetStatusHandler(mv.UpdateStatus)
	mv.filter.SetStatusHandler(mv.UpdateStatus)

	mv.UpdateMenuInfo(mv.controller.Stats())
	mv.detachStats = mv.controller.OnMenuChange(mv.UpdateMenuInfo)

	mv.controller.OnRouteChange(mv.showRoute)
	mv.showRoute(mv.controller.Route())
}

// showRoute puts the screen for route into the content area
func (mv *MainView) showRoute(route navigation.Route) {
	var screen fyne.CanvasObject
	switch route {
	case navigation.AddItems:
		screen = mv.addDish.GetContainer()
	case navigation.Filter:
		screen = mv.filter.GetContainer()
	default:
		screen = mv.home.GetContainer()
	}

	mv.content.Objects = []fyne.CanvasObject{screen}
	mv.content.Refresh()

	mv.toolbar.SetTitle(route.Title())
	mv.toolbar.SetBackEnabled(mv.controller.CanGoBack())
	mv.UpdateStatus("")
	mv.window.SetTitle("Menu Manager - " + route.Title())
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// UpdateStatus updates the status bar message; "" restores "Ready"
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateMenuInfo refreshes the dish counts in the status bar
func (mv *MainView) UpdateMenuInfo(stats models.MenuStats) {
	mv.statusBar.SetMenuInfo(stats)
}

// Shutdown unbinds the screens and stops listening for menu changes
func (mv *MainView) Shutdown() {
	if mv.detachStats != nil {
		mv.detachStats()
		mv.detachStats = nil
	}
	mv.controller.Home.Unbind()
	mv.controller.AddDish.Unbind()
	mv.controller.Filter.Unbind()
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// Home, AddDish and Filter expose the screens for tests and keyboard shortcuts
func (mv *MainView) Home() *HomeView {
	return mv.home
}

func (mv *MainView) AddDish() *AddDishView {
	return mv.addDish
}

func (mv *MainView) Filter() *FilterView {
	return mv.filter
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Center centers the window on screen
func (mv *MainView) Center() {
	mv.window.CenterOnScreen()
}
