package controllers

import (
	"fmt"
	"time"

	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

// MenuStore is the store surface the screen controllers use
type MenuStore interface {
	AddDish(in models.DishInput) models.Dish
	RemoveDish(id string) bool
	Snapshot() models.Snapshot
	Subscribe(listener models.SnapshotListener) func()
}

// Settings carries the configurable behaviour of the screens
type Settings struct {
	Currency           string
	AckDelay           time.Duration
	RequireDescription bool
	DefaultFilter      string
}

// MainController builds the three screen controllers around one store and
// one router, and tracks which screen is active.
type MainController struct {
	Home    *HomeController
	AddDish *AddDishController
	Filter  *FilterController

	store  MenuStore
	router *navigation.Router
	logger logger.Logger

	routeHandlers []func(navigation.Route)
}

func NewMainController(store MenuStore, router *navigation.Router, scheduler Scheduler, settings Settings, log logger.Logger) *MainController {
	requireDeps("MainController", store, router)
	if log == nil {
		log = logger.NoOpLogger{}
	}

	format := PriceFormatter{Currency: settings.Currency}
	mc := &MainController{
		Home: NewHomeController(store, router, format, log),
		AddDish: NewAddDishController(store, router, scheduler, AddDishOptions{
			RequireDescription: settings.RequireDescription,
			AckDelay:           settings.AckDelay,
		}, log),
		Filter: NewFilterController(store, router, scheduler, format, settings.DefaultFilter, settings.AckDelay, log),
		store:  store,
		router: router,
		logger: log,
	}

	router.OnChange(mc.onRouteChanged)
	return mc
}

// Route returns the active screen
func (mc *MainController) Route() navigation.Route {
	return mc.router.Current()
}

// Back leaves the active screen; the add-dish form is reset on the way out
func (mc *MainController) Back() bool {
	if mc.router.Current() == navigation.AddItems {
		mc.AddDish.Reset()
	}
	if mc.router.Current() == navigation.Filter {
		mc.Filter.CancelRemoval()
	}
	return mc.router.Back()
}

// CanGoBack reports whether Back would leave the active screen
func (mc *MainController) CanGoBack() bool {
	return mc.router.CanGoBack()
}

// Stats summarises the current menu
func (mc *MainController) Stats() models.MenuStats {
	return mc.store.Snapshot().Stats()
}

// OnMenuChange calls handler with fresh stats after every menu change.
// The returned function detaches it.
func (mc *MainController) OnMenuChange(handler func(models.MenuStats)) func() {
	return mc.store.Subscribe(func(snapshot models.Snapshot) {
		handler(snapshot.Stats())
	})
}

// OnRouteChange registers a handler that swaps the visible screen
func (mc *MainController) OnRouteChange(handler func(navigation.Route)) {
	mc.routeHandlers = append(mc.routeHandlers, handler)
}

// Shutdown detaches every controller from the store
func (mc *MainController) Shutdown() {
	mc.Home.Unbind()
	mc.AddDish.Unbind()
	mc.Filter.Shutdown()
	mc.logger.Info("MainController", "controllers detached", nil)
}

func (mc *MainController) onRouteChanged(route navigation.Route) {
	mc.logger.Debug("MainController", "screen changed", map[string]interface{}{
		"route": string(route),
		"title": route.Title(),
	})
	for _, handler := range mc.routeHandlers {
		handler(route)
	}
}

// requireDeps panics on missing collaborators. A controller without its store
// or navigator is a wiring mistake, never a runtime condition.
func requireDeps(name string, store MenuStore, nav navigation.Navigator) {
	if store == nil {
		panic(fmt.Sprintf("controllers: %s requires a menu store", name))
	}
	if s, ok := store.(*models.MenuStore); ok && s == nil {
		panic(fmt.Sprintf("controllers: %s requires a menu store", name))
	}
	if nav == nil {
		panic(fmt.Sprintf("controllers: %s requires a navigator", name))
	}
	if r, ok := nav.(*navigation.Router); ok && r == nil {
		panic(fmt.Sprintf("controllers: %s requires a navigator", name))
	}
}
