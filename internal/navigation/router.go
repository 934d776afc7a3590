package navigation

import (
	"sync"

	"menu-manager/internal/logger"
)

// Route identifies one of the application screens. Routes carry no parameters.
type Route string

const (
	Home     Route = "Home"
	AddItems Route = "AddItems"
	Filter   Route = "Filter"
)

var routeTitles = map[Route]string{
	Home:     "Menu",
	AddItems: "Add Dish",
	Filter:   "Filter Menu",
}

// Title returns the heading shown for the route
func (r Route) Title() string {
	if title, ok := routeTitles[r]; ok {
		return title
	}
	return string(r)
}

// Navigator is the part of the router screen controllers depend on
type Navigator interface {
	Navigate(route Route)
	Back() bool
	Current() Route
}

// Router keeps a stack of visited routes, starting at Home
type Router struct {
	mu        sync.Mutex
	stack     []Route
	listeners []func(Route)
	logger    logger.Logger
}

func NewRouter(log logger.Logger) *Router {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Router{
		stack:  []Route{Home},
		logger: log,
	}
}

// Navigate pushes a route. Navigating to the current route does nothing.
func (r *Router) Navigate(route Route) {
	r.mu.Lock()
	if r.stack[len(r.stack)-1] == route {
		r.mu.Unlock()
		return
	}
	r.stack = append(r.stack, route)
	depth := len(r.stack)
	r.mu.Unlock()

	r.logger.Debug("Router", "navigate", map[string]interface{}{
		"route": string(route),
		"depth": depth,
	})
	r.emit(route)
}

// Back pops the current route. It returns false at the root.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.stack) == 1 {
		r.mu.Unlock()
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	route := r.stack[len(r.stack)-1]
	r.mu.Unlock()

	r.logger.Debug("Router", "back", map[string]interface{}{
		"route": string(route),
	})
	r.emit(route)
	return true
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack[len(r.stack)-1]
}

// CanGoBack reports whether there is a route below the current one
func (r *Router) CanGoBack() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stack) > 1
}

// OnChange registers a listener called with the new current route
func (r *Router) OnChange(listener func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *Router) emit(route Route) {
	r.mu.Lock()
	listeners := make([]func(Route), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(route)
	}
}
