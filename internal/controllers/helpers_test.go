package controllers

import (
	"fmt"
	"time"

	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

type manualScheduler struct {
	delays []time.Duration
	queue  []func()
}

func (s *manualScheduler) AfterFunc(delay time.Duration, fn func()) {
	s.delays = append(s.delays, delay)
	s.queue = append(s.queue, fn)
}

func (s *manualScheduler) RunAll() {
	for len(s.queue) > 0 {
		fn := s.queue[0]
		s.queue = s.queue[1:]
		fn()
	}
}

type homeRecorder struct{ states []HomeState }

func (r *homeRecorder) RenderHome(state HomeState) { r.states = append(r.states, state) }
func (r *homeRecorder) last() HomeState            { return r.states[len(r.states)-1] }

type addDishRecorder struct{ states []AddDishState }

func (r *addDishRecorder) RenderAddDish(state AddDishState) { r.states = append(r.states, state) }
func (r *addDishRecorder) last() AddDishState               { return r.states[len(r.states)-1] }

type filterRecorder struct{ states []FilterState }

func (r *filterRecorder) RenderFilter(state FilterState) { r.states = append(r.states, state) }
func (r *filterRecorder) last() FilterState              { return r.states[len(r.states)-1] }

type fixture struct {
	store     *models.MenuStore
	router    *navigation.Router
	scheduler *manualScheduler
	main      *MainController
}

func newFixture(settings Settings) *fixture {
	next := 0
	store := models.NewMenuStore(models.WithIDGenerator(func() string {
		next++
		return fmt.Sprintf("dish-%d", next)
	}))
	router := navigation.NewRouter(nil)
	scheduler := &manualScheduler{}
	if settings.Currency == "" {
		settings.Currency = "R"
	}
	if settings.DefaultFilter == "" {
		settings.DefaultFilter = string(models.Starter)
	}
	return &fixture{
		store:     store,
		router:    router,
		scheduler: scheduler,
		main:      NewMainController(store, router, scheduler, settings, nil),
	}
}

// addDish fills and submits the add-dish form the way a user would
func (f *fixture) addDish(name, description, price, course string) bool {
	f.router.Navigate(navigation.AddItems)
	form := f.main.AddDish
	form.SetName(name)
	form.SetDescription(description)
	form.SetPrice(price)
	if err := form.SelectCourse(course); err != nil {
		return false
	}
	ok := form.Submit()
	f.scheduler.RunAll()
	return ok
}

func names(items []FilterItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}
