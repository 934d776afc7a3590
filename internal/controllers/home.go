package controllers

import (
	"github.com/shopspring/decimal"

	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

const EmptyMenuMessage = "No dishes yet."

// CourseAverage is one row of the per-course price summary
type CourseAverage struct {
	Course    models.Course
	Label     string
	Amount    decimal.Decimal
	Formatted string
}

// Line renders the summary row, e.g. "Starters: R25.00"
func (a CourseAverage) Line() string {
	return a.Label + ": " + a.Formatted
}

// HomeState is everything the home screen displays
type HomeState struct {
	Averages     []CourseAverage
	Dishes       []DishRow
	Empty        bool
	EmptyMessage string
	Version      uint64
}

type HomeView interface {
	RenderHome(state HomeState)
}

// HomeController summarises the menu and offers navigation to the other screens
type HomeController struct {
	store  MenuStore
	nav    navigation.Navigator
	format PriceFormatter
	logger logger.Logger

	view        HomeView
	unsubscribe func()
}

func NewHomeController(store MenuStore, nav navigation.Navigator, format PriceFormatter, log logger.Logger) *HomeController {
	requireDeps("HomeController", store, nav)
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &HomeController{
		store:  store,
		nav:    nav,
		format: format,
		logger: log,
	}
}

// State derives the home screen from the current snapshot
func (c *HomeController) State() HomeState {
	return c.stateFor(c.store.Snapshot())
}

func (c *HomeController) stateFor(snapshot models.Snapshot) HomeState {
	state := HomeState{
		Averages: make([]CourseAverage, 0, len(models.Courses())),
		Empty:    snapshot.IsEmpty(),
		Version:  snapshot.Version(),
	}

	for _, course := range models.Courses() {
		amount := snapshot.AveragePrice(course)
		state.Averages = append(state.Averages, CourseAverage{
			Course:    course,
			Label:     course.PluralLabel(),
			Amount:    amount,
			Formatted: c.format.Format(amount),
		})
	}

	if state.Empty {
		state.EmptyMessage = EmptyMenuMessage
		return state
	}

	dishes := snapshot.Dishes()
	state.Dishes = make([]DishRow, 0, len(dishes))
	for _, dish := range dishes {
		state.Dishes = append(state.Dishes, newDishRow(dish, c.format))
	}
	return state
}

// Bind renders into view now and after every menu change
func (c *HomeController) Bind(view HomeView) {
	c.Unbind()
	c.view = view
	c.unsubscribe = c.store.Subscribe(func(snapshot models.Snapshot) {
		c.render(c.stateFor(snapshot))
	})
	c.render(c.State())
}

func (c *HomeController) Unbind() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.view = nil
}

// AddDish opens the add-dish screen
func (c *HomeController) AddDish() {
	c.nav.Navigate(navigation.AddItems)
}

// FilterCourses opens the course filter screen
func (c *HomeController) FilterCourses() {
	c.nav.Navigate(navigation.Filter)
}

func (c *HomeController) render(state HomeState) {
	if c.view != nil {
		c.view.RenderHome(state)
	}
}
