package controllers

import (
	"fmt"
	"strings"
	"time"

	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

// FilterAll shows every dish regardless of course
const FilterAll = "all"

const NoMatchingDishesMessage = "No dishes for this course."

// FilterChoice is one entry of the course filter selector
type FilterChoice struct {
	Value string
	Label string
}

// FilterChoices lists "All" followed by the three courses
func FilterChoices() []FilterChoice {
	choices := []FilterChoice{{Value: FilterAll, Label: "All"}}
	for _, course := range models.Courses() {
		choices = append(choices, FilterChoice{Value: string(course), Label: course.PluralLabel()})
	}
	return choices
}

// ParseFilter accepts "all" or anything models.ParseCourse accepts
func ParseFilter(value string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(value), FilterAll) {
		return FilterAll, nil
	}
	course, err := models.ParseCourse(value)
	if err != nil {
		return "", err
	}
	return string(course), nil
}

// RemovalPrompt is the confirmation shown before a dish is removed
type RemovalPrompt struct {
	DishID       string
	DishName     string
	Title        string
	Message      string
	CancelLabel  string
	ConfirmLabel string
}

// FilterItem is a listed dish plus its removal state
type FilterItem struct {
	DishRow
	PendingRemoval bool
}

type FilterState struct {
	Selected        string
	Choices         []FilterChoice
	Items           []FilterItem
	Empty           bool
	EmptyMessage    string
	Prompt          *RemovalPrompt
	Acknowledgement string
}

type FilterView interface {
	RenderFilter(state FilterState)
}

// FilterController lists dishes for the selected course and removes them
// after an explicit confirmation.
type FilterController struct {
	store     MenuStore
	nav       navigation.Navigator
	scheduler Scheduler
	format    PriceFormatter
	ackDelay  time.Duration
	logger    logger.Logger

	selected string
	pending  *RemovalPrompt
	ack      string
	ackSeq   uint64

	view        FilterView
	unsubscribe func()
}

func NewFilterController(store MenuStore, nav navigation.Navigator, scheduler Scheduler, format PriceFormatter, defaultFilter string, ackDelay time.Duration, log logger.Logger) *FilterController {
	requireDeps("FilterController", store, nav)
	if scheduler == nil {
		panic("controllers: FilterController requires a scheduler")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	selected, err := ParseFilter(defaultFilter)
	if err != nil {
		selected = string(models.Starter)
	}

	c := &FilterController{
		store:     store,
		nav:       nav,
		scheduler: scheduler,
		format:    format,
		ackDelay:  ackDelay,
		logger:    log,
		selected:  selected,
	}
	c.unsubscribe = store.Subscribe(c.onSnapshot)
	return c
}

func (c *FilterController) State() FilterState {
	return c.stateFor(c.store.Snapshot())
}

func (c *FilterController) stateFor(snapshot models.Snapshot) FilterState {
	var dishes []models.Dish
	if c.selected == FilterAll {
		dishes = snapshot.Dishes()
	} else {
		dishes = snapshot.ByCourse(models.Course(c.selected))
	}

	state := FilterState{
		Selected:        c.selected,
		Choices:         FilterChoices(),
		Items:           make([]FilterItem, 0, len(dishes)),
		Empty:           len(dishes) == 0,
		Acknowledgement: c.ack,
	}
	for _, dish := range dishes {
		state.Items = append(state.Items, FilterItem{
			DishRow:        newDishRow(dish, c.format),
			PendingRemoval: c.pending != nil && c.pending.DishID == dish.ID,
		})
	}
	if state.Empty {
		state.EmptyMessage = NoMatchingDishesMessage
	}
	if c.pending != nil {
		prompt := *c.pending
		state.Prompt = &prompt
	}
	return state
}

// Items returns the dishes currently listed
func (c *FilterController) Items() []FilterItem {
	return c.State().Items
}

func (c *FilterController) Bind(view FilterView) {
	c.view = view
	c.render()
}

func (c *FilterController) Unbind() {
	c.view = nil
}

// SelectFilter changes the listed course. Unknown values leave the selection unchanged.
func (c *FilterController) SelectFilter(value string) error {
	selected, err := ParseFilter(value)
	if err != nil {
		c.logger.Warning("FilterController", "filter rejected", map[string]interface{}{
			"value": value,
		})
		return err
	}

	c.selected = selected
	if c.pending != nil && !c.isListed(c.pending.DishID) {
		c.pending = nil
	}
	c.render()
	return nil
}

// RequestRemoval moves a listed dish into pending confirmation. Dishes that
// are not listed are ignored. A new request replaces an earlier one.
func (c *FilterController) RequestRemoval(id string) bool {
	dish, ok := c.store.Snapshot().Find(id)
	if !ok || !c.isListed(id) {
		return false
	}

	c.pending = &RemovalPrompt{
		DishID:       dish.ID,
		DishName:     dish.Name,
		Title:        "Remove dish",
		Message:      fmt.Sprintf("Are you sure you want to remove %s?", dish.Name),
		CancelLabel:  "Cancel",
		ConfirmLabel: "Remove",
	}
	c.logger.Debug("FilterController", "removal requested", map[string]interface{}{
		"id": dish.ID,
	})
	c.render()
	return true
}

// CancelRemoval returns the pending dish to the displayed state
func (c *FilterController) CancelRemoval() {
	if c.pending == nil {
		return
	}
	c.logger.Debug("FilterController", "removal cancelled", map[string]interface{}{
		"id": c.pending.DishID,
	})
	c.pending = nil
	c.render()
}

// ConfirmRemoval removes the pending dish from the menu
func (c *FilterController) ConfirmRemoval() bool {
	if c.pending == nil {
		return false
	}
	prompt := *c.pending
	c.pending = nil

	if !c.store.RemoveDish(prompt.DishID) {
		c.render()
		return false
	}

	c.logger.Info("FilterController", "dish removed", map[string]interface{}{
		"id":   prompt.DishID,
		"name": prompt.DishName,
	})
	c.acknowledge(prompt.DishName + " removed")
	return true
}

// Pending returns the prompt awaiting confirmation, if any
func (c *FilterController) Pending() (RemovalPrompt, bool) {
	if c.pending == nil {
		return RemovalPrompt{}, false
	}
	return *c.pending, true
}

func (c *FilterController) AddDish() {
	c.nav.Navigate(navigation.AddItems)
}

func (c *FilterController) Back() {
	c.CancelRemoval()
	c.nav.Back()
}

// Shutdown detaches the controller from the store
func (c *FilterController) Shutdown() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.view = nil
}

func (c *FilterController) acknowledge(message string) {
	c.ackSeq++
	seq := c.ackSeq
	c.ack = message
	c.render()

	c.scheduler.AfterFunc(c.ackDelay, func() {
		if c.ackSeq != seq {
			return
		}
		c.ack = ""
		c.render()
	})
}

func (c *FilterController) onSnapshot(snapshot models.Snapshot) {
	if c.pending != nil {
		if _, ok := snapshot.Find(c.pending.DishID); !ok {
			c.pending = nil
		}
	}
	if c.view != nil {
		c.view.RenderFilter(c.stateFor(snapshot))
	}
}

func (c *FilterController) isListed(id string) bool {
	dish, ok := c.store.Snapshot().Find(id)
	if !ok {
		return false
	}
	return c.selected == FilterAll || string(dish.Course) == c.selected
}

func (c *FilterController) render() {
	if c.view != nil {
		c.view.RenderFilter(c.State())
	}
}
