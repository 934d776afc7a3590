package controllers

import (
	"errors"
	"strings"
	"time"

	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
)

const DishAddedMessage = "Dish added"

// AddDishState is the form as the add-dish screen should display it
type AddDishState struct {
	Name            string
	Description     string
	Price           string
	Course          models.Course
	Courses         []models.Course
	Errors          map[Field]string
	Acknowledgement string
	// Leaving is true between a successful submit and the navigation back
	Leaving bool
}

type AddDishView interface {
	RenderAddDish(state AddDishState)
}

// AddDishOptions tunes validation and the post-submit transition
type AddDishOptions struct {
	RequireDescription bool
	AckDelay           time.Duration
}

// AddDishController owns the add-dish form
type AddDishController struct {
	store     MenuStore
	nav       navigation.Navigator
	scheduler Scheduler
	opts      AddDishOptions
	logger    logger.Logger

	form    DishForm
	course  models.Course
	errors  map[Field]string
	ack     string
	leaving bool

	view AddDishView
}

func NewAddDishController(store MenuStore, nav navigation.Navigator, scheduler Scheduler, opts AddDishOptions, log logger.Logger) *AddDishController {
	requireDeps("AddDishController", store, nav)
	if scheduler == nil {
		panic("controllers: AddDishController requires a scheduler")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &AddDishController{
		store:     store,
		nav:       nav,
		scheduler: scheduler,
		opts:      opts,
		logger:    log,
		course:    models.Starter,
		errors:    make(map[Field]string),
	}
}

func (c *AddDishController) State() AddDishState {
	errs := make(map[Field]string, len(c.errors))
	for field, msg := range c.errors {
		errs[field] = msg
	}
	return AddDishState{
		Name:            c.form.Name,
		Description:     c.form.Description,
		Price:           c.form.Price,
		Course:          c.course,
		Courses:         models.Courses(),
		Errors:          errs,
		Acknowledgement: c.ack,
		Leaving:         c.leaving,
	}
}

func (c *AddDishController) Bind(view AddDishView) {
	c.view = view
	c.render()
}

func (c *AddDishController) Unbind() {
	c.view = nil
}

func (c *AddDishController) SetName(value string) {
	if c.leaving {
		c.render()
		return
	}
	c.form.Name = value
	c.clearError(FieldName)
}

func (c *AddDishController) SetDescription(value string) {
	if c.leaving {
		c.render()
		return
	}
	c.form.Description = value
	c.clearError(FieldDescription)
}

func (c *AddDishController) SetPrice(value string) {
	if c.leaving {
		c.render()
		return
	}
	c.form.Price = value
	c.clearError(FieldPrice)
}

// SelectCourse sets the course from selector text. Unknown values are
// rejected and the previous course is kept. The form is read-only between a
// successful submit and the navigation back.
func (c *AddDishController) SelectCourse(value string) error {
	if c.leaving {
		c.render()
		return nil
	}
	course, err := models.ParseCourse(value)
	if err != nil {
		c.logger.Warning("AddDishController", "course rejected", map[string]interface{}{
			"value": value,
		})
		c.render()
		return err
	}
	c.course = course
	c.render()
	return nil
}

// Submit validates the form and adds the dish. It reports whether the dish
// was added; on failure the form keeps its contents and shows field errors.
func (c *AddDishController) Submit() bool {
	if c.leaving {
		return false
	}

	price, err := c.form.Validate(c.opts.RequireDescription)
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			c.errors = verrs.Messages()
		}
		c.logger.Debug("AddDishController", "dish rejected", map[string]interface{}{
			"errors": err.Error(),
		})
		c.render()
		return false
	}

	dish := c.store.AddDish(models.DishInput{
		Name:        strings.TrimSpace(c.form.Name),
		Description: strings.TrimSpace(c.form.Description),
		Price:       price,
		Course:      c.course,
	})
	c.logger.Info("AddDishController", "dish added", map[string]interface{}{
		"id":     dish.ID,
		"course": string(dish.Course),
		"price":  dish.Price.StringFixed(2),
	})

	c.clearForm()
	c.ack = DishAddedMessage
	c.leaving = true
	c.render()

	c.scheduler.AfterFunc(c.opts.AckDelay, c.finishSubmit)
	return true
}

// Reset clears the form, errors and any acknowledgement
func (c *AddDishController) Reset() {
	c.clearForm()
	c.ack = ""
	c.leaving = false
	c.render()
}

// Cancel abandons the form and returns to the previous screen
func (c *AddDishController) Cancel() {
	c.Reset()
	c.nav.Back()
}

func (c *AddDishController) finishSubmit() {
	if !c.leaving {
		return
	}
	c.clearForm()
	c.ack = ""
	c.leaving = false
	c.render()

	if c.nav.Current() == navigation.AddItems {
		c.nav.Back()
	}
}

func (c *AddDishController) clearForm() {
	c.form = DishForm{}
	c.course = models.Starter
	c.errors = make(map[Field]string)
}

func (c *AddDishController) clearError(field Field) {
	delete(c.errors, field)
	c.render()
}

func (c *AddDishController) render() {
	if c.view != nil {
		c.view.RenderAddDish(c.State())
	}
}
