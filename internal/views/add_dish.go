package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"menu-manager/internal/controllers"
	"menu-manager/internal/models"
)

// AddDishView is the form for new dishes
type AddDishView struct {
	controller *controllers.AddDishController

	container        *fyne.Container
	nameEntry        *widget.Entry
	descriptionEntry *widget.Entry
	priceEntry       *widget.Entry
	courseSelect     *widget.Select
	errorLabels      map[controllers.Field]*widget.Label
	ackLabel         *widget.Label
	submitButton     *widget.Button

	statusHandler func(string)
	lastAck       string

	// set while RenderAddDish pushes state into widgets so change callbacks
	// do not echo back into the controller
	rendering bool
}

func NewAddDishView(controller *controllers.AddDishController) *AddDishView {
	view := &AddDishView{controller: controller}
	view.createComponents()
	view.buildLayout()
	return view
}

func (av *AddDishView) createComponents() {
	av.nameEntry = widget.NewEntry()
	av.nameEntry.SetPlaceHolder("Enter Dish Name")
	av.nameEntry.OnChanged = func(text string) {
		if !av.rendering {
			av.controller.SetName(text)
		}
	}

	av.descriptionEntry = widget.NewEntry()
	av.descriptionEntry.SetPlaceHolder("Enter Description")
	av.descriptionEntry.OnChanged = func(text string) {
		if !av.rendering {
			av.controller.SetDescription(text)
		}
	}

	av.priceEntry = widget.NewEntry()
	av.priceEntry.SetPlaceHolder("Enter Price")
	av.priceEntry.OnChanged = func(text string) {
		if !av.rendering {
			av.controller.SetPrice(text)
		}
	}

	labels := make([]string, 0, 3)
	for _, course := range models.Courses() {
		labels = append(labels, course.Label())
	}
	av.courseSelect = widget.NewSelect(labels, func(label string) {
		if !av.rendering {
			_ = av.controller.SelectCourse(label)
		}
	})
	av.courseSelect.PlaceHolder = "Select a course"

	av.errorLabels = make(map[controllers.Field]*widget.Label)
	for _, field := range []controllers.Field{controllers.FieldName, controllers.FieldDescription, controllers.FieldPrice} {
		label := widget.NewLabel("")
		label.Importance = widget.DangerImportance
		label.Hide()
		av.errorLabels[field] = label
	}

	av.ackLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	av.ackLabel.Importance = widget.SuccessImportance
	av.ackLabel.Hide()

	av.submitButton = widget.NewButton("Add Dish", func() {
		av.controller.Submit()
	})
	av.submitButton.Importance = widget.HighImportance
}

func (av *AddDishView) buildLayout() {
	av.container = container.NewVBox(
		av.nameEntry,
		av.errorLabels[controllers.FieldName],
		av.descriptionEntry,
		av.errorLabels[controllers.FieldDescription],
		av.priceEntry,
		av.errorLabels[controllers.FieldPrice],
		av.courseSelect,
		av.submitButton,
		av.ackLabel,
	)
}

// RenderAddDish implements controllers.AddDishView
func (av *AddDishView) RenderAddDish(state controllers.AddDishState) {
	av.rendering = true
	defer func() { av.rendering = false }()

	setEntryText(av.nameEntry, state.Name)
	setEntryText(av.descriptionEntry, state.Description)
	setEntryText(av.priceEntry, state.Price)
	if av.courseSelect.Selected != state.Course.Label() {
		av.courseSelect.SetSelected(state.Course.Label())
	}

	for field, label := range av.errorLabels {
		if msg, ok := state.Errors[field]; ok {
			label.SetText(msg)
			label.Show()
		} else {
			label.SetText("")
			label.Hide()
		}
	}

	if state.Acknowledgement != "" {
		av.ackLabel.SetText(state.Acknowledgement)
		av.ackLabel.Show()
	} else {
		av.ackLabel.Hide()
	}

	inputs := []fyne.Disableable{av.nameEntry, av.descriptionEntry, av.priceEntry, av.courseSelect, av.submitButton}
	for _, input := range inputs {
		if state.Leaving {
			input.Disable()
		} else {
			input.Enable()
		}
	}

	if state.Acknowledgement != av.lastAck {
		av.lastAck = state.Acknowledgement
		if av.statusHandler != nil {
			av.statusHandler(state.Acknowledgement)
		}
	}
}

// SetStatusHandler receives each acknowledgement change, "" once it clears
func (av *AddDishView) SetStatusHandler(handler func(string)) {
	av.statusHandler = handler
}

func (av *AddDishView) GetContainer() fyne.CanvasObject {
	return av.container
}

func setEntryText(entry *widget.Entry, text string) {
	if entry.Text != text {
		entry.SetText(text)
	}
}
