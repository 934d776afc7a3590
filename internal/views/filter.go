package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"menu-manager/internal/controllers"
	"menu-manager/internal/views/components"
)

// FilterView lists dishes of one course with a remove action per row
type FilterView struct {
	controller *controllers.FilterController
	window     fyne.Window

	container    *fyne.Container
	filterGroup  *widget.RadioGroup
	dishes       *components.DishList
	ackLabel     *widget.Label
	addButton    *widget.Button
	choiceValues map[string]string
	choiceLabels map[string]string

	statusHandler func(string)
	lastAck       string

	confirm       *dialog.ConfirmDialog
	confirmDishID string
	rendering     bool
}

func NewFilterView(controller *controllers.FilterController, window fyne.Window) *FilterView {
	view := &FilterView{
		controller:   controller,
		window:       window,
		choiceValues: make(map[string]string),
		choiceLabels: make(map[string]string),
	}
	view.createComponents()
	view.buildLayout()
	return view
}

func (fv *FilterView) createComponents() {
	labels := make([]string, 0, 4)
	for _, choice := range controllers.FilterChoices() {
		labels = append(labels, choice.Label)
		fv.choiceValues[choice.Label] = choice.Value
		fv.choiceLabels[choice.Value] = choice.Label
	}

	fv.filterGroup = widget.NewRadioGroup(labels, func(label string) {
		if fv.rendering || label == "" {
			return
		}
		_ = fv.controller.SelectFilter(fv.choiceValues[label])
	})
	fv.filterGroup.Horizontal = true
	fv.filterGroup.Required = true

	fv.dishes = components.NewDishList(controllers.NoMatchingDishesMessage)

	fv.ackLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	fv.ackLabel.Importance = widget.SuccessImportance
	fv.ackLabel.Hide()

	fv.addButton = widget.NewButton("Add Dish", fv.controller.AddDish)
	fv.addButton.Importance = widget.HighImportance
}

func (fv *FilterView) buildLayout() {
	fv.container = container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Filter by Course", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			fv.filterGroup,
			widget.NewSeparator(),
		),
		container.NewVBox(fv.ackLabel, fv.addButton),
		nil,
		nil,
		container.NewVScroll(fv.dishes.GetContainer()),
	)
}

// RenderFilter implements controllers.FilterView
func (fv *FilterView) RenderFilter(state controllers.FilterState) {
	fv.rendering = true
	if label := fv.choiceLabels[state.Selected]; fv.filterGroup.Selected != label {
		fv.filterGroup.SetSelected(label)
	}
	fv.rendering = false

	rows := make([]components.DishListRow, 0, len(state.Items))
	for _, item := range state.Items {
		id := item.ID
		rows = append(rows, components.DishListRow{
			Text:        item.ShortLine(),
			ActionLabel: "Remove",
			OnAction:    func() { fv.controller.RequestRemoval(id) },
			Highlight:   item.PendingRemoval,
		})
	}
	fv.dishes.SetRows(rows, state.EmptyMessage)

	if state.Acknowledgement != "" {
		fv.ackLabel.SetText(state.Acknowledgement)
		fv.ackLabel.Show()
	} else {
		fv.ackLabel.Hide()
	}

	if state.Acknowledgement != fv.lastAck {
		fv.lastAck = state.Acknowledgement
		if fv.statusHandler != nil {
			fv.statusHandler(state.Acknowledgement)
		}
	}

	fv.syncPrompt(state.Prompt)
}

// SetStatusHandler receives each acknowledgement change, "" once it clears
func (fv *FilterView) SetStatusHandler(handler func(string)) {
	fv.statusHandler = handler
}

// syncPrompt keeps at most one confirmation dialog open, matching the pending removal
func (fv *FilterView) syncPrompt(prompt *controllers.RemovalPrompt) {
	if prompt == nil {
		if fv.confirm != nil {
			dlg := fv.confirm
			fv.confirm = nil
			fv.confirmDishID = ""
			dlg.Hide()
		}
		return
	}
	if fv.confirm != nil && fv.confirmDishID == prompt.DishID {
		return
	}
	if fv.confirm != nil {
		old := fv.confirm
		fv.confirm = nil
		old.Hide()
	}
	if fv.window == nil {
		return
	}

	var dlg *dialog.ConfirmDialog
	dlg = dialog.NewConfirm(prompt.Title, prompt.Message, func(confirmed bool) {
		if fv.confirm != dlg {
			return
		}
		fv.confirm = nil
		fv.confirmDishID = ""
		if confirmed {
			fv.controller.ConfirmRemoval()
		} else {
			fv.controller.CancelRemoval()
		}
	}, fv.window)
	dlg.SetDismissText(prompt.CancelLabel)
	dlg.SetConfirmText(prompt.ConfirmLabel)

	fv.confirm = dlg
	fv.confirmDishID = prompt.DishID
	dlg.Show()
}

// PromptOpen reports whether a confirmation dialog is showing
func (fv *FilterView) PromptOpen() bool {
	return fv.confirm != nil
}

func (fv *FilterView) GetContainer() fyne.CanvasObject {
	return fv.container
}
