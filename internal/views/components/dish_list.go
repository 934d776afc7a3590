package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DishListRow is one line of a dish listing with an optional action button
type DishListRow struct {
	Text        string
	ActionLabel string
	OnAction    func()
	Highlight   bool
}

// DishList renders dish rows, or a placeholder message when there are none
type DishList struct {
	container  *fyne.Container
	rows       *fyne.Container
	emptyLabel *widget.Label

	labels  []*widget.Label
	buttons []*widget.Button
}

func NewDishList(emptyMessage string) *DishList {
	dl := &DishList{
		rows:       container.NewVBox(),
		emptyLabel: widget.NewLabel(emptyMessage),
	}
	dl.container = container.NewVBox(dl.emptyLabel, dl.rows)
	return dl
}

// SetRows replaces the listing
func (dl *DishList) SetRows(rows []DishListRow, emptyMessage string) {
	dl.labels = dl.labels[:0]
	dl.buttons = dl.buttons[:0]
	objects := make([]fyne.CanvasObject, 0, len(rows))

	for _, row := range rows {
		label := widget.NewLabel(row.Text)
		label.Wrapping = fyne.TextWrapWord
		if row.Highlight {
			label.Importance = widget.WarningImportance
		}
		dl.labels = append(dl.labels, label)

		if row.ActionLabel == "" {
			objects = append(objects, label)
			continue
		}

		button := widget.NewButtonWithIcon(row.ActionLabel, theme.DeleteIcon(), row.OnAction)
		button.Importance = widget.DangerImportance
		dl.buttons = append(dl.buttons, button)
		objects = append(objects, container.NewBorder(nil, nil, nil, button, label))
	}

	dl.rows.Objects = objects
	dl.rows.Refresh()

	if len(rows) == 0 {
		dl.emptyLabel.SetText(emptyMessage)
		dl.emptyLabel.Show()
	} else {
		dl.emptyLabel.Hide()
	}
}

// Texts returns the text of every visible row
func (dl *DishList) Texts() []string {
	out := make([]string, 0, len(dl.labels))
	for _, label := range dl.labels {
		out = append(out, label.Text)
	}
	return out
}

// ActionButtons returns the row buttons in display order
func (dl *DishList) ActionButtons() []*widget.Button {
	return dl.buttons
}

// EmptyVisible reports whether the placeholder is shown
func (dl *DishList) EmptyVisible() bool {
	return dl.emptyLabel.Visible()
}

func (dl *DishList) GetContainer() *fyne.Container {
	return dl.container
}
