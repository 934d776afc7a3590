package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"menu-manager/internal/controllers"
	"menu-manager/internal/models"
	"menu-manager/internal/views/components"
)

// HomeView shows the average price per course and every dish
type HomeView struct {
	controller *controllers.HomeController

	container     *fyne.Container
	averageLabels []*widget.Label
	dishes        *components.DishList
	addButton     *widget.Button
	filterButton  *widget.Button
}

func NewHomeView(controller *controllers.HomeController) *HomeView {
	view := &HomeView{controller: controller}
	view.createComponents()
	view.buildLayout()
	return view
}

func (hv *HomeView) createComponents() {
	hv.averageLabels = make([]*widget.Label, 0, 3)
	for range models.Courses() {
		label := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		hv.averageLabels = append(hv.averageLabels, label)
	}

	hv.dishes = components.NewDishList(controllers.EmptyMenuMessage)

	hv.addButton = widget.NewButton("Add Dish", hv.controller.AddDish)
	hv.addButton.Importance = widget.HighImportance
	hv.filterButton = widget.NewButton("Filtered Course", hv.controller.FilterCourses)
	hv.filterButton.Importance = widget.HighImportance
}

func (hv *HomeView) buildLayout() {
	averages := container.NewVBox(widget.NewLabelWithStyle("Average Prices", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	for _, label := range hv.averageLabels {
		averages.Add(label)
	}

	hv.container = container.NewBorder(
		container.NewVBox(averages, widget.NewSeparator(), widget.NewLabelWithStyle("All Dishes:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})),
		container.NewGridWithColumns(2, hv.addButton, hv.filterButton),
		nil,
		nil,
		container.NewVScroll(hv.dishes.GetContainer()),
	)
}

// RenderHome implements controllers.HomeView
func (hv *HomeView) RenderHome(state controllers.HomeState) {
	for i, avg := range state.Averages {
		if i < len(hv.averageLabels) {
			hv.averageLabels[i].SetText(avg.Line())
		}
	}

	rows := make([]components.DishListRow, 0, len(state.Dishes))
	for _, dish := range state.Dishes {
		rows = append(rows, components.DishListRow{Text: dish.Line()})
	}
	hv.dishes.SetRows(rows, state.EmptyMessage)
}

func (hv *HomeView) GetContainer() fyne.CanvasObject {
	return hv.container
}
