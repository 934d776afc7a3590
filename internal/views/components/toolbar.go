package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar is the header shown above every screen: a back action and the screen title
type Toolbar struct {
	container  *fyne.Container
	backButton *widget.Button
	titleLabel *widget.Label

	backHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.backButton = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		if t.backHandler != nil {
			t.backHandler()
		}
	})
	t.backButton.Importance = widget.LowImportance
	t.backButton.Disable()

	t.titleLabel = widget.NewLabelWithStyle("Menu", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.backButton,
		layout.NewSpacer(),
		t.titleLabel,
		layout.NewSpacer(),
	)
}

// SetBackHandler sets the handler for the back action
func (t *Toolbar) SetBackHandler(handler func()) {
	t.backHandler = handler
}

// SetTitle updates the screen title
func (t *Toolbar) SetTitle(title string) {
	t.titleLabel.SetText(title)
}

// GetTitle returns the screen title
func (t *Toolbar) GetTitle() string {
	return t.titleLabel.Text
}

// SetBackEnabled enables the back action when there is a screen to return to
func (t *Toolbar) SetBackEnabled(enabled bool) {
	if enabled {
		t.backButton.Enable()
	} else {
		t.backButton.Disable()
	}
}

// BackButton exposes the back action widget
func (t *Toolbar) BackButton() *widget.Button {
	return t.backButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
