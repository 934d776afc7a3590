package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"menu-manager/internal/models"
)

const readyStatus = "Ready"

// StatusBar displays acknowledgements and a summary of the menu
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	menuInfo    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.menuInfo = widget.NewLabel("No dishes")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.menuInfo,
	)
}

// SetStatus updates the main status message; empty text restores "Ready"
func (sb *StatusBar) SetStatus(status string) {
	if status == "" {
		status = readyStatus
	}
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetMenuInfo shows dish counts per course
func (sb *StatusBar) SetMenuInfo(stats models.MenuStats) {
	if stats.Total == 0 {
		sb.menuInfo.SetText("No dishes")
		return
	}
	sb.menuInfo.SetText(fmt.Sprintf("%d dishes (%d/%d/%d)",
		stats.Total,
		stats.PerCourse[models.Starter],
		stats.PerCourse[models.Main],
		stats.PerCourse[models.Dessert],
	))
}

// GetMenuInfo returns the summary text
func (sb *StatusBar) GetMenuInfo() string {
	return sb.menuInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
