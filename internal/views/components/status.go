package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"

	"themed-todo/internal/models"
	"themed-todo/internal/theme"
)

// StatusBar displays the task counts
type StatusBar struct {
	container   *fyne.Container
	statusLabel *canvas.Text
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
	sb.statusLabel = canvas.NewText(models.Status{}.String(), theme.PaletteFor(theme.Light).Foreground)
	sb.statusLabel.TextSize = fynetheme.CaptionTextSize()
	sb.statusLabel.Alignment = fyne.TextAlignLeading
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewPadded(sb.statusLabel)
}

// SetStatus updates the counts shown
func (sb *StatusBar) SetStatus(status models.Status) {
	sb.statusLabel.Text = status.String()
	sb.statusLabel.Refresh()
}

// GetStatus returns the current status text
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// ApplyPalette recolors the status text
func (sb *StatusBar) ApplyPalette(p theme.Palette) {
	sb.statusLabel.Color = p.Foreground
	sb.statusLabel.Refresh()
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
