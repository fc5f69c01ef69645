package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"themed-todo/internal/assets"
)

// Toolbar holds the delete, complete and theme-toggle actions
type Toolbar struct {
	container      *fyne.Container
	DeleteButton   *widget.Button
	CompleteButton *widget.Button
	ThemeButton    *widget.Button

	deleteHandler      func()
	completeHandler    func()
	toggleThemeHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.DeleteButton = widget.NewButton("Delete", t.onDelete)
	t.CompleteButton = widget.NewButton("Complete", t.onComplete)
	t.ThemeButton = widget.NewButton("Light/Dark", t.onToggleTheme)

	actions := container.NewGridWithColumns(2, t.DeleteButton, t.CompleteButton)
	t.container = container.NewVBox(
		actions,
		container.NewCenter(t.ThemeButton),
	)
}

// SetIcons swaps the button icons for the theme's set
func (t *Toolbar) SetIcons(icons *assets.IconSet) {
	t.DeleteButton.SetIcon(icons.Resource(assets.Delete))
	t.CompleteButton.SetIcon(icons.Resource(assets.Complete))
	t.ThemeButton.SetIcon(icons.Resource(assets.ThemeToggle))
}

func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

func (t *Toolbar) SetCompleteHandler(handler func()) {
	t.completeHandler = handler
}

func (t *Toolbar) SetToggleThemeHandler(handler func()) {
	t.toggleThemeHandler = handler
}

func (t *Toolbar) onDelete() {
	if t.deleteHandler != nil {
		t.deleteHandler()
	}
}

func (t *Toolbar) onComplete() {
	if t.completeHandler != nil {
		t.completeHandler()
	}
}

func (t *Toolbar) onToggleTheme() {
	if t.toggleThemeHandler != nil {
		t.toggleThemeHandler()
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
