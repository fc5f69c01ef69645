package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"themed-todo/internal/models"
	"themed-todo/internal/theme"
)

// TaskList renders tasks in a scrollable, single-selection list on top of
// a themed paper background.
type TaskList struct {
	container  *fyne.Container
	list       *widget.List
	background *canvas.Rectangle
	paper      *canvas.Image

	tasks    []models.Task
	selected int
	palette  theme.Palette
}

// NewTaskList creates an empty task list
func NewTaskList() *TaskList {
	tl := &TaskList{
		selected: models.NoSelection,
		palette:  theme.PaletteFor(theme.Light),
	}
	tl.createComponents()
	tl.buildLayout()
	return tl
}

func (tl *TaskList) createComponents() {
	tl.list = widget.NewList(
		func() int {
			return len(tl.tasks)
		},
		func() fyne.CanvasObject {
			text := canvas.NewText("", tl.palette.Foreground)
			text.TextSize = fynetheme.TextSize() + 2
			return container.NewPadded(text)
		},
		tl.updateItem,
	)
	tl.list.OnSelected = func(id widget.ListItemID) {
		tl.selected = id
	}
	tl.list.OnUnselected = func(id widget.ListItemID) {
		if tl.selected == id {
			tl.selected = models.NoSelection
		}
	}

	tl.background = canvas.NewRectangle(tl.palette.ListBackground)
	tl.paper = canvas.NewImageFromImage(nil)
	tl.paper.FillMode = canvas.ImageFillStretch
	tl.paper.Translucency = 0.3
}

func (tl *TaskList) buildLayout() {
	tl.container = container.NewStack(tl.background, tl.paper, tl.list)
}

// updateItem renders a completed task with its check prefix in the muted color
func (tl *TaskList) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(tl.tasks) {
		return
	}
	task := tl.tasks[id]

	text := item.(*fyne.Container).Objects[0].(*canvas.Text)
	text.Text = task.DisplayText()
	if task.Completed {
		text.Color = tl.palette.Muted
	} else {
		text.Color = tl.palette.Foreground
	}
	text.Refresh()
}

// SetTasks replaces the rendered tasks
func (tl *TaskList) SetTasks(tasks []models.Task) {
	tl.tasks = tasks
	if tl.selected >= len(tasks) {
		tl.selected = models.NoSelection
	}
	tl.list.Refresh()
}

// Selected returns the selected index or models.NoSelection
func (tl *TaskList) Selected() int {
	return tl.selected
}

// SelectedID returns the ID of the selected task
func (tl *TaskList) SelectedID() (uuid.UUID, bool) {
	if tl.selected < 0 || tl.selected >= len(tl.tasks) {
		return uuid.Nil, false
	}
	return tl.tasks[tl.selected].ID, true
}

// Select highlights the task at index
func (tl *TaskList) Select(index int) {
	tl.list.Select(index)
}

// ClearSelection unselects every row
func (tl *TaskList) ClearSelection() {
	tl.list.UnselectAll()
	tl.selected = models.NoSelection
}

// RowText returns the rendered text of a row, or "" if out of range
func (tl *TaskList) RowText(index int) string {
	if index < 0 || index >= len(tl.tasks) {
		return ""
	}
	return tl.tasks[index].DisplayText()
}

// ApplyPalette recolors the list and its rows
func (tl *TaskList) ApplyPalette(p theme.Palette) {
	tl.palette = p
	tl.background.FillColor = p.ListBackground
	tl.background.Refresh()
	tl.list.Refresh()
}

// SetPaper sets the background image drawn behind the rows
func (tl *TaskList) SetPaper(paper image.Image) {
	tl.paper.Image = paper
	tl.paper.Refresh()
}

func (tl *TaskList) GetContainer() *fyne.Container {
	return tl.container
}
