package controllers

import (
	"errors"

	"github.com/google/uuid"

	"themed-todo/internal/assets"
	"themed-todo/internal/logger"
	"themed-todo/internal/models"
	"themed-todo/internal/theme"
)

const component = "MainController"

// Warning texts shown for validation errors
const (
	WarningTitle      = "Warning"
	MsgEnterTask      = "Enter a task!"
	MsgSelectDelete   = "Select a task to delete"
	MsgSelectComplete = "Select a task to mark as completed"
	MsgTaskMissing    = "The selected task no longer exists"
)

// TaskView is the surface the controller drives. *views.MainView implements it.
type TaskView interface {
	InputText() string
	ClearInput()
	SelectedID() (uuid.UUID, bool)
	ClearSelection()
	SetTasks(tasks []models.Task)
	SetStatus(status models.Status)
	ShowWarning(title, message string)
	ApplyTheme(t theme.Theme, icons *assets.IconSet)

	SetAddHandler(handler func())
	SetDeleteHandler(handler func())
	SetCompleteHandler(handler func())
	SetToggleThemeHandler(handler func())
}

// IconSource resolves a theme's images. *assets.Loader implements it.
type IconSource interface {
	Load(t theme.Theme) *assets.IconSet
}

// MainController owns the task list and the current theme. Every method
// runs on the UI goroutine.
type MainController struct {
	tasks  *models.TaskList
	icons  IconSource
	logger logger.Logger

	mainView     TaskView
	currentTheme theme.Theme
}

// NewMainController creates a controller starting with the given theme
func NewMainController(tasks *models.TaskList, icons IconSource, log logger.Logger, initial theme.Theme) *MainController {
	return &MainController{
		tasks:        tasks,
		icons:        icons,
		logger:       log,
		currentTheme: initial,
	}
}

// SetMainView connects the view, applies the current theme and renders the list
func (mc *MainController) SetMainView(view TaskView) {
	mc.mainView = view
	mc.setupViewEventHandlers()

	mc.applyTheme()
	mc.refresh()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddHandler(mc.AddTask)
	mc.mainView.SetDeleteHandler(mc.DeleteSelected)
	mc.mainView.SetCompleteHandler(mc.CompleteSelected)
	mc.mainView.SetToggleThemeHandler(mc.ToggleTheme)
}

// AddTask appends the entered text as a new task
func (mc *MainController) AddTask() {
	task, err := mc.tasks.Add(mc.mainView.InputText())
	if err != nil {
		mc.handleValidation(err, MsgEnterTask)
		return
	}

	mc.mainView.ClearInput()
	mc.refresh()

	mc.logger.Debug(component, "task added", map[string]interface{}{
		"id": task.ID.String(),
	})
}

// DeleteSelected removes the selected task
func (mc *MainController) DeleteSelected() {
	id, err := mc.selectedID()
	if err != nil {
		mc.handleValidation(err, MsgSelectDelete)
		return
	}

	if _, err := mc.tasks.DeleteByID(id); err != nil {
		mc.handleValidation(err, MsgSelectDelete)
		return
	}

	mc.mainView.ClearSelection()
	mc.refresh()

	mc.logger.Debug(component, "task deleted", map[string]interface{}{
		"id": id.String(),
	})
}

// CompleteSelected marks the selected task as completed. Completed tasks stay completed.
func (mc *MainController) CompleteSelected() {
	id, err := mc.selectedID()
	if err != nil {
		mc.handleValidation(err, MsgSelectComplete)
		return
	}

	changed, err := mc.tasks.CompleteByID(id)
	if err != nil {
		mc.handleValidation(err, MsgSelectComplete)
		return
	}
	if !changed {
		return
	}

	mc.refresh()

	mc.logger.Debug(component, "task completed", map[string]interface{}{
		"id": id.String(),
	})
}

// selectedID resolves the view's selection to a task ID
func (mc *MainController) selectedID() (uuid.UUID, error) {
	id, ok := mc.mainView.SelectedID()
	if !ok {
		return uuid.Nil, models.ErrNoSelection
	}
	return id, nil
}

// ToggleTheme switches between light and dark and re-skins the view
func (mc *MainController) ToggleTheme() {
	mc.currentTheme = mc.currentTheme.Toggle()
	mc.applyTheme()

	mc.logger.Info(component, "theme changed", map[string]interface{}{
		"theme": mc.currentTheme.String(),
	})
}

// ReloadAssets re-applies the current theme after its images changed on disk
func (mc *MainController) ReloadAssets(changed theme.Theme) {
	if changed != mc.currentTheme || mc.mainView == nil {
		return
	}
	mc.applyTheme()
}

// CurrentTheme returns the active theme
func (mc *MainController) CurrentTheme() theme.Theme {
	return mc.currentTheme
}

// Status returns the current task counts
func (mc *MainController) Status() models.Status {
	return mc.tasks.Status()
}

func (mc *MainController) applyTheme() {
	mc.mainView.ApplyTheme(mc.currentTheme, mc.icons.Load(mc.currentTheme))
}

// refresh re-renders the list and recomputes the status line
func (mc *MainController) refresh() {
	mc.mainView.SetTasks(mc.tasks.Tasks())
	mc.mainView.SetStatus(mc.tasks.Status())
}

// handleValidation shows a warning; the task list is left unchanged
func (mc *MainController) handleValidation(err error, message string) {
	if errors.Is(err, models.ErrTaskNotFound) {
		message = MsgTaskMissing
	}

	mc.logger.Warning(component, "operation rejected", map[string]interface{}{
		"reason": err.Error(),
	})
	mc.mainView.ShowWarning(WarningTitle, message)
}
