package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"themed-todo/internal/assets"
	"themed-todo/internal/models"
	"themed-todo/internal/theme"
	"themed-todo/internal/views/components"
)

// WindowTitle is shown in the title bar and the header
const WindowTitle = "To-Do List"

// MainView represents the main application window
type MainView struct {
	// UI Components
	app           fyne.App
	window        fyne.Window
	mainContainer *fyne.Container
	background    *canvas.Rectangle
	paper         *canvas.Image
	header        *components.Header
	entry         *widget.Entry
	addButton     *widget.Button
	taskList      *components.TaskList
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar

	warning      dialog.Dialog
	currentTheme theme.Theme

	// Event handlers - connected to controller
	addHandler func()
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(app fyne.App, window fyne.Window, placeholder string) *MainView {
	view := &MainView{
		app:    app,
		window: window,
	}

	view.initializeComponents(placeholder)
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(placeholder string) {
	palette := theme.PaletteFor(theme.Light)

	mv.background = canvas.NewRectangle(palette.Background)
	mv.paper = canvas.NewImageFromImage(nil)
	mv.paper.FillMode = canvas.ImageFillStretch

	mv.header = components.NewHeader(WindowTitle)

	mv.entry = widget.NewEntry()
	mv.entry.SetPlaceHolder(placeholder)
	mv.entry.OnSubmitted = func(string) {
		mv.onAdd()
	}
	mv.addButton = widget.NewButton("Add", mv.onAdd)

	mv.taskList = components.NewTaskList()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	entryRow := container.NewBorder(nil, nil, nil, mv.addButton, mv.entry)

	topArea := container.NewVBox(
		mv.header.GetContainer(),
		entryRow,
	)

	bottomArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	content := container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.taskList.GetContainer(),
	)

	mv.mainContainer = container.NewStack(
		mv.background,
		mv.paper,
		container.NewPadded(content),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) onAdd() {
	if mv.addHandler != nil {
		mv.addHandler()
	}
}

// Event handler setters - called by controller

// SetAddHandler sets the handler for the add button and the Enter key
func (mv *MainView) SetAddHandler(handler func()) {
	mv.addHandler = handler
}

// SetDeleteHandler sets the handler for delete requests
func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.toolbar.SetDeleteHandler(handler)
}

// SetCompleteHandler sets the handler for complete requests
func (mv *MainView) SetCompleteHandler(handler func()) {
	mv.toolbar.SetCompleteHandler(handler)
}

// SetToggleThemeHandler sets the handler for the theme button
func (mv *MainView) SetToggleThemeHandler(handler func()) {
	mv.toolbar.SetToggleThemeHandler(handler)
}

// UI update methods - called by controller on the UI goroutine

// InputText returns the raw entry text
func (mv *MainView) InputText() string {
	return mv.entry.Text
}

// ClearInput empties the entry so the placeholder shows again
func (mv *MainView) ClearInput() {
	mv.entry.SetText("")
}

// SelectedIndex returns the selected row or models.NoSelection
func (mv *MainView) SelectedIndex() int {
	return mv.taskList.Selected()
}

// SelectedID returns the ID of the selected task, false when nothing is selected
func (mv *MainView) SelectedID() (uuid.UUID, bool) {
	return mv.taskList.SelectedID()
}

// ClearSelection unselects the list
func (mv *MainView) ClearSelection() {
	mv.taskList.ClearSelection()
}

// SetTasks re-renders the list
func (mv *MainView) SetTasks(tasks []models.Task) {
	mv.taskList.SetTasks(tasks)
}

// SetStatus updates the status line
func (mv *MainView) SetStatus(status models.Status) {
	mv.statusBar.SetStatus(status)
}

// ShowWarning displays a modal warning with the theme's warning icon
func (mv *MainView) ShowWarning(title, message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	icon := widget.NewIcon(fynetheme.WarningIcon())
	content := container.NewBorder(nil, nil, icon, nil, label)

	mv.warning = dialog.NewCustom(title, "OK", content, mv.window)
	mv.warning.Show()
}

// ApplyTheme re-skins every element for t using its palette and icon set
func (mv *MainView) ApplyTheme(t theme.Theme, icons *assets.IconSet) {
	palette := theme.PaletteFor(t)
	mv.currentTheme = t

	mv.app.Settings().SetTheme(theme.New(palette))

	mv.background.FillColor = palette.Background
	mv.background.Refresh()

	paper := icons.Get(assets.Background)
	mv.paper.Image = paper.Image
	mv.paper.Refresh()
	mv.taskList.SetPaper(paper.Image)

	mv.header.SetLogo(icons.Get(assets.Logo).Image)
	mv.header.ApplyPalette(palette)
	mv.addButton.SetIcon(icons.Resource(assets.Add))
	mv.toolbar.SetIcons(icons)
	mv.taskList.ApplyPalette(palette)
	mv.statusBar.ApplyPalette(palette)

	mv.mainContainer.Refresh()
}

// CurrentTheme returns the theme last applied
func (mv *MainView) CurrentTheme() theme.Theme {
	return mv.currentTheme
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
