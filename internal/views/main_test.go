package views

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themed-todo/internal/assets"
	"themed-todo/internal/logger"
	"themed-todo/internal/models"
	"themed-todo/internal/theme"
)

func newTestView(t *testing.T) (*MainView, *assets.Loader) {
	t.Helper()
	app := test.NewTempApp(t)
	window := app.NewWindow(WindowTitle)
	t.Cleanup(window.Close)

	loader := assets.NewLoader(filepath.Join(t.TempDir(), "assets"), logger.NewNop())
	return NewMainView(app, window, "Write a task..."), loader
}

func TestMainView_AddButtonAndEnterCallHandler(t *testing.T) {
	view, _ := newTestView(t)
	calls := 0
	view.SetAddHandler(func() { calls++ })

	test.Type(view.entry, "Buy milk")
	assert.Equal(t, "Buy milk", view.InputText())

	test.Tap(view.addButton)
	view.entry.OnSubmitted(view.entry.Text)
	assert.Equal(t, 2, calls)

	view.ClearInput()
	assert.Equal(t, "", view.InputText())
	assert.Equal(t, "Write a task...", view.entry.PlaceHolder)
}

func TestMainView_ToolbarHandlers(t *testing.T) {
	view, _ := newTestView(t)
	var got []string
	view.SetDeleteHandler(func() { got = append(got, "delete") })
	view.SetCompleteHandler(func() { got = append(got, "complete") })
	view.SetToggleThemeHandler(func() { got = append(got, "theme") })

	test.Tap(view.toolbar.DeleteButton)
	test.Tap(view.toolbar.CompleteButton)
	test.Tap(view.toolbar.ThemeButton)

	assert.Equal(t, []string{"delete", "complete", "theme"}, got)
}

func TestMainView_SelectionAndTasks(t *testing.T) {
	view, _ := newTestView(t)
	assert.Equal(t, models.NoSelection, view.SelectedIndex())

	list := models.NewTaskList("")
	_, err := list.Add("Buy milk")
	require.NoError(t, err)
	_, err = list.Add("Walk dog")
	require.NoError(t, err)
	_, err = list.Complete(1)
	require.NoError(t, err)

	_, ok := view.SelectedID()
	assert.False(t, ok)

	view.SetTasks(list.Tasks())
	view.taskList.Select(1)
	assert.Equal(t, 1, view.SelectedIndex())
	assert.Equal(t, "✓ Walk dog", view.taskList.RowText(1))

	walk, err := list.At(1)
	require.NoError(t, err)
	id, ok := view.SelectedID()
	assert.True(t, ok)
	assert.Equal(t, walk.ID, id)

	view.ClearSelection()
	assert.Equal(t, models.NoSelection, view.SelectedIndex())
	_, ok = view.SelectedID()
	assert.False(t, ok)

	view.SetTasks(nil)
	assert.Equal(t, "", view.taskList.RowText(0))
}

func TestMainView_SetStatus(t *testing.T) {
	view, _ := newTestView(t)

	view.SetStatus(models.Status{Total: 2, Completed: 1})

	assert.Equal(t, "Tasks: 2 | Completed: 1", view.statusBar.GetStatus())
}

func TestMainView_ApplyTheme(t *testing.T) {
	view, loader := newTestView(t)

	view.ApplyTheme(theme.Dark, loader.Load(theme.Dark))

	dark := theme.PaletteFor(theme.Dark)
	assert.Equal(t, theme.Dark, view.CurrentTheme())
	assert.Equal(t, dark.Background, view.background.FillColor)
	assert.Equal(t, dark.Background, view.app.Settings().Theme().Color(fynetheme.ColorNameBackground, fynetheme.VariantLight))
	assert.NotNil(t, view.addButton.Icon)
	assert.NotNil(t, view.toolbar.ThemeButton.Icon)

	view.ApplyTheme(theme.Light, loader.Load(theme.Light))
	assert.Equal(t, theme.PaletteFor(theme.Light).Background, view.background.FillColor)
}

func TestMainView_ShowWarning(t *testing.T) {
	view, _ := newTestView(t)

	view.ShowWarning("Warning", "Enter a task!")

	require.NotNil(t, view.warning)
	assert.NotNil(t, view.window.Canvas().Overlays().Top())

	view.warning.Hide()
	assert.Nil(t, view.window.Canvas().Overlays().Top())
}
