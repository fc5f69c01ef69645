package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (a *Application) setupMenus() {
	tasksMenu := fyne.NewMenu("Tasks",
		fyne.NewMenuItem("Add", a.controller.AddTask),
		fyne.NewMenuItem("Delete Selected", a.controller.DeleteSelected),
		fyne.NewMenuItem("Mark Completed", a.controller.CompleteSelected),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Light/Dark", a.controller.ToggleTheme),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reload Images", func() {
			a.loader.Invalidate()
			a.controller.ReloadAssets(a.controller.CurrentTheme())
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				fmt.Sprintf("%s %s\nAssets: %s", AppName, AppVersion, a.loader.Root()),
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(tasksMenu, viewMenu, helpMenu))
}
