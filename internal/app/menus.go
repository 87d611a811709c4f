package app

import (
	"shared-data/internal/views"

	"fyne.io/fyne/v2"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Data", func() {
			_ = a.editView.Save()
		}),
	)

	pagesMenu := fyne.NewMenu("Pages",
		fyne.NewMenuItem("Page A", func() {
			_ = a.controller.Activate(views.EditViewName)
		}),
		fyne.NewMenuItem("Page B", func() {
			_ = a.controller.Activate(views.ViewOnlyViewName)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, pagesMenu))
}
