package host

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"binblock/internal/config"
)

// FyneHost owns the fyne application and the main window. It is the real
// implementation behind the shell; tests use the Registry with BusWindows
// directly and never construct one.
type FyneHost struct {
	App    fyne.App
	Window fyne.Window
}

func NewFyne(cfg *config.Config) *FyneHost {
	fyneApp := app.NewWithID(config.AppID)

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	return &FyneHost{App: fyneApp, Window: window}
}

// RegisterAccelerator binds the accelerator on the main window's canvas.
// Menu items carry their shortcut here as well as in the rendered menu so
// the binding fires even while the menu is closed.
func (h *FyneHost) RegisterAccelerator(acc Accelerator, fn func()) {
	if acc.IsZero() {
		return
	}
	h.Window.Canvas().AddShortcut(acc.Shortcut(), func(fyne.Shortcut) {
		fn()
	})
}

// Run enters the host event loop and blocks until the application quits.
func (h *FyneHost) Run() {
	h.Window.Show()
	h.App.Run()
}
