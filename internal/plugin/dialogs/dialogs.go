// Package dialogs exposes the host's native file dialogs as a capability
// plugin. Callbacks receive an empty path and nil error when the user
// cancels.
package dialogs

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"binblock/internal/logger"
	"binblock/internal/plugin"
)

const Name = "dialog"

type Plugin struct {
	window fyne.Window
	logger logger.Logger
}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil {
		return errors.New("dialogs: nil plugin context")
	}
	p.window = ctx.Window
	p.logger = ctx.Logger
	return nil
}

// OpenFile shows the native open dialog. The callback runs on the UI
// thread with the chosen path.
func (p *Plugin) OpenFile(cb func(path string, err error)) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			cb("", err)
			return
		}
		if reader == nil {
			cb("", nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		cb(path, nil)
	}, p.window)
}

// SaveFile shows the native save dialog with a suggested file name.
func (p *Plugin) SaveFile(suggested string, cb func(path string, err error)) {
	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			cb("", err)
			return
		}
		if writer == nil {
			cb("", nil)
			return
		}
		path := writer.URI().Path()
		writer.Close()
		cb(path, nil)
	}, p.window)
	if suggested != "" {
		fileSave.SetFileName(suggested)
	}
	fileSave.Show()
}

// ShowInfo displays an informational dialog. The About entry goes through
// here.
func (p *Plugin) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}
