// Package opener is the external-opener capability plugin: URLs go to the
// default browser through the host, local paths to the platform file
// manager.
package opener

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"fyne.io/fyne/v2"

	"binblock/internal/logger"
	"binblock/internal/plugin"
)

const Name = "opener"

var ErrUnsupportedScheme = errors.New("unsupported url scheme")

type Plugin struct {
	app    fyne.App
	logger logger.Logger
}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil {
		return errors.New("opener: nil plugin context")
	}
	p.app = ctx.App
	p.logger = ctx.Logger
	return nil
}

// OpenURL opens an http or https URL in the default browser. Other schemes
// are refused so the capability cannot be used to launch arbitrary
// handlers.
func (p *Plugin) OpenURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("open url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("open url %q: %w", raw, ErrUnsupportedScheme)
	}
	if p.app == nil {
		return errors.New("opener: no host application")
	}
	return p.app.OpenURL(u)
}

// RevealPath opens an existing absolute path in the platform file manager.
func (p *Plugin) RevealPath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("reveal %q: path must be absolute", path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("reveal %q: %w", path, err)
	}
	return revealCommand(path).Start()
}

func revealCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("explorer", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
