// Package fsaccess is the filesystem capability plugin. Every path is
// checked against a scope of allowed directory roots before any read or
// write; paths outside the scope fail with ErrScopeDenied regardless of OS
// permissions.
package fsaccess

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"binblock/internal/logger"
	"binblock/internal/plugin"
)

const Name = "fs"

var ErrScopeDenied = errors.New("path outside filesystem scope")

type Plugin struct {
	scope  *Scope
	logger logger.Logger
}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil {
		return errors.New("fsaccess: nil plugin context")
	}
	if ctx.Config == nil {
		return errors.New("fsaccess: no configuration")
	}

	scope, err := NewScope(ctx.Config.ScopeRoots())
	if err != nil {
		return fmt.Errorf("fsaccess: %w", err)
	}

	p.scope = scope
	p.logger = ctx.Logger
	return nil
}

// ReadTextFile reads an in-scope file as a string.
func (p *Plugin) ReadTextFile(path string) (string, error) {
	abs, err := p.scope.Resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", abs, err)
	}
	return string(data), nil
}

// WriteTextFile writes data to an in-scope file, creating parent
// directories as needed.
func (p *Plugin) WriteTextFile(path, data string) error {
	abs, err := p.scope.Resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	if err := os.WriteFile(abs, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	return nil
}

// Exists reports whether an in-scope path exists.
func (p *Plugin) Exists(path string) (bool, error) {
	abs, err := p.scope.Resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Scope is the set of directory roots the plugin may touch.
type Scope struct {
	roots []string
}

func NewScope(roots []string) (*Scope, error) {
	if len(roots) == 0 {
		return nil, errors.New("empty filesystem scope")
	}

	resolved := make([]string, 0, len(roots))
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("scope root %q: %w", root, err)
		}
		resolved = append(resolved, filepath.Clean(abs))
	}
	return &Scope{roots: resolved}, nil
}

// Resolve cleans the path and verifies it sits under one of the scope
// roots. Relative segments are resolved before checking, so "../" cannot
// escape.
func (s *Scope) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	abs = filepath.Clean(abs)

	for _, root := range s.roots {
		if abs == root || strings.HasPrefix(abs, root+string(filepath.Separator)) {
			return abs, nil
		}
	}
	return "", fmt.Errorf("%q: %w", path, ErrScopeDenied)
}
