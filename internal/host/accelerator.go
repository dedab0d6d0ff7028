package host

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Accelerator is a parsed key binding. The zero value means "no binding".
type Accelerator struct {
	Key      fyne.KeyName
	Modifier fyne.KeyModifier
}

// IsZero reports whether the accelerator is unbound.
func (a Accelerator) IsZero() bool {
	return a.Key == "" && a.Modifier == 0
}

// Shortcut returns the desktop shortcut for this accelerator.
func (a Accelerator) Shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: a.Key, Modifier: a.Modifier}
}

// ParseAccelerator parses an abstract binding string such as "CmdOrCtrl+Z"
// or "CmdOrCtrl+Shift+Z". "CmdOrCtrl" maps to the platform shortcut
// modifier (Cmd on macOS, Ctrl elsewhere); platform normalization is the
// host framework's job, not ours. An empty string parses to the zero
// accelerator. Unknown tokens are an error so a bad binding fails at
// startup rather than silently not firing.
func ParseAccelerator(s string) (Accelerator, error) {
	if s == "" {
		return Accelerator{}, nil
	}

	var acc Accelerator
	for _, token := range strings.Split(s, "+") {
		switch strings.ToLower(token) {
		case "cmdorctrl":
			acc.Modifier |= fyne.KeyModifierShortcutDefault
		case "shift":
			acc.Modifier |= fyne.KeyModifierShift
		case "alt":
			acc.Modifier |= fyne.KeyModifierAlt
		default:
			if acc.Key != "" {
				return Accelerator{}, fmt.Errorf("accelerator %q has more than one key", s)
			}
			key, err := parseKey(token)
			if err != nil {
				return Accelerator{}, fmt.Errorf("accelerator %q: %w", s, err)
			}
			acc.Key = key
		}
	}

	if acc.Key == "" {
		return Accelerator{}, fmt.Errorf("accelerator %q has no key", s)
	}
	return acc, nil
}

func parseKey(token string) (fyne.KeyName, error) {
	if len(token) != 1 {
		return "", fmt.Errorf("unknown key %q", token)
	}

	c := token[0]
	switch {
	case c >= 'a' && c <= 'z':
		return fyne.KeyName(c - ('a' - 'A')), nil
	case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return fyne.KeyName(c), nil
	}
	return "", fmt.Errorf("unknown key %q", token)
}
