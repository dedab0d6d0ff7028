// Package menu holds the shell's declarative menu model. The model is built
// once at startup, validated, rendered to the host's menu subsystem, and
// never mutated afterwards.
package menu

import (
	"fmt"
	"strings"

	"binblock/internal/config"
	"binblock/internal/host"
)

// Stable item identifiers. Consumers of the menu-event channel switch on
// these; unknown ids are no-ops on their side.
const (
	IDUndo      = "edit:undo"
	IDRedo      = "edit:redo"
	IDClear     = "edit:clear"
	IDResetView = "view:reset"
)

// Item is a single activatable menu entry. Accelerator is the abstract
// binding string ("CmdOrCtrl+Z"); empty means unbound.
type Item struct {
	ID          string
	Label       string
	Accelerator string
}

// Entry is one slot in a submenu: either an item or a separator.
type Entry struct {
	Item      Item
	Separator bool
}

// Submenu is a titled, ordered sequence of entries.
type Submenu struct {
	Title   string
	Entries []Entry
}

// Menu is the full menu bar: the About entry first, then the submenus in
// declaration order.
type Menu struct {
	AboutLabel string
	Submenus   []Submenu
}

// Shell returns the shell's fixed menu. Order is load-bearing: About, Edit
// (Undo, Redo, separator, Clear Grid), View (Reset View). The separator
// groups the reversible history actions apart from the destructive clear.
func Shell() Menu {
	return Menu{
		AboutLabel: config.AppName,
		Submenus: []Submenu{
			{
				Title: "Edit",
				Entries: []Entry{
					{Item: Item{ID: IDUndo, Label: "Undo", Accelerator: "CmdOrCtrl+Z"}},
					{Item: Item{ID: IDRedo, Label: "Redo", Accelerator: "CmdOrCtrl+Shift+Z"}},
					{Separator: true},
					{Item: Item{ID: IDClear, Label: "Clear Grid"}},
				},
			},
			{
				Title: "View",
				Entries: []Entry{
					{Item: Item{ID: IDResetView, Label: "Reset View", Accelerator: "CmdOrCtrl+0"}},
				},
			},
		},
	}
}

// Items returns the menu's activatable items in declaration order.
func (m Menu) Items() []Item {
	var items []Item
	for _, sub := range m.Submenus {
		for _, e := range sub.Entries {
			if !e.Separator {
				items = append(items, e.Item)
			}
		}
	}
	return items
}

// Validate checks the construction invariants: ids are unique, non-empty
// and namespaced ("<submenu>:<action>"), labels are non-empty, and every
// accelerator parses. Violations are fatal startup errors.
func (m Menu) Validate() error {
	seen := make(map[string]struct{})
	for _, item := range m.Items() {
		if item.ID == "" || !strings.Contains(item.ID, ":") {
			return fmt.Errorf("menu item %q: id must be namespaced", item.ID)
		}
		if item.Label == "" {
			return fmt.Errorf("menu item %q: empty label", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("menu item %q: duplicate id", item.ID)
		}
		seen[item.ID] = struct{}{}

		if _, err := host.ParseAccelerator(item.Accelerator); err != nil {
			return fmt.Errorf("menu item %q: %w", item.ID, err)
		}
	}
	return nil
}
