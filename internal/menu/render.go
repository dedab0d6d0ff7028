package menu

import (
	"fmt"

	"fyne.io/fyne/v2"

	"binblock/internal/host"
)

// Binding couples a parsed accelerator with the action it triggers, for
// registration on the window canvas alongside the rendered menu.
type Binding struct {
	Accelerator host.Accelerator
	Action      func()
}

// Render converts the model to the host's menu widgets. Every item's action
// calls onSelect with the item's id; the About entry calls onAbout instead
// and carries no id. The returned bindings cover all items with
// accelerators. Render fails only on an invalid model, so callers that
// validated first treat an error here as a construction bug.
func Render(m Menu, onSelect func(id string), onAbout func()) (*fyne.MainMenu, []Binding, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("render menu: %w", err)
	}

	var menus []*fyne.Menu
	var bindings []Binding

	about := fyne.NewMenuItem("About "+m.AboutLabel, onAbout)
	menus = append(menus, fyne.NewMenu(m.AboutLabel, about))

	for _, sub := range m.Submenus {
		var items []*fyne.MenuItem
		for _, entry := range sub.Entries {
			if entry.Separator {
				items = append(items, fyne.NewMenuItemSeparator())
				continue
			}

			item := entry.Item
			action := func() { onSelect(item.ID) }
			fyneItem := fyne.NewMenuItem(item.Label, action)

			acc, err := host.ParseAccelerator(item.Accelerator)
			if err != nil {
				return nil, nil, fmt.Errorf("render menu item %q: %w", item.ID, err)
			}
			if !acc.IsZero() {
				fyneItem.Shortcut = acc.Shortcut()
				bindings = append(bindings, Binding{Accelerator: acc, Action: action})
			}

			items = append(items, fyneItem)
		}
		menus = append(menus, fyne.NewMenu(sub.Title, items...))
	}

	return fyne.NewMainMenu(menus...), bindings, nil
}
