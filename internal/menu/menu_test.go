package menu

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellItemIDs(t *testing.T) {
	m := Shell()

	var ids []string
	for _, item := range m.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"edit:undo", "edit:redo", "edit:clear", "view:reset"}, ids)
}

func TestShellStructure(t *testing.T) {
	m := Shell()

	require.Len(t, m.Submenus, 2)
	assert.Equal(t, "Edit", m.Submenus[0].Title)
	assert.Equal(t, "View", m.Submenus[1].Title)

	edit := m.Submenus[0].Entries
	require.Len(t, edit, 4)
	assert.Equal(t, "Undo", edit[0].Item.Label)
	assert.Equal(t, "Redo", edit[1].Item.Label)
	assert.True(t, edit[2].Separator)
	assert.Equal(t, "Clear Grid", edit[3].Item.Label)

	view := m.Submenus[1].Entries
	require.Len(t, view, 1)
	assert.Equal(t, "Reset View", view[0].Item.Label)
}

func TestShellAccelerators(t *testing.T) {
	byID := make(map[string]Item)
	for _, item := range Shell().Items() {
		byID[item.ID] = item
	}

	assert.Equal(t, "CmdOrCtrl+Z", byID[IDUndo].Accelerator)
	assert.Equal(t, "CmdOrCtrl+Shift+Z", byID[IDRedo].Accelerator)
	assert.Equal(t, "", byID[IDClear].Accelerator)
	assert.Equal(t, "CmdOrCtrl+0", byID[IDResetView].Accelerator)
}

func TestShellValidates(t *testing.T) {
	require.NoError(t, Shell().Validate())
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	m := Menu{
		AboutLabel: "test",
		Submenus: []Submenu{{
			Title: "Edit",
			Entries: []Entry{
				{Item: Item{ID: "edit:undo", Label: "Undo"}},
				{Item: Item{ID: "edit:undo", Label: "Undo Again"}},
			},
		}},
	}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateRejectsUnnamespacedID(t *testing.T) {
	m := Menu{
		Submenus: []Submenu{{
			Title:   "Edit",
			Entries: []Entry{{Item: Item{ID: "undo", Label: "Undo"}}},
		}},
	}
	assert.Error(t, m.Validate())
}

func TestValidateRejectsBadAccelerator(t *testing.T) {
	m := Menu{
		Submenus: []Submenu{{
			Title:   "Edit",
			Entries: []Entry{{Item: Item{ID: "edit:undo", Label: "Undo", Accelerator: "Hyper+Z"}}},
		}},
	}
	assert.Error(t, m.Validate())
}

func TestRenderOrderAndSelection(t *testing.T) {
	var selected []string
	var aboutCalls int

	main, bindings, err := Render(Shell(),
		func(id string) { selected = append(selected, id) },
		func() { aboutCalls++ })
	require.NoError(t, err)

	// About first, then Edit, then View.
	require.Len(t, main.Items, 3)
	assert.Equal(t, "Edit", main.Items[1].Label)
	assert.Equal(t, "View", main.Items[2].Label)

	aboutMenu := main.Items[0]
	require.Len(t, aboutMenu.Items, 1)
	aboutMenu.Items[0].Action()
	assert.Equal(t, 1, aboutCalls)
	assert.Empty(t, selected)

	edit := main.Items[1]
	require.Len(t, edit.Items, 4)
	assert.True(t, edit.Items[2].IsSeparator)

	edit.Items[0].Action()
	edit.Items[3].Action()
	main.Items[2].Items[0].Action()
	assert.Equal(t, []string{"edit:undo", "edit:clear", "view:reset"}, selected)

	// Three items carry accelerators; Clear Grid has none.
	assert.Len(t, bindings, 3)
}

func TestRenderShortcuts(t *testing.T) {
	main, _, err := Render(Shell(), func(string) {}, func() {})
	require.NoError(t, err)

	edit := main.Items[1]
	undo := edit.Items[0]
	require.NotNil(t, undo.Shortcut)

	sc, ok := undo.Shortcut.(*desktop.CustomShortcut)
	require.True(t, ok)
	assert.Equal(t, fyne.KeyZ, sc.KeyName)
	assert.Equal(t, fyne.KeyModifierShortcutDefault, sc.Modifier)

	clearItem := edit.Items[3]
	assert.Nil(t, clearItem.Shortcut)
}

func TestRenderRejectsInvalidModel(t *testing.T) {
	m := Menu{
		Submenus: []Submenu{{
			Title:   "Edit",
			Entries: []Entry{{Item: Item{ID: "nope", Label: "Nope"}}},
		}},
	}
	_, _, err := Render(m, func(string) {}, func() {})
	assert.Error(t, err)
}
