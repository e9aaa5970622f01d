package zipinstaller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/constants"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/internal"
)

func press(b constants.VirtualButton) internal.InputEvent {
	return internal.InputEvent{Button: b, Pressed: true}
}

func sampleItems(hidden *bool) []ItemWithOptions {
	return []ItemWithOptions{
		{Item: MenuItem{Text: "Name"}, Type: OptionTypeText, Text: "Tool"},
		{
			Item:    MenuItem{Text: "Shortcut"},
			Type:    OptionTypeStandard,
			Options: []Option{{DisplayName: "Off", Value: false}, {DisplayName: "On", Value: true}},
			Visible: func() bool { return !*hidden },
		},
		{Item: MenuItem{Text: "Install", Metadata: "install"}, Type: OptionTypeClickable},
	}
}

func TestOptionsListNavigationSkipsHiddenItems(t *testing.T) {
	hidden := false
	c := newOptionsListController(sampleItems(&hidden), OptionListSettings{})
	require.Equal(t, 0, c.SelectedIndex)
	assert.True(t, c.Items[0].Item.Selected)

	c.handle(press(constants.VirtualButtonDown))
	assert.Equal(t, 1, c.SelectedIndex)

	hidden = true
	c.handle(press(constants.VirtualButtonUp))
	c.handle(press(constants.VirtualButtonDown))
	assert.Equal(t, 2, c.SelectedIndex)

	c.handle(press(constants.VirtualButtonTab))
	assert.Equal(t, 0, c.SelectedIndex, "wraps around")
	assert.False(t, c.Items[2].Item.Selected)
}

func TestOptionsListTextEditing(t *testing.T) {
	hidden := false
	var updates []string
	items := sampleItems(&hidden)
	items[0].OnUpdate = func(item *ItemWithOptions) { updates = append(updates, item.Text) }
	c := newOptionsListController(items, OptionListSettings{})

	c.handle(internal.InputEvent{Text: "s", Pressed: true})
	c.handle(press(constants.VirtualButtonBackspace))
	c.handle(press(constants.VirtualButtonHome))
	c.handle(internal.InputEvent{Text: "My", Pressed: true})

	assert.Equal(t, "MyTool", c.Items[0].Text)
	assert.Equal(t, "MyTool", c.Items[0].Value())
	assert.Equal(t, []string{"Tools", "Tool", "MyTool"}, updates)

	c.handle(press(constants.VirtualButtonAccept))
	assert.Equal(t, 1, c.SelectedIndex, "enter moves to the next item")
}

func TestOptionsListCyclesOptions(t *testing.T) {
	hidden := false
	c := newOptionsListController(sampleItems(&hidden), OptionListSettings{InitialSelectedIndex: 1})
	require.Equal(t, 1, c.SelectedIndex)

	c.handle(press(constants.VirtualButtonRight))
	assert.Equal(t, true, c.Items[1].Value())
	c.handle(press(constants.VirtualButtonRight))
	assert.Equal(t, false, c.Items[1].Value())
	c.handle(press(constants.VirtualButtonLeft))
	assert.Equal(t, "On", c.Items[1].displayValue())
}

func TestOptionsListFinishes(t *testing.T) {
	hidden := false
	c := newOptionsListController(sampleItems(&hidden), OptionListSettings{InitialSelectedIndex: 2})
	assert.True(t, c.handle(press(constants.VirtualButtonAccept)))
	assert.Equal(t, ListActionSelected, c.action)
	assert.Equal(t, "install", c.Items[2].Value())

	c = newOptionsListController(sampleItems(&hidden), OptionListSettings{DisableBackButton: true})
	assert.False(t, c.handle(press(constants.VirtualButtonBack)))

	c = newOptionsListController(sampleItems(&hidden), OptionListSettings{})
	assert.True(t, c.handle(press(constants.VirtualButtonBack)))
	assert.True(t, c.cancelled)
}

func TestOptionsListScrollKeepsSelectionVisible(t *testing.T) {
	items := make([]ItemWithOptions, 10)
	for i := range items {
		items[i] = ItemWithOptions{Type: OptionTypeClickable}
	}
	c := newOptionsListController(items, OptionListSettings{})
	c.MaxVisibleItems = 3

	for range 4 {
		c.handle(press(constants.VirtualButtonDown))
	}
	assert.Equal(t, 4, c.SelectedIndex)
	assert.Equal(t, 2, c.VisibleStartIndex)

	c.handle(press(constants.VirtualButtonUp))
	c.handle(press(constants.VirtualButtonUp))
	c.handle(press(constants.VirtualButtonUp))
	assert.Equal(t, 1, c.VisibleStartIndex)
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, `…\bin`, truncateLeft(`C:\bin`, 50, runeWidth))
	assert.Equal(t, "ok", truncateLeft("ok", 50, runeWidth))
}
