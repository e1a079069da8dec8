package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/faizmokh/orgstamp/internal/editor"
)

type keyMap struct {
	Stamp       key.Binding
	StampLinked key.Binding
	Forward     key.Binding
	Backward    key.Binding
	Save        key.Binding
	Preview     key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Stamp: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "stamp"),
		),
		StampLinked: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "linked stamp"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+up", "ctrl+up"),
			key.WithHelp("alt+↑", "time +"),
		),
		Backward: key.NewBinding(
			key.WithKeys("alt+down", "ctrl+down"),
			key.WithHelp("alt+↓", "time -"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "preview"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// commandBindings pairs registered command IDs with the keys that trigger them.
func (k keyMap) commandBindings() []struct {
	id      string
	binding key.Binding
} {
	return []struct {
		id      string
		binding key.Binding
	}{
		{editor.InsertTimestampID, k.Stamp},
		{editor.InsertLinkedTimestampID, k.StampLinked},
		{editor.ShiftForwardID, k.Forward},
		{editor.ShiftBackwardID, k.Backward},
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stamp, k.StampLinked, k.Forward, k.Backward, k.Save, k.Preview, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Stamp, k.StampLinked, k.Forward, k.Backward},
		{k.Save, k.Preview, k.Quit},
	}
}
