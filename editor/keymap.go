package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the component key bindings.
//
// Edit, NextTab, PrevTab, and CopyCode apply while viewing; Save and
// Cancel apply while editing. Everything else is forwarded to the
// active surface (viewport or textarea).
type KeyMap struct {
	Edit     key.Binding
	Save     key.Binding
	Cancel   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	CopyCode key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		NextTab: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next file")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev file")),

		CopyCode: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy code")),
	}
}

// fillKeyMap completes a partially configured keymap field by field, so
// overriding one binding never unbinds the rest.
func fillKeyMap(km KeyMap) KeyMap {
	def := DefaultKeyMap()
	fill := func(b *key.Binding, d key.Binding) {
		if len(b.Keys()) == 0 {
			*b = d
		}
	}
	fill(&km.Edit, def.Edit)
	fill(&km.Save, def.Save)
	fill(&km.Cancel, def.Cancel)
	fill(&km.NextTab, def.NextTab)
	fill(&km.PrevTab, def.PrevTab)
	fill(&km.CopyCode, def.CopyCode)
	return km
}
