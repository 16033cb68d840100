package editor

import "github.com/iw2rmb/codepane/codefile"

// Config configures the editor Model.
type Config struct {
	// Files is the complete file collection, in tab order. The widget
	// never adds or removes files.
	Files []codefile.File

	// EditDisabled suppresses the Edit affordance entirely; the
	// component then stays read-only for its whole lifetime.
	EditDisabled bool

	// NavDisabled suppresses the tab strip. Only the first file is ever
	// shown or edited.
	NavDisabled bool

	// OnSubmit fires once per save with the current file's language tag
	// and the saved content.
	OnSubmit func(language, content string)

	// OnChange fires on every keystroke while editing, with the live
	// buffer value. Unthrottled; hosts debounce if they need to.
	OnChange func(language, content string)

	// Rendering options.
	Style  Style
	KeyMap KeyMap

	// Highlighter renders read-only code. Nil selects a Chroma
	// highlighter for Style.Theme.
	Highlighter Highlighter

	// Clipboard backs the copy-code binding. Nil selects the system
	// clipboard.
	Clipboard Clipboard
}
