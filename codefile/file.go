package codefile

// File is one named, language-tagged, mutable text document.
//
// Name is the tab label. Language selects the highlight grammar and is
// echoed to the host's change/submit callbacks; it is an opaque tag,
// never parsed. Code is the current textual content.
type File struct {
	Name     string
	Language string
	Code     string
}
