// Package editor provides a Bubble Tea code-viewer/editor component
// backed by the codefile package.
//
// The component renders the current file read-only with syntax
// highlighting (delegated to a Highlighter, Chroma by default), a tab
// strip for switching files, and a plain-text edit mode whose buffer is
// pushed back into the model on save. Hosts observe edits through the
// OnChange and OnSubmit callbacks.
package editor
