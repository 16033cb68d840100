package codefile

import "fmt"

// Model is the pure editor state: the file collection, the index of the
// file currently shown, and the editing-mode flag.
//
// The collection is supplied wholesale at construction; the model never
// adds or removes files on its own. Failed operations leave the model
// unchanged.
type Model struct {
	files    []File
	position int
	editing  bool

	version uint64
}

// New builds a model over the given files. Position starts at 0 and
// editing mode starts off. An empty file list is allowed; accessors
// then fail with ErrNoFiles.
func New(files ...File) *Model {
	m := &Model{files: make([]File, len(files))}
	copy(m.files, files)
	return m
}

// Len returns the number of files.
func (m *Model) Len() int { return len(m.files) }

// Files returns a copy of the collection in tab order.
func (m *Model) Files() []File {
	out := make([]File, len(m.files))
	copy(out, m.files)
	return out
}

// Version increments on every effective mutation. Hosts can use it as a
// cheap dirty check between renders.
func (m *Model) Version() uint64 { return m.version }

// Position returns the index of the file currently shown.
func (m *Model) Position() int { return m.position }

// Editing reports whether edit mode is on.
func (m *Model) Editing() bool { return m.editing }

// File returns the record at index i.
func (m *Model) File(i int) (File, error) {
	if len(m.files) == 0 {
		return File{}, ErrNoFiles
	}
	if i < 0 || i >= len(m.files) {
		return File{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, i, len(m.files))
	}
	return m.files[i], nil
}

// Code returns the current content of the file at index i.
func (m *Model) Code(i int) (string, error) {
	f, err := m.File(i)
	if err != nil {
		return "", err
	}
	return f.Code, nil
}

// Current returns the file at the current position.
func (m *Model) Current() (File, error) {
	return m.File(m.position)
}

// Language returns the language tag of the current file, or "" when the
// collection is empty.
func (m *Model) Language() string {
	f, err := m.Current()
	if err != nil {
		return ""
	}
	return f.Language
}

// SetPosition moves the current-file index. The index must be inside
// [0, Len()); on failure position is unchanged. The view must reload
// its transient buffer after a successful move.
func (m *Model) SetPosition(i int) error {
	if i < 0 || i >= len(m.files) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIndex, i, len(m.files))
	}
	if i == m.position {
		return nil
	}
	m.position = i
	m.version++
	return nil
}

// SetCode replaces the content of the file at index i. Nothing else in
// the model changes.
func (m *Model) SetCode(i int, code string) error {
	if i < 0 || i >= len(m.files) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidIndex, i, len(m.files))
	}
	if m.files[i].Code == code {
		return nil
	}
	m.files[i].Code = code
	m.version++
	return nil
}

// ToggleEditing flips edit mode and returns the new value.
func (m *Model) ToggleEditing() bool {
	m.editing = !m.editing
	m.version++
	return m.editing
}
