package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepane/codefile"
)

// State names the view's two modes.
type State int

const (
	Viewing State = iota
	Editing
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is a Bubble Tea component showing one file of a codefile.Model
// at a time: highlighted and read-only while viewing, a plain textarea
// while editing.
//
// The codefile model owns all durable state. The textarea is the
// transient buffer: it is re-seeded from the model whenever the shown
// file or the mode changes, and its value only reaches the model on
// save.
type Model struct {
	cfg  Config
	keys KeyMap
	hl   Highlighter
	clip Clipboard

	model *codefile.Model

	ta textarea.Model
	vp viewport.Model

	width, height int

	lastSync uint64
}

func New(cfg Config) Model {
	keys := fillKeyMap(cfg.KeyMap)
	hl := cfg.Highlighter
	if hl == nil {
		hl = NewChromaHighlighter(cfg.Style.Theme)
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := Model{
		cfg:   cfg,
		keys:  keys,
		hl:    hl,
		clip:  clip,
		model: codefile.New(cfg.Files...),
		ta:    ta,
		vp:    viewport.New(defaultWidth, defaultHeight),
	}
	m = m.SetSize(defaultWidth, defaultHeight)
	m.syncBuffer()
	return m
}

// Files exposes the underlying document model. Direct host mutations
// are picked up on the next Update: the widget watches Version() and
// re-seeds its transient state, discarding any in-progress edits.
func (m Model) Files() *codefile.Model { return m.model }

// State returns Viewing or Editing.
func (m Model) State() State {
	if m.model.Editing() {
		return Editing
	}
	return Viewing
}

// Buffer returns the transient edit-buffer value. Empty while viewing.
func (m Model) Buffer() string {
	if !m.model.Editing() {
		return ""
	}
	return m.ta.Value()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	content := height - m.chromeHeight()
	if content < 1 {
		content = 1
	}
	m.vp.Width = width
	m.vp.Height = content
	m.ta.SetWidth(width)
	m.ta.SetHeight(content)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Re-sync in case the host mutated the model outside of the widget
	// since the last update.
	if m.model.Version() != m.lastSync {
		m.syncBuffer()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.model.Editing() {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)
	}

	// Non-key messages (blink ticks, mouse wheel) go to the active
	// surface.
	var cmd tea.Cmd
	if m.model.Editing() {
		m.ta, cmd = m.ta.Update(msg)
	} else {
		m.vp, cmd = m.vp.Update(msg)
	}
	return m, cmd
}

func (m Model) updateViewing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit) && !m.cfg.EditDisabled:
		return m.Edit()
	case key.Matches(msg, m.keys.NextTab) && !m.cfg.NavDisabled:
		return m.cycleTab(1), nil
	case key.Matches(msg, m.keys.PrevTab) && !m.cfg.NavDisabled:
		return m.cycleTab(-1), nil
	case key.Matches(msg, m.keys.CopyCode):
		if f, err := m.currentFile(); err == nil {
			_ = m.clip.WriteText(f.Code)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.Save()
	case key.Matches(msg, m.keys.Cancel):
		return m.Cancel()
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.language(), m.ta.Value())
	}
	return m, cmd
}

// Edit enters edit mode, seeding the transient buffer from the current
// file. No-op when editing is disabled, already active, or there is no
// file to edit.
func (m Model) Edit() (Model, tea.Cmd) {
	if m.cfg.EditDisabled || m.model.Editing() {
		return m, nil
	}
	if _, err := m.currentFile(); err != nil {
		return m, nil
	}
	m.model.ToggleEditing()
	cmd := m.syncBuffer()
	return m, cmd
}

// Save writes the transient buffer into the model, leaves edit mode,
// and fires OnSubmit with the file's language and the saved content.
// The three effects land in a single update.
func (m Model) Save() (Model, tea.Cmd) {
	if !m.model.Editing() {
		return m, nil
	}
	content := m.ta.Value()
	if err := m.model.SetCode(m.position(), content); err != nil {
		return m, nil
	}
	m.model.ToggleEditing()
	cmd := m.syncBuffer()
	if m.cfg.OnSubmit != nil {
		m.cfg.OnSubmit(m.language(), content)
	}
	return m, cmd
}

// Cancel leaves edit mode, discarding the transient buffer. The model
// keeps the pre-edit content and no callback fires.
func (m Model) Cancel() (Model, tea.Cmd) {
	if !m.model.Editing() {
		return m, nil
	}
	m.model.ToggleEditing()
	cmd := m.syncBuffer()
	return m, cmd
}

// SelectTab shows the file at index i. Inert while editing or when
// navigation is disabled: unsaved edits are never dropped through the
// tab strip. An out-of-range index fails with codefile.ErrInvalidIndex
// and changes nothing.
func (m Model) SelectTab(i int) (Model, error) {
	if m.cfg.NavDisabled || m.model.Editing() {
		return m, nil
	}
	if err := m.model.SetPosition(i); err != nil {
		return m, err
	}
	m.syncBuffer()
	return m, nil
}

// SetCursorOffset places the edit cursor at the given rune offset in
// the transient buffer. Offsets outside [0, len(buffer)] fail with
// ErrInvalidCursorPosition; there is no clamping.
func (m Model) SetCursorOffset(offset int) (Model, error) {
	runes := []rune(m.ta.Value())
	if offset < 0 || offset > len(runes) {
		return m, fmt.Errorf("%w: %d of %d", ErrInvalidCursorPosition, offset, len(runes))
	}

	row, col := 0, 0
	for _, r := range runes[:offset] {
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	m.rewindCursor()
	for range row {
		m.ta.CursorDown()
	}
	m.ta.SetCursor(col)
	return m, nil
}

// rewindCursor walks the textarea cursor back to row 0, column 0.
func (m *Model) rewindCursor() {
	for m.ta.Line() > 0 {
		m.ta.CursorUp()
	}
	m.ta.SetCursor(0)
}

func (m Model) cycleTab(delta int) Model {
	n := m.model.Len()
	if n == 0 {
		return m
	}
	next := (m.model.Position() + delta + n) % n
	m, _ = m.SelectTab(next)
	return m
}

// position is the index of the file the view actually shows: pinned to
// 0 when navigation is disabled, the model's position otherwise.
func (m Model) position() int {
	if m.cfg.NavDisabled {
		return 0
	}
	return m.model.Position()
}

func (m Model) currentFile() (codefile.File, error) {
	return m.model.File(m.position())
}

// language is the tag of the file the view shows, "" when there is
// none. Echoed to OnChange and OnSubmit.
func (m Model) language() string {
	f, err := m.currentFile()
	if err != nil {
		return ""
	}
	return f.Language
}

// syncBuffer re-seeds the transient state from the model for the
// current mode. Called on every position or mode change; render never
// performs resets of its own.
func (m *Model) syncBuffer() tea.Cmd {
	m.lastSync = m.model.Version()

	f, err := m.currentFile()
	if err != nil {
		m.ta.Blur()
		m.ta.Reset()
		m.vp.SetContent(m.cfg.Style.Placeholder.Render(noFilesMessage))
		return nil
	}

	if m.model.Editing() {
		// SetValue leaves the cursor at the end of the seeded text,
		// which is exactly the CursorAtEnd placement.
		m.ta.SetValue(f.Code)
		if !m.cfg.Style.CursorAtEnd {
			m.rewindCursor()
		}
		return m.ta.Focus()
	}

	m.ta.Blur()
	m.ta.Reset()
	highlighted, err := m.hl.Highlight(f.Code, f.Language)
	if err != nil {
		highlighted = f.Code
	}
	m.vp.SetContent(highlighted)
	m.vp.GotoTop()
	return nil
}
