package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the component's rendering. Pure presentation data; the
// widget reads it, never writes it.
type Style struct {
	// Tab strip.
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	// Content.
	Text        lipgloss.Style
	Placeholder lipgloss.Style

	// Edit/Save affordance.
	Button lipgloss.Style
	// ButtonOffset is the button row's distance from the top of the
	// widget, in cells. Zero places it directly under the content.
	// While editing, offsets inside the reserved edit surface are
	// clamped; see clampButtonOffset.
	ButtonOffset int
	// ShowButtons renders the Edit/Save hint line. Defaults on via
	// DefaultStyle.
	ShowButtons bool

	// Theme names the Chroma style used by the default highlighter.
	Theme string

	// CursorAtEnd places the cursor at the true end of the seeded
	// buffer on entering edit mode. Off by default: the cursor stays at
	// the start of the buffer.
	CursorAtEnd bool
}

// minEditButtonOffset is the reserved vertical band for the edit
// surface: while editing, a button offset landing inside it would
// overlap the text area.
const minEditButtonOffset = 50

// clampButtonOffset resolves the button's vertical offset for the given
// mode: while editing, any configured offset inside the first
// minEditButtonOffset cells is clamped to exactly minEditButtonOffset.
func clampButtonOffset(offset int, editing bool) int {
	if editing && offset < minEditButtonOffset {
		return minEditButtonOffset
	}
	return offset
}

func DefaultStyle() Style {
	return Style{
		TabActive:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Faint(true).Padding(0, 1),
		TabBar:      lipgloss.NewStyle(),

		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),

		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ShowButtons: true,

		Theme: "monokai",
	}
}
