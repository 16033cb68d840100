package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestClampButtonOffset(t *testing.T) {
	cases := []struct {
		name    string
		offset  int
		editing bool
		want    int
	}{
		{name: "viewing keeps offset", offset: 10, editing: false, want: 10},
		{name: "editing clamps low offset", offset: 10, editing: true, want: 50},
		{name: "editing keeps boundary", offset: 50, editing: true, want: 50},
		{name: "editing keeps high offset", offset: 80, editing: true, want: 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampButtonOffset(tc.offset, tc.editing); got != tc.want {
				t.Fatalf("clampButtonOffset(%d, %v): got %d, want %d", tc.offset, tc.editing, got, tc.want)
			}
		})
	}
}

func TestView_ButtonLinePerState(t *testing.T) {
	m := New(Config{Files: twoFiles(), Style: DefaultStyle()})

	lines := strings.Split(stripANSI(m.View()), "\n")
	if got, want := lines[len(lines)-1], "e edit"; got != want {
		t.Fatalf("viewing button line: got %q, want %q", got, want)
	}

	m, _ = m.Update(keyRunes("e"))
	lines = strings.Split(stripANSI(m.View()), "\n")
	if got, want := lines[len(lines)-1], "ctrl+s save  esc cancel"; got != want {
		t.Fatalf("editing button line: got %q, want %q", got, want)
	}
}

func TestView_PositionedButtonClampedWhileEditing(t *testing.T) {
	st := DefaultStyle()
	st.ButtonOffset = 10
	m := New(Config{Files: twoFiles(), Style: st})
	m = m.SetSize(40, 8)

	// Viewing: the whole widget already reaches past row 10, so the
	// button just follows the content.
	if got := lipgloss.Height(m.View()); got >= minEditButtonOffset {
		t.Fatalf("viewing height: got %d, want < %d", got, minEditButtonOffset)
	}

	// Editing: the offset is clamped to the reserved band, pushing the
	// button line down to row 50.
	m, _ = m.Update(keyRunes("e"))
	if got, want := lipgloss.Height(m.View()), minEditButtonOffset+1; got != want {
		t.Fatalf("editing height: got %d, want %d", got, want)
	}
}

func TestView_TabStripSuppressedOnlyWhenNavDisabled(t *testing.T) {
	m := New(Config{Files: twoFiles(), Style: DefaultStyle()})
	if got := stripANSI(m.View()); !strings.Contains(got, "a.js") || !strings.Contains(got, "b.py") {
		t.Fatalf("tab strip missing labels:\n%s", got)
	}

	m = New(Config{Files: twoFiles(), Style: DefaultStyle(), NavDisabled: true})
	if got := stripANSI(m.View()); strings.Contains(got, "a.js") {
		t.Fatalf("NavDisabled still renders tab strip:\n%s", got)
	}
}

func TestView_TabStripStaysVisibleWhileEditing(t *testing.T) {
	m := New(Config{Files: twoFiles(), Style: DefaultStyle()})
	m, _ = m.Update(keyRunes("e"))
	if got := stripANSI(m.View()); !strings.Contains(got, "a.js") {
		t.Fatalf("editing view lost tab strip:\n%s", got)
	}
}

func TestSetSize_TracksWindowMessages(t *testing.T) {
	m := New(Config{Files: twoFiles(), Style: DefaultStyle()})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	if got := lipgloss.Height(m.View()); got != 12 {
		t.Fatalf("view height after resize: got %d, want %d", got, 12)
	}
}
