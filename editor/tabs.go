package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/codepane/codefile"
)

const (
	maxTabLabelWidth = 24
	tabOverflowLeft  = "‹ "
	tabOverflowRight = " ›"
)

// renderTabs lays out one label per file. The selected tab renders at
// full opacity, the rest faint. When the labels overflow the available
// width the strip shows a sliding window that always contains the
// selected tab, with overflow markers on the clipped side.
func renderTabs(files []codefile.File, selected, width int, st Style) string {
	if len(files) == 0 {
		return ""
	}
	if selected < 0 || selected >= len(files) {
		selected = 0
	}

	rendered := make([]string, len(files))
	widths := make([]int, len(files))
	for i, f := range files {
		name := f.Name
		if name == "" {
			name = "untitled"
		}
		style := st.TabInactive
		if i == selected {
			style = st.TabActive
		}
		rendered[i] = style.Render(runewidth.Truncate(name, maxTabLabelWidth, "…"))
		widths[i] = lipgloss.Width(rendered[i])
	}

	start, end := tabWindow(widths, selected, width)

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(st.TabInactive.Render(tabOverflowLeft))
	}
	sb.WriteString(strings.Join(rendered[start:end], ""))
	if end < len(rendered) {
		sb.WriteString(st.TabInactive.Render(tabOverflowRight))
	}
	return st.TabBar.Render(sb.String())
}

// tabWindow picks the half-open label range [start, end) to show.
// The selected label is always inside; neighbors are added rightward
// first, then leftward, while they fit in maxWidth. A non-positive
// maxWidth shows everything.
func tabWindow(widths []int, selected, maxWidth int) (start, end int) {
	if maxWidth <= 0 {
		return 0, len(widths)
	}

	start, end = selected, selected+1
	used := widths[selected]

	for end < len(widths) && used+widths[end] <= maxWidth {
		used += widths[end]
		end++
	}
	for start > 0 && used+widths[start-1] <= maxWidth {
		used += widths[start-1]
		start--
	}
	return start, end
}
