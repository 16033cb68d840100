package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const noFilesMessage = "no files"

// View renders, top to bottom: the tab strip (unless suppressed), the
// content surface for the current mode, and the Edit/Save hint line.
func (m Model) View() string {
	var sb strings.Builder

	if tabs := m.tabStrip(); tabs != "" {
		sb.WriteString(tabs)
		sb.WriteByte('\n')
	}

	if m.model.Editing() {
		sb.WriteString(m.ta.View())
	} else {
		sb.WriteString(m.vp.View())
	}

	if btn := m.buttonLine(); btn != "" {
		body := sb.String()
		return m.placeButton(body, btn)
	}
	return sb.String()
}

func (m Model) tabStrip() string {
	if m.cfg.NavDisabled || m.model.Len() == 0 {
		return ""
	}
	return renderTabs(m.model.Files(), m.position(), m.width, m.cfg.Style)
}

func (m Model) buttonLine() string {
	if !m.cfg.Style.ShowButtons || m.model.Len() == 0 {
		return ""
	}
	if m.model.Editing() {
		save := m.keys.Save.Help()
		cancel := m.keys.Cancel.Help()
		return m.cfg.Style.Button.Render(save.Key + " " + save.Desc + "  " + cancel.Key + " " + cancel.Desc)
	}
	if m.cfg.EditDisabled {
		return ""
	}
	edit := m.keys.Edit.Help()
	return m.cfg.Style.Button.Render(edit.Key + " " + edit.Desc)
}

// chromeHeight counts the rows View spends outside the content
// surface, so SetSize can give the rest to the viewport/textarea.
func (m Model) chromeHeight() int {
	h := 0
	if !m.cfg.NavDisabled && m.model.Len() > 0 {
		h++
	}
	if m.cfg.Style.ShowButtons && m.model.Len() > 0 && (!m.cfg.EditDisabled || m.model.Editing()) {
		h++
	}
	return h
}

// placeButton appends the button line beneath the body. A positive
// Style.ButtonOffset instead pins the line to that row from the top of
// the widget, padded with blank lines when the body is shorter; while
// editing the offset is clamped so the line cannot land on the edit
// surface.
func (m Model) placeButton(body, button string) string {
	off := m.cfg.Style.ButtonOffset
	if off <= 0 {
		return body + "\n" + button
	}
	off = clampButtonOffset(off, m.model.Editing())
	if pad := off - lipgloss.Height(body); pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + button
}
