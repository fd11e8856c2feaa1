package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const timeLayout = "15:04:05"

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.dialogs.View(m.mainView())
}

func (m *model) mainView() string {
	contentW := max(20, m.terminalWidth-6)
	// title, table border, footer and margins
	rowsH := max(1, m.terminalHeight-9)

	table := tableStyle.Width(contentW - 2).Render(m.renderTable(contentW-2, rowsH))
	parts := []string{
		titleStyle.Render("sfdlg · dialog outcomes"),
		table,
		m.footerView(lipgloss.Width(table)),
	}
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) renderTable(width, height int) string {
	header := headerStyle.Render(formatRow("", "TIME", "DIALOG", "BUTTON", "VALUE", width))
	if len(m.history) == 0 {
		return header + "\n" + emptyStyle.Render("no dialogs closed yet · press ? for keys")
	}

	m.scrollTo(height)
	end := min(len(m.history), m.ui.visibleStart+height)

	lines := []string{header}
	for i := m.ui.visibleStart; i < end; i++ {
		lines = append(lines, m.renderRow(i, width))
	}
	return strings.Join(lines, "\n")
}

// scrollTo keeps the cursor inside a window of height rows.
func (m *model) scrollTo(height int) {
	if m.cursor < m.ui.visibleStart {
		m.ui.visibleStart = m.cursor
	}
	if m.cursor >= m.ui.visibleStart+height {
		m.ui.visibleStart = m.cursor - height + 1
	}
	m.ui.visibleStart = clamp(m.ui.visibleStart, 0, max(0, len(m.history)-1))
}

func (m *model) renderRow(i, width int) string {
	o := m.history[i]

	marker := cancelMarker.Render(pillMarker)
	if o.confirmed() {
		marker = okMarker.Render(pillMarker)
	}
	value := o.Value
	if o.Comment != "" {
		value = commentMarker + " " + value
	}
	line := formatRow(marker, o.At.Format(timeLayout), o.Dialog, o.Button.String(), value, width)

	if i == m.cursor {
		return rowSelectedStyle.Width(width).Render(line)
	}
	return rowTextStyle.Render(line)
}

func formatRow(marker, at, dialog, button, value string, width int) string {
	if marker == "" {
		marker = " "
	}
	left := fmt.Sprintf("%s %-8s  %-8s  %-6s  ", marker, at, truncatePlain(dialog, 8), button)
	return left + truncatePlain(value, max(0, width-lipgloss.Width(left)))
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:          "NORMAL",
		FileName:      m.path,
		Row:           m.cursor + 1,
		TotalRows:     len(m.history),
		Dirty:         m.dirty,
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        "? help · s save · c comment · y copy · q quit",
	}
	if len(m.history) == 0 {
		st.Row = 0
	}
	if d := m.dialogs.Top(); d != nil {
		st.Mode = "DIALOG"
		st.ModeInput = d.Title()
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}
