package dialogs

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderColor  = "252"
	overlayColor = "236"
	dialogWidth  = 60
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(borderColor)).
			BorderBackground(lipgloss.Color(overlayColor)). // match the overlay
			Padding(1, 2).
			Width(dialogWidth)
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// frame renders a dialog body in the shared box with its title and key hint.
func frame(title, body, hint string) string {
	content := body
	if title != "" {
		content = fmt.Sprintf("%s\n\n%s", titleStyle.Render(title), body)
	}
	if hint != "" {
		content = fmt.Sprintf("%s\n\n%s", content, hintStyle.Render(hint))
	}
	return boxStyle.Render(content)
}

// View draws the top dialog centered over the terminal, or returns base when
// no dialog is open.
func (s *Service) View(base string) string {
	d := s.Top()
	if d == nil {
		return base
	}
	if s.width == 0 || s.height == 0 {
		return d.View()
	}
	return lipgloss.Place(
		s.width, s.height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayColor)),
	)
}
