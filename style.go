package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

	rowTextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(rowSelectedTextFGColor)).
				Background(lipgloss.Color(rowSelectedBGColor))
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	okMarker      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cancelMarker  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	pillMarker    = "▐"
	commentMarker = "[*]"

	emptyStyle = lipgloss.NewStyle().Faint(true)
)
