package browser

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("14")  // cyan
	colorDim     = lipgloss.Color("240") // gray
	colorDanger  = lipgloss.Color("9")   // bright red
	colorBorder  = lipgloss.Color("238") // dark gray

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim)

	styleHeader = lipgloss.NewStyle().
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(colorPrimary)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleDialog = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleDanger = lipgloss.NewStyle().
			Foreground(colorDanger)
)
