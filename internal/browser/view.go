package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/format"
)

const (
	colUpdated = 22
	colBranch  = 12
	colCwd     = 30
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 100
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	title := styleTitle.Render("Codex Sessions") +
		styleHint.Render("  (enter=actions, /=search, :export PATH, dd=delete, q=quit)")

	var prompt string
	switch m.mode {
	case modeSearch:
		prompt = "/" + m.query
	case modeCommand:
		prompt = ":" + m.command
	default:
		prompt = fmt.Sprintf("%d sessions", len(m.filtered))
	}

	tableHeight := height - 4 // title, prompt, header, status
	if tableHeight < 1 {
		tableHeight = 1
	}

	var body string
	switch m.mode {
	case modeActionPrompt:
		body = m.renderDialog(width, tableHeight, m.actionPromptText(), styleDialog)
	case modeConfirmDelete:
		body = m.renderDialog(width, tableHeight, m.confirmDeleteText(), styleDialog.Foreground(colorDanger))
	default:
		body = m.renderTable(width, tableHeight)
	}

	status := styleStatus.Render(m.status)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		prompt,
		body,
		status,
	)
}

func (m Model) renderTable(width, height int) string {
	header := styleHeader.Render(formatRow("Updated", "Branch", "CWD", "Conversation", width, headerWidths()))

	lines := []string{header}
	visible := height - 1
	if visible < 1 {
		visible = 1
	}

	// keep the selection on screen
	offset := 0
	if m.selected >= visible {
		offset = m.selected - visible + 1
	}

	for i := offset; i < len(m.filtered) && len(lines) <= visible; i++ {
		summary := m.sessions[m.filtered[i]]
		row := formatSummaryRow(summary, width)
		if i == m.selected {
			row = styleSelected.Render(row)
		}
		lines = append(lines, row)
	}

	for len(lines) <= visible {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func headerWidths() [3]int {
	return [3]int{colUpdated, colBranch, colCwd}
}

func formatSummaryRow(summary catalog.SessionSummary, width int) string {
	updated := "unknown"
	if summary.UpdatedAt != nil {
		updated = format.Relative(*summary.UpdatedAt)
	}
	branch := summary.GitBranch
	if branch == "" {
		branch = "-"
	}
	cwd := "(unknown)"
	if summary.Cwd != "" {
		cwd = format.ShortenPath(summary.Cwd, colCwd-2)
	}
	preview := summary.Preview
	if preview == "" {
		preview = "(no user input)"
	}
	return formatRow(updated, branch, cwd, format.Preview(preview), width, headerWidths())
}

func formatRow(updated, branch, cwd, preview string, width int, cols [3]int) string {
	row := fmt.Sprintf("%s  %s  %s  %s",
		pad(updated, cols[0]),
		pad(branch, cols[1]),
		pad(cwd, cols[2]),
		preview,
	)
	if runewidth.StringWidth(row) > width {
		row = runewidth.Truncate(row, width, "")
	}
	return row
}

func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func (m Model) actionPromptText() string {
	session := m.currentSession()
	if session == nil {
		return "No session selected"
	}
	cwd := session.Cwd
	if cwd == "" {
		cwd = "(unknown)"
	}
	return fmt.Sprintf(
		"Session: %s\nCWD: %s\n\nr resume  j jump to directory  c copy command\no open log  Esc cancel",
		session.ID, cwd,
	)
}

func (m Model) confirmDeleteText() string {
	id := ""
	if session := m.currentSession(); session != nil {
		id = session.ID
	}
	return styleDanger.Render(fmt.Sprintf(
		"Delete session %s?\nThis cannot be undone.\nPress y to confirm or n to cancel.", id,
	))
}

func (m Model) renderDialog(width, height int, text string, style lipgloss.Style) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(text))
}
