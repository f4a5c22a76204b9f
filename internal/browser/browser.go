// Package browser is the interactive session picker: a modal bubbletea model
// over a materialized list of summaries. It supports incremental search, an
// action menu, inline export, and a double-keystroke delete confirmation.
package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/open"
)

const (
	// Two d keystrokes within this window arm the delete confirmation.
	deleteSequenceTimeout = 600 * time.Millisecond

	// Redraw cadence when no keys arrive.
	redrawInterval = 200 * time.Millisecond
)

// OutcomeKind tags what the caller should do after the browser exits.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeResume
	OutcomeJump
)

// Outcome is the single terminal value the browser hands back. Jump carries
// the session's recorded directory in addition to the session itself.
type Outcome struct {
	Kind    OutcomeKind
	Session catalog.SessionSummary
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeCommand
	modeActionPrompt
	modeConfirmDelete
)

type redrawTickMsg time.Time

type editorFinishedMsg struct{ err error }

// Model is the browser state. All mutation happens inside Update, on the
// single bubbletea goroutine.
type Model struct {
	sessions []catalog.SessionSummary
	filtered []int
	selected int
	mode     mode
	query    string
	command  string
	status   string

	deletePrimedAt time.Time
	now            func() time.Time

	codexBin string
	width    int
	height   int
	quitting bool
	outcome  Outcome
}

func New(sessions []catalog.SessionSummary, codexBin string) Model {
	m := Model{
		sessions: sessions,
		codexBin: codexBin,
		now:      time.Now,
	}
	m.applyFilter()
	return m
}

// Run blocks until the user quits or picks a terminal action.
func Run(sessions []catalog.SessionSummary, codexBin string) (Outcome, error) {
	p := tea.NewProgram(New(sessions, codexBin), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("browser: %w", err)
	}
	return finalModel.(Model).outcome, nil
}

func (m Model) Init() tea.Cmd {
	return redrawTick()
}

func redrawTick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return redrawTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case redrawTickMsg:
		return m, redrawTick()

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = "Editor failed: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeNormal:
			return m.updateNormal(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeCommand:
			return m.updateCommand(msg)
		case modeActionPrompt:
			return m.updateActionPrompt(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.deletePrimedAt = time.Time{}
		m.moveSelection(-1)

	case key.Matches(msg, keys.Down):
		m.deletePrimedAt = time.Time{}
		m.moveSelection(1)

	case key.Matches(msg, keys.Search):
		m.deletePrimedAt = time.Time{}
		m.mode = modeSearch
		m.query = ""
		m.applyFilter()

	case key.Matches(msg, keys.Cmd):
		m.deletePrimedAt = time.Time{}
		m.mode = modeCommand
		m.command = ""

	case key.Matches(msg, keys.Enter):
		m.deletePrimedAt = time.Time{}
		if m.currentSession() != nil {
			m.mode = modeActionPrompt
		}

	case key.Matches(msg, keys.Delete):
		now := m.now()
		if !m.deletePrimedAt.IsZero() && now.Sub(m.deletePrimedAt) <= deleteSequenceTimeout {
			if m.currentSession() != nil {
				m.mode = modeConfirmDelete
			}
			m.deletePrimedAt = time.Time{}
			return m, nil
		}
		m.deletePrimedAt = now
		m.status = "Press d again to delete the selected session"

	default:
		m.deletePrimedAt = time.Time{}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		if m.query == "" {
			m.applyFilter()
		}
	case "enter":
		m.mode = modeNormal
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.applyFilter()
		}
	case "up":
		m.moveSelection(-1)
	case "down":
		m.moveSelection(1)
	default:
		if msg.Type == tea.KeyRunes {
			m.query += string(msg.Runes)
			m.applyFilter()
		}
	}
	return m, nil
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.command = ""
		m.mode = modeNormal
	case "enter":
		command := strings.TrimSpace(m.command)
		m.command = ""
		m.mode = modeNormal
		m.executeCommand(command)
	case "backspace":
		if len(m.command) > 0 {
			m.command = m.command[:len(m.command)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.command += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) updateActionPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.mode = modeNormal

	case "r":
		if session := m.currentSession(); session != nil {
			m.mode = modeNormal
			m.outcome = Outcome{Kind: OutcomeResume, Session: *session}
			m.quitting = true
			return m, tea.Quit
		}

	case "j":
		if session := m.currentSession(); session != nil {
			m.mode = modeNormal
			if session.Cwd == "" {
				m.status = "No CWD recorded for this session"
				return m, nil
			}
			m.outcome = Outcome{Kind: OutcomeJump, Session: *session}
			m.quitting = true
			return m, tea.Quit
		}

	case "c":
		if session := m.currentSession(); session != nil {
			m.mode = modeNormal
			cmd := session.ResumeHint(m.codexBin)
			if session.Cwd != "" {
				cmd = fmt.Sprintf("cd %s && %s", session.Cwd, cmd)
			}
			if err := clipboard.WriteAll(cmd); err != nil {
				m.status = "Clipboard unavailable: " + cmd
			} else {
				m.status = "Copied: " + cmd
			}
		}

	case "o":
		if session := m.currentSession(); session != nil {
			m.mode = modeNormal
			cmd, err := open.EditorCommand(session.Path)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
				return editorFinishedMsg{err: err}
			})
		}
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if session := m.currentSession(); session != nil {
			// removeSession invalidates the session pointer
			id, path := session.ID, session.Path
			if err := catalog.Delete(path); err != nil {
				m.status = err.Error()
			} else {
				m.removeSession(path)
				m.status = "Deleted session " + id
			}
		}
		m.mode = modeNormal
	case "n", "esc":
		m.mode = modeNormal
	}
	return m, nil
}

// executeCommand handles the ":" command line. Only export is recognized.
func (m *Model) executeCommand(command string) {
	if command == "" {
		return
	}
	if rest, ok := strings.CutPrefix(command, "export"); ok {
		target := strings.TrimSpace(rest)
		if target == "" {
			m.status = "usage: :export <file_path>"
			return
		}
		session := m.currentSession()
		if session == nil {
			return
		}
		if err := catalog.Export(session.Path, target); err != nil {
			m.status = "Export failed: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Exported %s to %s", session.ID, target)
		}
		return
	}
	m.status = "Unknown command: " + command
}

// applyFilter recomputes the filtered index list and clamps the selection so
// it never points past the visible end.
func (m *Model) applyFilter() {
	m.filtered = m.filtered[:0]
	for idx := range m.sessions {
		if m.matchesQuery(&m.sessions[idx]) {
			m.filtered = append(m.filtered, idx)
		}
	}
	if len(m.filtered) == 0 {
		m.selected = 0
	} else if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
}

// matchesQuery is a case-insensitive substring match against id, preview and
// cwd; any one field matching is enough.
func (m *Model) matchesQuery(summary *catalog.SessionSummary) bool {
	if m.query == "" {
		return true
	}
	needle := strings.ToLower(m.query)
	return strings.Contains(strings.ToLower(summary.ID), needle) ||
		strings.Contains(strings.ToLower(summary.Preview), needle) ||
		strings.Contains(strings.ToLower(summary.Cwd), needle)
}

func (m *Model) moveSelection(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.filtered) {
		return
	}
	m.selected = next
}

func (m *Model) currentSession() *catalog.SessionSummary {
	if m.selected >= len(m.filtered) {
		return nil
	}
	return &m.sessions[m.filtered[m.selected]]
}

// removeSession drops one row. The replacement slice is freshly allocated so
// the caller's original summaries stay untouched.
func (m *Model) removeSession(path string) {
	kept := make([]catalog.SessionSummary, 0, len(m.sessions))
	for _, s := range m.sessions {
		if s.Path != path {
			kept = append(kept, s)
		}
	}
	m.sessions = kept
	m.applyFilter()
}
