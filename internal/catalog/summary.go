package catalog

import (
	"os"
	"strings"
	"time"

	"github.com/jharvell/codex-sessions/internal/rollout"
)

// SessionSummary is one row in a listing. Immutable once produced.
type SessionSummary struct {
	ID        string     `json:"id"`
	Path      string     `json:"path"`
	Preview   string     `json:"preview,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Cwd       string     `json:"cwd,omitempty"`
	GitBranch string     `json:"git_branch,omitempty"`
	Provider  string     `json:"provider,omitempty"`
}

// ResumeHint is the command line that resumes this session.
func (s SessionSummary) ResumeHint(codexBin string) string {
	if codexBin == "" {
		codexBin = "codex"
	}
	return codexBin + " resume " + s.ID
}

// SessionDetail is a summary plus the fields only the info/delete flows need.
type SessionDetail struct {
	Summary      SessionSummary       `json:"summary"`
	Instructions string               `json:"instructions,omitempty"`
	Source       string               `json:"source,omitempty"`
	Meta         *rollout.SessionMeta `json:"meta,omitempty"`
}

// summarize reads the head of one rollout file and produces a summary, or nil
// when the file does not represent a genuine interactive session: it must
// carry a session-meta record and at least one user-authored event within the
// head window, and its recorded source must be interactive.
func summarize(path string, headLimit int) (*SessionSummary, error) {
	head, err := rollout.ReadHead(path, headLimit)
	if err != nil {
		return nil, err
	}
	if !head.SawMeta || !head.SawUserEvent || head.Meta == nil {
		return nil, nil
	}
	if !rollout.IsInteractiveSource(head.Meta.Source) {
		return nil, nil
	}

	createdAt := parseRecordTime(head.FirstSeen)
	updatedAt := parseRecordTime(head.LastSeen)
	if updatedAt == nil {
		updatedAt = fileModifiedTime(path)
	}
	if updatedAt == nil {
		updatedAt = createdAt
	}

	return &SessionSummary{
		ID:        head.Meta.ID,
		Path:      path,
		Preview:   previewFromHead(head),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Cwd:       head.Meta.Cwd,
		GitBranch: gitBranch(head.Meta),
		Provider:  head.Meta.ModelProvider,
	}, nil
}

func gitBranch(meta *rollout.SessionMeta) string {
	if meta.Git == nil {
		return ""
	}
	return meta.Git.Branch
}

// previewFromHead derives the preview from the first user message in the head
// window. A segment starting with a session-bootstrap marker means the whole
// message is boilerplate and the session gets no preview at all; segments that
// look like standing instructions are dropped individually.
func previewFromHead(head *rollout.Head) string {
	for _, item := range head.Messages {
		if item.Type != "message" || item.Role != "user" {
			continue
		}

		var pieces []string
		for _, c := range item.Content {
			if c.Type != "input_text" {
				continue
			}
			if isSessionPrefix(c.Text) {
				return ""
			}
			trimmed := strings.TrimSpace(c.Text)
			if trimmed == "" {
				continue
			}
			if looksLikeInstructions(trimmed) {
				continue
			}
			pieces = append(pieces, trimmed)
		}
		return strings.Join(pieces, " ")
	}
	return ""
}

func isSessionPrefix(text string) bool {
	lowered := strings.ToLower(strings.TrimLeft(text, " \t\r\n"))
	return strings.HasPrefix(lowered, "<environment_context>") ||
		strings.HasPrefix(lowered, "<user_instructions>")
}

func looksLikeInstructions(text string) bool {
	return strings.HasPrefix(text, "# AGENTS") || strings.Contains(text, "<INSTRUCTIONS>")
}

// parseRecordTime parses the RFC3339 timestamps rollout records carry.
func parseRecordTime(ts string) *time.Time {
	if ts == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func fileModifiedTime(path string) *time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	mod := info.ModTime().UTC()
	return &mod
}
