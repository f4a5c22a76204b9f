// Package rollout decodes the append-only JSONL files the Codex CLI writes
// for each recorded session.
package rollout

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Top-level record in a rollout JSONL file.
type Line struct {
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
}

// session_meta payload
type SessionMeta struct {
	ID            string   `json:"id"`
	Timestamp     string   `json:"timestamp"`
	Cwd           string   `json:"cwd"`
	Originator    string   `json:"originator,omitempty"`
	Source        string   `json:"source"`
	ModelProvider string   `json:"model_provider,omitempty"`
	Instructions  string   `json:"instructions,omitempty"`
	Git           *GitInfo `json:"git,omitempty"`
}

type GitInfo struct {
	Branch        string `json:"branch,omitempty"`
	RepositoryURL string `json:"repository_url,omitempty"`
}

// Session sources that count as interactive. Anything else (exec, mcp, ...)
// is a programmatic run and never shows up in listings.
const (
	SourceCLI    = "cli"
	SourceVSCode = "vscode"
)

func IsInteractiveSource(source string) bool {
	switch strings.ToLower(source) {
	case SourceCLI, SourceVSCode:
		return true
	}
	return false
}

// response_item payload
type ResponseItem struct {
	Type    string        `json:"type"`
	Role    string        `json:"role,omitempty"`
	Content []ContentItem `json:"content,omitempty"`
}

type ContentItem struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// event_msg payload (flat, not nested)
type EventPayload struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

const (
	lineTypeSessionMeta  = "session_meta"
	lineTypeResponseItem = "response_item"
	lineTypeEventMsg     = "event_msg"

	eventUserMessage = "user_message"

	contentInputText  = "input_text"
	contentOutputText = "output_text"
	contentInputImage = "input_image"
)

// FlattenContent joins the text of a message's content segments, one segment
// per line. Image references are kept as placeholders.
func FlattenContent(content []ContentItem) string {
	var b strings.Builder
	for _, c := range content {
		switch c.Type {
		case contentInputText, contentOutputText:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(c.Text)
		case contentInputImage:
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString("[image: " + c.ImageURL + "]")
		}
	}
	return b.String()
}
