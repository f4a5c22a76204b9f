package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jharvell/codex-sessions/internal/rollout"
)

// ChatEntry is one turn of an exported transcript.
type ChatEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Export writes a session transcript to target. The format follows the target
// extension: .jsonl copies the raw log, .json writes the chat entries as
// pretty JSON, anything else gets a Markdown transcript.
func Export(source, target string) error {
	ext := strings.ToLower(filepath.Ext(target))
	if ext == ".pdf" {
		return fmt.Errorf("pdf export is not supported; use .md, .json or .jsonl")
	}

	if parent := filepath.Dir(target); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create export directory %s: %w", parent, err)
		}
	}

	if ext == ".jsonl" {
		return copyFile(source, target)
	}

	meta, entries, err := readEntries(source)
	if err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", target, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if ext == ".json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return err
		}
	} else {
		if _, err := w.WriteString(renderMarkdown(meta, entries)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// readEntries reads the whole log, keeping every non-empty message turn.
// Bad lines are skipped like everywhere else on the read path.
func readEntries(source string) (*rollout.SessionMeta, []ChatEntry, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("open session file %s: %w", source, err)
	}
	defer f.Close()

	var meta *rollout.SessionMeta
	entries := []ChatEntry{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec rollout.Line
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		switch rec.Type {
		case "session_meta":
			if meta == nil {
				var m rollout.SessionMeta
				if err := json.Unmarshal(rec.Payload, &m); err == nil {
					meta = &m
				}
			}
		case "response_item":
			var item rollout.ResponseItem
			if err := json.Unmarshal(rec.Payload, &item); err != nil {
				continue
			}
			if item.Type != "message" {
				continue
			}
			text := rollout.FlattenContent(item.Content)
			if strings.TrimSpace(text) == "" {
				continue
			}
			entries = append(entries, ChatEntry{Role: item.Role, Content: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return meta, entries, nil
}

func renderMarkdown(meta *rollout.SessionMeta, entries []ChatEntry) string {
	var b strings.Builder
	if meta != nil {
		fmt.Fprintf(&b, "# Session %s\n\n", meta.ID)
		fmt.Fprintf(&b, "- started: %s\n", meta.Timestamp)
		fmt.Fprintf(&b, "- cwd: %s\n", meta.Cwd)
		if meta.ModelProvider != "" {
			fmt.Fprintf(&b, "- provider: %s\n", meta.ModelProvider)
		}
		b.WriteString("\n")
	}
	for _, entry := range entries {
		content := strings.TrimSpace(entry.Content)
		if content == "" {
			continue
		}
		fmt.Fprintf(&b, "**%s**\n%s\n\n", strings.ToUpper(entry.Role), content)
	}
	return b.String()
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open session file %s: %w", source, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
