package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jharvell/codex-sessions/internal/rollout"
)

// ErrNotFound is returned when a query resolves to no recorded session.
var ErrNotFound = errors.New("no sessions found")

// ResolvePath turns a user-supplied query into the path of a rollout file.
// The query is either a path to an existing file or a bare session UUID
// looked up by searching the sessions tree.
func ResolvePath(codexHome, query string) (string, error) {
	if _, err := os.Stat(query); err == nil {
		return query, nil
	}

	id, err := uuid.Parse(query)
	if err != nil {
		return "", fmt.Errorf("%s is not a valid session id or file path: %w", query, ErrNotFound)
	}

	root := filepath.Join(codexHome, SessionsSubdir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return "", ErrNotFound
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if key, ok := rollout.ParseFileName(d.Name()); ok && key.ID == id {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", ErrNotFound
	}
	return found, nil
}

// LoadDetail produces the full detail record for one rollout file. Unlike the
// scan path, an unreadable or non-interactive file is an error here: the
// caller asked for this specific session.
func LoadDetail(path string, headLimit int) (*SessionDetail, error) {
	if headLimit < 1 {
		headLimit = DefaultHeadRecordLimit
	}
	summary, err := summarize(path, headLimit)
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}
	if summary == nil {
		return nil, ErrNotFound
	}

	head, err := rollout.ReadHead(path, headLimit)
	if err != nil {
		return nil, err
	}

	detail := &SessionDetail{Summary: *summary, Meta: head.Meta}
	if head.Meta != nil {
		detail.Instructions = head.Meta.Instructions
		detail.Source = head.Meta.Source
	}
	return detail, nil
}

// Delete removes the rollout file backing a session. Irreversible; callers own
// the confirmation step.
func Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
