package catalog

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jharvell/codex-sessions/internal/rollout"
)

// Cursor is the decoded pagination token: an exclusive lower bound in the
// descending (timestamp, id) order. The raw string form never travels past
// this boundary.
type Cursor struct {
	Key rollout.FileKey
}

// Token formats the cursor as "<timestamp>|<uuid>". The timestamp layout has
// second precision, matching the file name format, so a round trip never
// loses information.
func (c Cursor) Token() string {
	return c.Key.Timestamp.UTC().Format(rollout.TimestampLayout) + "|" + c.Key.ID.String()
}

// ParseCursor decodes a token. A malformed token yields ok=false and is
// treated as "no cursor" by callers.
func ParseCursor(token string) (Cursor, bool) {
	tsStr, idStr, found := strings.Cut(token, "|")
	if !found {
		return Cursor{}, false
	}
	ts, err := time.ParseInLocation(rollout.TimestampLayout, tsStr, time.UTC)
	if err != nil {
		return Cursor{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Cursor{}, false
	}
	return Cursor{Key: rollout.FileKey{Timestamp: ts, ID: id}}, true
}

// cursorForPath rebuilds a cursor from an emitted summary's file path.
func cursorForPath(path string) (Cursor, bool) {
	key, ok := rollout.ParseFileName(filepath.Base(path))
	if !ok {
		return Cursor{}, false
	}
	return Cursor{Key: key}, true
}
