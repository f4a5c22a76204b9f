package rollout

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	FilePrefix = "rollout-"
	FileSuffix = ".jsonl"

	// Timestamp layout used in file names and pagination cursors. Second
	// precision, implicitly UTC, hyphens instead of colons so the value is
	// filesystem-safe.
	TimestampLayout = "2006-01-02T15-04-05"
)

// FileKey is the sort and pagination key decoded from a rollout file name.
// The catalog's total order is Timestamp descending, then ID descending.
type FileKey struct {
	Timestamp time.Time
	ID        uuid.UUID
}

// Less reports whether k sorts strictly below other in the descending scan
// order, i.e. k comes later in listings.
func (k FileKey) Less(other FileKey) bool {
	if !k.Timestamp.Equal(other.Timestamp) {
		return k.Timestamp.Before(other.Timestamp)
	}
	return bytes.Compare(k.ID[:], other.ID[:]) < 0
}

// ParseFileName decodes "rollout-<timestamp>-<uuid>.jsonl" into its key.
// The UUID is located by scanning hyphens from the end, since the timestamp
// itself contains hyphens. Returns false for anything that does not match.
func ParseFileName(name string) (FileKey, bool) {
	core, ok := strings.CutPrefix(name, FilePrefix)
	if !ok {
		return FileKey{}, false
	}
	core, ok = strings.CutSuffix(core, FileSuffix)
	if !ok {
		return FileKey{}, false
	}

	for idx := strings.LastIndexByte(core, '-'); idx > 0; idx = strings.LastIndexByte(core[:idx], '-') {
		id, err := uuid.Parse(core[idx+1:])
		if err != nil {
			continue
		}
		ts, err := time.ParseInLocation(TimestampLayout, core[:idx], time.UTC)
		if err != nil {
			return FileKey{}, false
		}
		return FileKey{Timestamp: ts, ID: id}, true
	}
	return FileKey{}, false
}

// FormatFileName is the inverse of ParseFileName.
func FormatFileName(key FileKey) string {
	return FilePrefix + key.Timestamp.UTC().Format(TimestampLayout) + "-" + key.ID.String() + FileSuffix
}
