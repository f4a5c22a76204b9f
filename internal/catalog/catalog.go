// Package catalog lists, resolves, inspects and exports recorded Codex
// sessions straight from the date-sharded rollout tree. Listing is a bounded,
// keyset-paginated scan: no index, no state beyond the cursor token.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jharvell/codex-sessions/internal/rollout"
)

const SessionsSubdir = "sessions"

const (
	DefaultMaxScanFiles    = 10000
	DefaultHeadRecordLimit = 10
	DefaultLimit           = 20
)

// ListOptions are the query parameters for List.
type ListOptions struct {
	Limit     int
	Cursor    string
	Providers []string
	ShowAll   bool
	CwdFilter string

	// Tunables; zero means the defaults above.
	MaxScanFiles    int
	HeadRecordLimit int
}

func (o *ListOptions) normalize() {
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.MaxScanFiles < 1 {
		o.MaxScanFiles = DefaultMaxScanFiles
	}
	if o.HeadRecordLimit < 1 {
		o.HeadRecordLimit = DefaultHeadRecordLimit
	}
}

// SessionList is one page of results.
type SessionList struct {
	Sessions       []SessionSummary `json:"sessions"`
	NextCursor     string           `json:"next_cursor,omitempty"`
	ScannedFiles   int              `json:"scanned_files"`
	ReachedScanCap bool             `json:"reached_scan_cap"`
}

// List walks the year/month/day shards newest-first and returns up to
// opts.Limit summaries in (timestamp desc, id desc) order, together with a
// continuation cursor when more may exist. A missing sessions root is an
// empty catalog, not an error.
func List(codexHome string, opts ListOptions) (*SessionList, error) {
	opts.normalize()

	root := filepath.Join(codexHome, SessionsSubdir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return &SessionList{}, nil
	}

	anchor, anchorActive := Cursor{}, false
	if opts.Cursor != "" {
		anchor, anchorActive = ParseCursor(opts.Cursor)
	}
	anchorPassed := !anchorActive

	list := &SessionList{}
	moreAvailable := false

	yearDirs, err := dirsDescending(root, parseShard(1<<16-1))
	if err != nil {
		return nil, fmt.Errorf("read sessions root: %w", err)
	}

scan:
	for _, yearDir := range yearDirs {
		monthDirs, err := dirsDescending(yearDir, parseShard(1<<8-1))
		if err != nil {
			return nil, err
		}
		for _, monthDir := range monthDirs {
			dayDirs, err := dirsDescending(monthDir, parseShard(1<<8-1))
			if err != nil {
				return nil, err
			}
			for _, dayDir := range dayDirs {
				files, err := dayFilesDescending(dayDir)
				if err != nil {
					return nil, err
				}
				for _, file := range files {
					list.ScannedFiles++
					if list.ScannedFiles >= opts.MaxScanFiles && len(list.Sessions) > 0 {
						list.ReachedScanCap = true
						moreAvailable = true
						break scan
					}

					// the anchor is exclusive: resume strictly below it
					if !anchorPassed {
						if file.key.Less(anchor.Key) {
							anchorPassed = true
						} else {
							continue
						}
					}

					summary, err := summarize(file.path, opts.HeadRecordLimit)
					if err != nil || summary == nil {
						continue
					}

					if !matchesScope(summary, opts) {
						continue
					}
					if !matchesProviders(summary.Provider, opts.Providers) {
						continue
					}

					list.Sessions = append(list.Sessions, *summary)
					if len(list.Sessions) == opts.Limit {
						moreAvailable = true
						break scan
					}
				}
			}
		}
	}

	if moreAvailable && len(list.Sessions) > 0 {
		last := list.Sessions[len(list.Sessions)-1]
		if cursor, ok := cursorForPath(last.Path); ok {
			list.NextCursor = cursor.Token()
		}
	}

	return list, nil
}

// matchesScope applies directory scoping. An explicit cwd filter always
// narrows, regardless of ShowAll, and sessions with no recorded cwd never
// match it. Without a filter, inclusion requires ShowAll to have been asked
// for explicitly.
func matchesScope(summary *SessionSummary, opts ListOptions) bool {
	if opts.CwdFilter != "" {
		if summary.Cwd == "" {
			return false
		}
		return pathsMatch(summary.Cwd, opts.CwdFilter)
	}
	return opts.ShowAll
}

func matchesProviders(provider string, providers []string) bool {
	if len(providers) == 0 {
		return true
	}
	for _, candidate := range providers {
		if strings.EqualFold(candidate, provider) {
			return true
		}
	}
	return false
}

// pathsMatch compares two paths after canonicalization, falling back to
// literal equality when either cannot be resolved.
func pathsMatch(a, b string) bool {
	ca, errA := filepath.EvalSymlinks(a)
	cb, errB := filepath.EvalSymlinks(b)
	if errA == nil && errB == nil {
		if abs, err := filepath.Abs(ca); err == nil {
			ca = abs
		}
		if abs, err := filepath.Abs(cb); err == nil {
			cb = abs
		}
		return ca == cb
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// parseShard returns a parser for one shard directory level: an unsigned
// decimal with an upper bound. Non-numeric or out-of-range names are skipped.
func parseShard(max int) func(string) (int, bool) {
	return func(name string) (int, bool) {
		n, err := strconv.Atoi(name)
		if err != nil || n < 0 || n > max {
			return 0, false
		}
		return n, true
	}
}

// dirsDescending lists the immediate subdirectories whose names parse with
// the given function, sorted by parsed value descending. Reused for the year,
// month and day levels.
func dirsDescending(dir string, parse func(string) (int, bool)) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type shard struct {
		value int
		path  string
	}
	var shards []shard
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if value, ok := parse(entry.Name()); ok {
			shards = append(shards, shard{value: value, path: filepath.Join(dir, entry.Name())})
		}
	}
	sort.Slice(shards, func(i, j int) bool { return shards[i].value > shards[j].value })

	paths := make([]string, len(shards))
	for i, s := range shards {
		paths[i] = s.path
	}
	return paths, nil
}

type dayFile struct {
	key  rollout.FileKey
	path string
}

// dayFilesDescending lists the rollout files of one day shard sorted by
// (timestamp desc, id desc), materializing the local slice of the total
// order. Files that do not match the naming convention are invisible.
func dayFilesDescending(dir string) ([]dayFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []dayFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if key, ok := rollout.ParseFileName(entry.Name()); ok {
			files = append(files, dayFile{key: key, path: filepath.Join(dir, entry.Name())})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[j].key.Less(files[i].key) })
	return files, nil
}
