// Package format holds the small display helpers shared by the CLI commands
// and the browser.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

const previewMax = 80

// Preview truncates a session preview to a single displayable line.
func Preview(text string) string {
	if runewidth.StringWidth(text) <= previewMax {
		return text
	}
	return runewidth.Truncate(text, previewMax, "…")
}

// Relative renders a timestamp as "3 days ago (2026-01-02 15:04)".
func Relative(t time.Time) string {
	return fmt.Sprintf("%s (%s)", humanize.Time(t), t.UTC().Format("2006-01-02 15:04"))
}

// ShortenPath keeps the tail of a path within maxWidth columns, prefixing an
// ellipsis when the head was cut off.
func ShortenPath(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(path) <= maxWidth {
		return path
	}
	keep := maxWidth - 1
	if keep < 1 {
		keep = 1
	}
	return "…" + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-keep, "")
}
