package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviewShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "fix the build", Preview("fix the build"))
}

func TestPreviewTruncatesWithEllipsis(t *testing.T) {
	long := strings.Repeat("a", 120)
	got := Preview(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 80)
}

func TestRelativeIncludesUTCStamp(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	got := Relative(ts)
	assert.Contains(t, got, "(2026-01-02 15:04)")
}

func TestShortenPath(t *testing.T) {
	assert.Equal(t, "/short", ShortenPath("/short", 30))
	assert.Equal(t, "", ShortenPath("/anything", 0))

	got := ShortenPath("/home/user/projects/deeply/nested/dir", 12)
	assert.True(t, strings.HasPrefix(got, "…"))
	assert.True(t, strings.HasSuffix(got, "/dir"))
}
