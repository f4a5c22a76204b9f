package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathByExistingPath(t *testing.T) {
	home := t.TempDir()
	path := writeSession(t, home, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), idA, sessionSpec{})

	resolved, err := ResolvePath(home, path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolvePathByUUID(t *testing.T) {
	home := t.TempDir()
	want := writeSession(t, home, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), idA, sessionSpec{})
	writeSession(t, home, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), idB, sessionSpec{})

	resolved, err := ResolvePath(home, idA)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

func TestResolvePathUnknownUUID(t *testing.T) {
	home := t.TempDir()
	writeSession(t, home, time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), idA, sessionSpec{})

	_, err := ResolvePath(home, idD)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePathMalformedQuery(t *testing.T) {
	_, err := ResolvePath(t.TempDir(), "definitely-not-a-uuid-or-path")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDetail(t *testing.T) {
	home := t.TempDir()
	path := writeSessionFile(t,
		filepath.Join(home, SessionsSubdir, "2026", "01", "01"),
		"rollout-2026-01-01T10-00-00-"+idA+".jsonl",
		sessionSpec{
			id:           idA,
			ts:           "2026-01-01T10:00:00Z",
			source:       "cli",
			provider:     "openai",
			instructions: "always run the linter",
			userText:     []string{"ship it"},
		}.lines()...)

	detail, err := LoadDetail(path, DefaultHeadRecordLimit)
	require.NoError(t, err)
	assert.Equal(t, idA, detail.Summary.ID)
	assert.Equal(t, "cli", detail.Source)
	assert.Equal(t, "always run the linter", detail.Instructions)
	require.NotNil(t, detail.Meta)
	assert.Equal(t, "openai", detail.Meta.ModelProvider)
}

func TestLoadDetailRejectsHeadlessLog(t *testing.T) {
	home := t.TempDir()
	spec := sessionSpec{id: idA, ts: "2026-01-01T10:00:00Z", userText: []string{"x"}}
	path := writeSessionFile(t, filepath.Join(home, SessionsSubdir, "2026", "01", "01"),
		"rollout-2026-01-01T10-00-00-"+idA+".jsonl",
		spec.lines()[:2]...)

	_, err := LoadDetail(path, DefaultHeadRecordLimit)
	assert.True(t, errors.Is(err, ErrNotFound))
}
