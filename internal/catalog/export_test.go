package catalog

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportSource(t *testing.T) string {
	spec := sessionSpec{
		id:       "11111111-1111-4111-8111-111111111111",
		ts:       "2026-01-01T10:00:00Z",
		provider: "openai",
		userText: []string{"hello agent"},
	}
	lines := spec.lines()
	lines = append(lines,
		`{"timestamp":"2026-01-01T10:00:05Z","type":"response_item","payload":{"type":"message","role":"assistant","content":[{"type":"output_text","text":"hello user"}]}}`,
		`{"timestamp":"2026-01-01T10:00:06Z","type":"response_item","payload":{"type":"reasoning"}}`,
		"not json",
	)
	return writeSessionFile(t, t.TempDir(), "rollout-2026-01-01T10-00-00-11111111-1111-4111-8111-111111111111.jsonl", lines...)
}

func TestExportMarkdown(t *testing.T) {
	source := exportSource(t)
	target := filepath.Join(t.TempDir(), "out", "chat.md")
	require.NoError(t, Export(source, target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# Session 11111111-1111-4111-8111-111111111111")
	assert.Contains(t, text, "- provider: openai")
	assert.Contains(t, text, "**USER**\nhello agent")
	assert.Contains(t, text, "**ASSISTANT**\nhello user")
}

func TestExportJSON(t *testing.T) {
	source := exportSource(t)
	target := filepath.Join(t.TempDir(), "chat.json")
	require.NoError(t, Export(source, target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var entries []ChatEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "user", entries[0].Role)
	assert.Equal(t, "hello agent", entries[0].Content)
	assert.Equal(t, "assistant", entries[1].Role)
}

func TestExportJSONLCopiesRawLog(t *testing.T) {
	source := exportSource(t)
	target := filepath.Join(t.TempDir(), "copy.jsonl")
	require.NoError(t, Export(source, target))

	want, err := os.ReadFile(source)
	require.NoError(t, err)
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExportPDFUnsupported(t *testing.T) {
	source := exportSource(t)
	err := Export(source, filepath.Join(t.TempDir(), "chat.pdf"))
	assert.Error(t, err)
}

func TestExportMissingSource(t *testing.T) {
	err := Export(filepath.Join(t.TempDir(), "nope.jsonl"), filepath.Join(t.TempDir(), "out.md"))
	assert.Error(t, err)
}
