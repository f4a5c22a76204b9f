package rollout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rollout.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func metaLine(ts, id, source string) string {
	return fmt.Sprintf(`{"timestamp":%q,"type":"session_meta","payload":{"id":%q,"timestamp":%q,"cwd":"/proj","source":%q,"model_provider":"openai"}}`,
		ts, id, ts, source)
}

func userMessageLine(ts, text string) string {
	return fmt.Sprintf(`{"timestamp":%q,"type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":%q}]}}`,
		ts, text)
}

func userEventLine(ts string) string {
	return fmt.Sprintf(`{"timestamp":%q,"type":"event_msg","payload":{"type":"user_message","message":"x"}}`, ts)
}

func TestReadHeadStopsOnceMetaAndUserSeen(t *testing.T) {
	lines := []string{
		metaLine("2026-01-01T10:00:00Z", "11111111-1111-4111-8111-111111111111", "cli"),
		userMessageLine("2026-01-01T10:00:01Z", "hello there"),
		userEventLine("2026-01-01T10:00:01Z"),
	}
	// plenty of trailing records that must never be read
	for i := 0; i < 50; i++ {
		lines = append(lines, userMessageLine("2026-01-01T11:00:00Z", "later"))
	}

	head, err := ReadHead(writeLog(t, lines...), 10)
	require.NoError(t, err)
	assert.True(t, head.SawMeta)
	assert.True(t, head.SawUserEvent)
	require.NotNil(t, head.Meta)
	assert.Equal(t, "cli", head.Meta.Source)
	assert.Len(t, head.Messages, 1)
	assert.Equal(t, "2026-01-01T10:00:00Z", head.FirstSeen)
	assert.Equal(t, "2026-01-01T10:00:01Z", head.LastSeen)
}

func TestReadHeadHonorsRecordLimit(t *testing.T) {
	lines := []string{metaLine("2026-01-01T10:00:00Z", "11111111-1111-4111-8111-111111111111", "cli")}
	for i := 0; i < 20; i++ {
		lines = append(lines, userMessageLine("2026-01-01T10:00:01Z", "assistant chatter"))
	}
	lines = append(lines, userEventLine("2026-01-01T10:00:02Z"))

	head, err := ReadHead(writeLog(t, lines...), 5)
	require.NoError(t, err)
	assert.True(t, head.SawMeta)
	assert.False(t, head.SawUserEvent, "user event past the head window must not be seen")
	assert.Len(t, head.Messages, 4)
}

func TestReadHeadLimitBoundary(t *testing.T) {
	// meta and the user event both land exactly at the window boundary
	lines := []string{}
	for i := 0; i < 9; i++ {
		lines = append(lines, userMessageLine("2026-01-01T10:00:00Z", "preamble"))
	}
	lines = append(lines,
		metaLine("2026-01-01T10:00:01Z", "11111111-1111-4111-8111-111111111111", "cli"),
		userEventLine("2026-01-01T10:00:02Z"),
	)

	head, err := ReadHead(writeLog(t, lines...), 10)
	require.NoError(t, err)
	assert.True(t, head.SawMeta, "meta at position K is still inside the window")
	assert.False(t, head.SawUserEvent, "event after the K-th record is outside the window")
}

func TestReadHeadSkipsBlankAndMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"not json at all",
		`{"timestamp":"2026-01-01T10:00:00Z","type":"turn_context","payload":{}}`,
		metaLine("2026-01-01T10:00:00Z", "11111111-1111-4111-8111-111111111111", "cli"),
		`{"truncated`,
		userEventLine("2026-01-01T10:00:01Z"),
	}
	head, err := ReadHead(writeLog(t, lines...), 10)
	require.NoError(t, err)
	assert.True(t, head.SawMeta)
	assert.True(t, head.SawUserEvent)
}

func TestReadHeadMissingFile(t *testing.T) {
	_, err := ReadHead(filepath.Join(t.TempDir(), "nope.jsonl"), 10)
	assert.Error(t, err)
}

func TestFlattenContent(t *testing.T) {
	text := FlattenContent([]ContentItem{
		{Type: "input_text", Text: "first"},
		{Type: "input_image", ImageURL: "http://img"},
		{Type: "output_text", Text: "second"},
		{Type: "unknown_kind", Text: "dropped"},
	})
	assert.Equal(t, "first\n[image: http://img]\nsecond", text)
}
