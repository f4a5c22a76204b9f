package open

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rollout.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	return path
}

func TestEditorCommandDefaultsToLess(t *testing.T) {
	t.Setenv("EDITOR", "")
	path := writeFile(t)

	cmd, err := EditorCommand(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"less", path}, cmd.Args)
}

func TestEditorCommandVimOpensAtTop(t *testing.T) {
	t.Setenv("EDITOR", "nvim")
	path := writeFile(t)

	cmd, err := EditorCommand(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nvim", "+1", path}, cmd.Args)
}

func TestEditorCommandCodeWaits(t *testing.T) {
	t.Setenv("EDITOR", "code")
	path := writeFile(t)

	cmd, err := EditorCommand(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", path}, cmd.Args)
}

func TestEditorCommandMissingFile(t *testing.T) {
	_, err := EditorCommand(filepath.Join(t.TempDir(), "gone.jsonl"))
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "gone.jsonl"))
	assert.Error(t, err)
}
