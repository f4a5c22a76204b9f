package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".codex"), cfg.CodexHome)
	assert.Equal(t, "codex", cfg.CodexBin)
	assert.Equal(t, 10, cfg.HeadRecordLimit)
	assert.Equal(t, 10000, cfg.MaxScanFiles)
	assert.Equal(t, 20, cfg.PageLimit)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "codex-sessions")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
codex_home = "~/agent-logs"
codex_bin = "/usr/local/bin/codex"
head_record_limit = 25
page_limit = 50
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "agent-logs"), cfg.CodexHome)
	assert.Equal(t, "/usr/local/bin/codex", cfg.CodexBin)
	assert.Equal(t, 25, cfg.HeadRecordLimit)
	assert.Equal(t, 50, cfg.PageLimit)
	assert.Equal(t, 10000, cfg.MaxScanFiles, "unset keys keep defaults")
}

func TestLoadClampsBadValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "codex-sessions")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
head_record_limit = 0
max_scan_files = -5
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.HeadRecordLimit)
	assert.Equal(t, 10000, cfg.MaxScanFiles)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "codex-sessions")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("= not toml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}
