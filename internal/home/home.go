package home

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve picks the Codex home directory. Precedence: explicit override flag,
// then the CODEX_HOME environment variable, then the configured fallback,
// then ~/.codex. Flag and env overrides must point at an existing directory;
// the fallback may not exist yet.
func Resolve(override, fallback string) (string, error) {
	if override != "" {
		return canonicalizeExisting(override)
	}

	if env := strings.TrimSpace(os.Getenv("CODEX_HOME")); env != "" {
		return canonicalizeExisting(env)
	}

	if fallback != "" {
		return fallback, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".codex"), nil
}

func canonicalizeExisting(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("%s does not exist: %w", path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}
	return abs, nil
}
