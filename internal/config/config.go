package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	CodexHome       string `toml:"codex_home"`
	CodexBin        string `toml:"codex_bin"`
	HeadRecordLimit int    `toml:"head_record_limit"`
	MaxScanFiles    int    `toml:"max_scan_files"`
	PageLimit       int    `toml:"page_limit"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CodexHome:       filepath.Join(home, ".codex"),
		CodexBin:        "codex",
		HeadRecordLimit: 10,
		MaxScanFiles:    10000,
		PageLimit:       20,
	}

	cfgPath := filepath.Join(home, ".config", "codex-sessions", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.CodexHome = expandHome(cfg.CodexHome, home)

	if cfg.HeadRecordLimit < 1 {
		cfg.HeadRecordLimit = 10
	}
	if cfg.MaxScanFiles < 1 {
		cfg.MaxScanFiles = 10000
	}
	if cfg.PageLimit < 1 {
		cfg.PageLimit = 20
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
