package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/browser"
	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/config"
	"github.com/jharvell/codex-sessions/internal/home"
)

var version = "dev"

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[1;36m"
	colorGreen  = "\033[1;32m"
	colorRed    = "\033[1;31m"
	colorYellow = "\033[1;33m"
	colorDim    = "\033[2m"
)

var (
	flagCodexHome string
	flagCodexBin  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "codex-sessions",
		Short:         "Browse, resume, inspect, export and delete recorded Codex sessions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagCodexHome, "codex-home", "", "Override the Codex home directory")
	rootCmd.PersistentFlags().StringVar(&flagCodexBin, "codex-bin", "", "Path to the codex binary used to resume sessions")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(resumeCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg  *config.Config
	home string
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flagCodexBin != "" {
		cfg.CodexBin = flagCodexBin
	}
	dir, err := home.Resolve(flagCodexHome, cfg.CodexHome)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, home: dir}, nil
}

func (e *env) listOptions() catalog.ListOptions {
	return catalog.ListOptions{
		MaxScanFiles:    e.cfg.MaxScanFiles,
		HeadRecordLimit: e.cfg.HeadRecordLimit,
	}
}

// resolveScope maps the --all/--cwd flags onto catalog scoping: an explicit
// directory always narrows, otherwise everything is in scope and --all only
// makes that explicit.
func resolveScope(all bool, cwd string) (showAll bool, cwdFilter string) {
	if cwd != "" {
		return false, cwd
	}
	return true, ""
}

func runInteractive() error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	opts := e.listOptions()
	opts.Limit = 500
	opts.ShowAll = true

	list, err := catalog.List(e.home, opts)
	if err != nil {
		return err
	}
	if len(list.Sessions) == 0 {
		fmt.Println("No Codex sessions recorded yet. Start a session to manage history.")
		return nil
	}

	outcome, err := browser.Run(list.Sessions, e.cfg.CodexBin)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case browser.OutcomeResume:
		fmt.Printf("Resuming session %s%s%s\n", colorCyan, outcome.Session.ID, colorReset)
		return resumeSession(e.cfg.CodexBin, outcome.Session.ID)

	case browser.OutcomeJump:
		if outcome.Session.Cwd != "" {
			if err := os.Chdir(outcome.Session.Cwd); err != nil {
				return fmt.Errorf("cd to %s: %w", outcome.Session.Cwd, err)
			}
			fmt.Printf("Changed directory to %s\n", outcome.Session.Cwd)
		} else {
			fmt.Println("No CWD recorded; staying in current directory")
		}
		fmt.Printf("Resuming session %s%s%s\n", colorCyan, outcome.Session.ID, colorReset)
		return resumeSession(e.cfg.CodexBin, outcome.Session.ID)
	}
	return nil
}

// resumeSession hands the terminal to the agent binary.
func resumeSession(codexBin, sessionID string) error {
	cmd := exec.Command(codexBin, "resume", sessionID)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited: %w", codexBin, err)
	}
	return nil
}
