package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/format"
	"github.com/jharvell/codex-sessions/internal/open"
)

func infoCmd() *cobra.Command {
	var openLog bool

	cmd := &cobra.Command{
		Use:   "info SESSION_ID_OR_PATH",
		Short: "Show details about a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			path, err := catalog.ResolvePath(e.home, args[0])
			if err != nil {
				return err
			}
			detail, err := catalog.LoadDetail(path, e.cfg.HeadRecordLimit)
			if err != nil {
				return err
			}

			printDetail(e.cfg.CodexBin, detail)

			if openLog {
				return open.Run(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&openLog, "open", false, "Open the raw session log in $EDITOR after printing details")

	return cmd
}

func printDetail(codexBin string, detail *catalog.SessionDetail) {
	s := detail.Summary
	fmt.Printf("Session : %s%s%s\n", colorGreen, s.ID, colorReset)
	fmt.Printf("Path    : %s\n", s.Path)
	if s.Cwd != "" {
		fmt.Printf("CWD     : %s\n", s.Cwd)
	}
	if s.Provider != "" {
		fmt.Printf("Provider: %s\n", s.Provider)
	}
	if s.GitBranch != "" {
		fmt.Printf("Git     : %s\n", s.GitBranch)
	}
	if s.CreatedAt != nil {
		fmt.Printf("Started : %s\n", format.Relative(*s.CreatedAt))
	}
	if s.UpdatedAt != nil {
		fmt.Printf("Updated : %s\n", format.Relative(*s.UpdatedAt))
	}
	if detail.Source != "" {
		fmt.Printf("Source  : %s\n", detail.Source)
	}
	if detail.Instructions != "" {
		fmt.Printf("Notes   : %s\n", format.Preview(detail.Instructions))
	}
	fmt.Printf("Resume  : %s%s%s\n", colorCyan, s.ResumeHint(codexBin), colorReset)
}
