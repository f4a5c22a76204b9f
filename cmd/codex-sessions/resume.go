package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/browser"
	"github.com/jharvell/codex-sessions/internal/catalog"
)

func resumeCmd() *cobra.Command {
	var (
		last   bool
		all    bool
		cwd    string
		limit  int
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "resume [SESSION_ID_OR_PATH]",
		Short: "Spawn the agent to resume a recorded session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			var summary catalog.SessionSummary
			switch {
			case len(args) == 1:
				path, err := catalog.ResolvePath(e.home, args[0])
				if err != nil {
					return err
				}
				detail, err := catalog.LoadDetail(path, e.cfg.HeadRecordLimit)
				if err != nil {
					return err
				}
				summary = detail.Summary

			case last:
				opts := e.listOptions()
				opts.ShowAll, opts.CwdFilter = resolveScope(all, cwd)
				opts.Limit = 1
				list, err := catalog.List(e.home, opts)
				if err != nil {
					return err
				}
				if len(list.Sessions) == 0 {
					return fmt.Errorf("no recorded sessions found")
				}
				summary = list.Sessions[0]

			default:
				opts := e.listOptions()
				opts.ShowAll, opts.CwdFilter = resolveScope(all, cwd)
				opts.Limit = limit
				list, err := catalog.List(e.home, opts)
				if err != nil {
					return err
				}
				if len(list.Sessions) == 0 {
					return fmt.Errorf("no recorded sessions available to resume")
				}
				outcome, err := browser.Run(list.Sessions, e.cfg.CodexBin)
				if err != nil {
					return err
				}
				if outcome.Kind == browser.OutcomeNone {
					return nil
				}
				summary = outcome.Session
			}

			if dryRun {
				fmt.Printf("%s%s resume %s%s\n", colorCyan, e.cfg.CodexBin, summary.ID, colorReset)
				return nil
			}

			fmt.Printf("Resuming session %s%s%s\n", colorCyan, summary.ID, colorReset)
			return resumeSession(e.cfg.CodexBin, summary.ID)
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Automatically resume the most recent session")
	cmd.Flags().BoolVar(&all, "all", false, "Include sessions from every project directory when prompting")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Restrict prompting to sessions recorded under this directory")
	cmd.Flags().IntVar(&limit, "limit", 25, "Show at most this many sessions in the picker")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command but do not execute it")

	return cmd
}
