package main

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/format"
)

func listCmd() *cobra.Command {
	var (
		all       bool
		cwd       string
		limit     int
		cursor    string
		providers []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded sessions and show their metadata",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			opts := e.listOptions()
			opts.ShowAll, opts.CwdFilter = resolveScope(all, cwd)
			opts.Limit = limit
			if opts.Limit < 1 {
				opts.Limit = e.cfg.PageLimit
			}
			opts.Cursor = cursor
			opts.Providers = providers

			list, err := catalog.List(e.home, opts)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(list, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			if len(list.Sessions) == 0 {
				fmt.Printf("%sNo Codex sessions were found.%s\n", colorYellow, colorReset)
				fmt.Printf("Use %s--cwd%s to focus on a directory (e.g. %scodex-sessions list --cwd ~/Projects/app%s).\n",
					colorGreen, colorReset, colorCyan, colorReset)
				return nil
			}

			// TSV for pipes, a table for humans
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				printTSV(list)
				return nil
			}

			printTable(e.cfg.CodexBin, list)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include sessions from every project directory")
	cmd.Flags().StringVar(&cwd, "cwd", "", "Restrict the listing to sessions recorded under this directory")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of sessions to display")
	cmd.Flags().StringVar(&cursor, "cursor", "", "Pagination cursor token returned by a previous invocation")
	cmd.Flags().StringSliceVar(&providers, "provider", nil, "Filter sessions by provider id (comma separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit machine-readable JSON instead of a table")

	return cmd
}

func printTSV(list *catalog.SessionList) {
	for _, s := range list.Sessions {
		updated := ""
		if s.UpdatedAt != nil {
			updated = s.UpdatedAt.Format("2006-01-02T15:04:05Z")
		}
		preview := strings.ReplaceAll(s.Preview, "\t", " ")
		preview = strings.ReplaceAll(preview, "\n", " ")
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n", s.ID, updated, s.GitBranch, s.Cwd, preview)
	}
	if list.NextCursor != "" {
		fmt.Fprintf(os.Stderr, "next cursor: %s\n", list.NextCursor)
	}
}

func printTable(codexBin string, list *catalog.SessionList) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Updated", "Branch", "CWD", "Conversation"})
	table.SetAutoWrapText(false)

	for _, s := range list.Sessions {
		updated := "unknown"
		if s.UpdatedAt != nil {
			updated = format.Relative(*s.UpdatedAt)
		}
		branch := s.GitBranch
		if branch == "" {
			branch = "-"
		}
		cwd := "(unknown)"
		if s.Cwd != "" {
			cwd = format.ShortenPath(s.Cwd, 28)
		}
		preview := s.Preview
		if preview == "" {
			preview = "(no user message yet)"
		}
		table.Append([]string{updated, branch, cwd, format.Preview(preview)})
	}
	table.Render()

	capNote := ""
	if list.ReachedScanCap {
		capNote = " (hit scan cap)"
	}
	fmt.Printf("Scanned %d files%s.\n", list.ScannedFiles, capNote)

	if list.NextCursor != "" {
		fmt.Printf("More sessions available. Continue with %s--cursor %s%s\n",
			colorGreen, list.NextCursor, colorReset)
	}

	first := list.Sessions[0]
	location := "unknown location"
	if first.Cwd != "" {
		location = format.ShortenPath(first.Cwd, 32)
	}
	fmt.Printf("To resume, run %s%s%s (%s).\n", colorCyan, first.ResumeHint(codexBin), colorReset, location)
}
