package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/catalog"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export SESSION_ID_OR_PATH TARGET",
		Short: "Export a session transcript (.md, .json or .jsonl by extension)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			path, err := catalog.ResolvePath(e.home, args[0])
			if err != nil {
				return err
			}
			if err := catalog.Export(path, args[1]); err != nil {
				return err
			}
			fmt.Printf("Exported %s%s%s to %s\n", colorGreen, args[0], colorReset, args[1])
			return nil
		},
	}
}
