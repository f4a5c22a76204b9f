package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/catalog"
)

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete SESSION_ID_OR_PATH",
		Short: "Delete a recorded session",
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

			if !yes {
				fmt.Printf("Delete session %s%s%s recorded at %s?\n",
					colorRed, detail.Summary.ID, colorReset, path)
				if !confirm("This cannot be undone. Continue? [y/N] ") {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := catalog.Delete(path); err != nil {
				return err
			}
			fmt.Printf("Removed session %s%s%s\n", colorRed, detail.Summary.ID, colorReset)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
