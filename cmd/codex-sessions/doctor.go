package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jharvell/codex-sessions/internal/catalog"
	"github.com/jharvell/codex-sessions/internal/rollout"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify the sessions tree and show stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			fmt.Println("=== Codex Home ===")
			checkDir("Home", e.home)
			root := filepath.Join(e.home, catalog.SessionsSubdir)
			checkDir("Sessions", root)

			fmt.Println("\n=== Config ===")
			fmt.Printf("  Binary:            %s\n", e.cfg.CodexBin)
			fmt.Printf("  Head record limit: %d\n", e.cfg.HeadRecordLimit)
			fmt.Printf("  Max scan files:    %d\n", e.cfg.MaxScanFiles)

			if _, err := os.Stat(root); err != nil {
				return nil
			}

			perYear := map[string]int{}
			unrecognized := 0
			err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if d.IsDir() {
					return nil
				}
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					return nil
				}
				year := firstSegment(rel)
				if _, ok := rollout.ParseFileName(d.Name()); ok {
					perYear[year]++
				} else {
					unrecognized++
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Println("\n=== Rollout Files ===")
			years := make([]string, 0, len(perYear))
			for y := range perYear {
				years = append(years, y)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(years)))
			total := 0
			for _, y := range years {
				fmt.Printf("  %s: %d\n", y, perYear[y])
				total += perYear[y]
			}
			fmt.Printf("  Total: %d (plus %d unrecognized files)\n", total, unrecognized)

			return nil
		},
	}
}

func firstSegment(rel string) string {
	for i := 0; i < len(rel); i++ {
		if os.IsPathSeparator(rel[i]) {
			return rel[:i]
		}
	}
	return rel
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
