// Package open launches the user's editor or pager on a rollout file.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditorCommand builds the command that opens filePath in $EDITOR, falling
// back to less. The caller decides how to run it (directly for one-shot
// commands, via the TUI's exec handoff from the browser).
func EditorCommand(filePath string) (*exec.Cmd, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	var cmd *exec.Cmd
	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		cmd = exec.Command(editor, "+1", filePath)
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--wait", filePath)
	default:
		cmd = exec.Command(editor, filePath)
	}
	return cmd, nil
}

// Run opens the file and blocks until the editor exits.
func Run(filePath string) error {
	cmd, err := EditorCommand(filePath)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
