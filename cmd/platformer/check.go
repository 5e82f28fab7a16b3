package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parse a level file and report its size and spawn point.
Exits with status 2 when the level cannot be loaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := level.LoadFile(args[0])
	if err != nil {
		return err
	}

	w := lvl.World
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: ok\n", args[0])
	fmt.Fprintf(out, "  id:     %s\n", lvl.ID)
	fmt.Fprintf(out, "  name:   %s\n", lvl.Title())
	fmt.Fprintf(out, "  size:   %dx%d\n", w.Width(), w.Height())
	fmt.Fprintf(out, "  spawn:  %d,%d\n", lvl.SpawnX, lvl.SpawnY)
	fmt.Fprintf(out, "  solid:  %d tiles\n", w.SolidCount())
	return nil
}
