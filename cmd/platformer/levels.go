package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all built-in levels",
	Long:  `Shows a list of all levels in the built-in catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, info := range infos {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, info.ID, info.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'platformer play <id>' to play a level.")
	return nil
}
