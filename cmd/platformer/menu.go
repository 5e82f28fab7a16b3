package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive level picker",
	Long: `Pick a built-in level from a menu. Esc in a level returns to the menu.

Controls:
  Up/Down or J/K  - Navigate
  Enter/Space     - Play
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, closeLog, err := settings(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	return tui.RunSession(s, width, height)
}
