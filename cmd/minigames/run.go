package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run a visualizer",
	Long: `Run the specified visualizer without the menu.

Controls:
  q        - Quit (configurable with quit_key)
  Ctrl+C   - Interrupt

Examples:
  minigames run life
  minigames run randomwalk --seed 7
  minigames run bouncingball --log-level debug --log-file ./minigames.log`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.reg.Exists(args[0]) {
			return fmt.Errorf("unknown visualizer %q (run 'minigames list' to see available ones)", args[0])
		}

		ctx, stop := notifyContext(cmd.Context())
		defer stop()

		return a.dispatcher().RunOne(ctx, args[0])
	},
}
