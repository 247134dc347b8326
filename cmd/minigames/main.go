// minigames is a launcher for terminal visualizers: Conway's Game of Life,
// a random walk and a bouncing ball.
//
// Usage:
//
//	minigames              - Pick a visualizer from the menu
//	minigames list         - List available visualizers
//	minigames run <id>     - Run one visualizer directly
//	minigames stats        - Plot Game of Life population over time
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Load settings from a YAML file
//	--log-file <path>    - Write logs to a file (without it, logs go to stderr
//	                       only when stderr is not a terminal)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--plain              - Draw the menu without Bubble Tea
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagPlain    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minigames",
	Short: "Terminal mini-games - cellular automaton and point animations",
	Long: `minigames shows a menu of terminal visualizers and runs the one you pick.
Each visualizer takes over the alternate screen until you press q, then
the menu comes back.

Available commands:
  list     - Show all available visualizers
  run      - Run a specific visualizer directly
  stats    - Plot Game of Life population without the animation

Examples:
  minigames
  minigames --seed 42
  minigames run life
  minigames --config ./minigames.yaml run bouncingball`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr, dropped when stderr is a terminal)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Draw the menu directly on the terminal")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := notifyContext(cmd.Context())
	defer stop()

	return a.dispatcher().Run(ctx)
}
