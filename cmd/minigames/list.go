package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available visualizers",
	Long:  `Shows the visualizers in menu order with the digit that selects each one.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printList(cmd.OutOrStdout(), a.reg)
		return nil
	},
}

func printList(w io.Writer, reg *registry.Registry) {
	entries := reg.List()

	if len(entries) == 0 {
		fmt.Fprintln(w, "No visualizers available.")
		return
	}

	fmt.Fprintln(w, "Available visualizers:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Fprintf(w, "  #  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  -  %-*s  %s\n", maxIDLen, "--", "-----")

	for i, e := range entries {
		fmt.Fprintf(w, "  %d  %-*s  %s\n", i+1, maxIDLen, e.ID, e.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'minigames run <id>' to start one directly.")
}
