package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in rule presets",
	Long:  `Shows the rule presets that can be passed to --preset.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printPresets(cmd.OutOrStdout())
	},
}

func printPresets(w io.Writer) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range config.Presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Fprintln(w, "Available presets:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "Name", "Size", "Target", "Four%", "Description")
	fmt.Fprintf(w, "  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "----", "----", "------", "-----", "-----------")

	for _, p := range config.Presets {
		size := fmt.Sprintf("%dx%d", p.Rules.Size, p.Rules.Size)
		fmt.Fprintf(w, "  %-*s  %-5s  %-6d  %-6.0f  %s\n",
			maxNameLen, p.Name, size, p.Rules.WinTarget, p.Rules.Spawn4Prob*100, p.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play --preset <name>' to play with a preset.")
}
