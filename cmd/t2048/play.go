package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  R                 - Restart (after win or game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play --preset large
  t2048 play --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; use 'sim' for scripted games")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	// 7x3 cells plus border, HUD and help lines.
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		needW, needH := cfg.Rules.Size*7+2, cfg.Rules.Size*3+6
		if w < needW || h < needH {
			logger.Warn("terminal may be too small", "width", w, "height", h, "need_width", needW, "need_height", needH)
		}
	}

	snap, err := tui.Run(tui.Options{
		Rules:    cfg.Rules.Game(),
		Seed:     flagSeed,
		ShowHelp: cfg.UI.ShowHelp,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d (max tile %d, %s)\n", snap.Score, snap.MaxTile, snap.State)
	return nil
}
