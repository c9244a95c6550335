package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSpawn  string
	flagFormat string
)

var simCmd = &cobra.Command{
	Use:   "sim <moves>",
	Short: "Apply a scripted move sequence",
	Long: `Start a game, apply the given moves and print the final state.

Moves are letters (U, D, L, R) or words separated by commas or spaces.
The game stops early once it is won or over.

Spawn modes:
  random - 2 or 4 on a random empty cell (default)
  fixed  - first empty cell, 4 for the first tile of a game and 2 after
  none   - no new tiles

Examples:
  t2048 sim LLURDD --seed 42
  t2048 sim "left, up, right" --spawn fixed --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSpawn, "spawn", "random", "Spawn mode: random, fixed, none")
	simCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml, text")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	mode, err := game.ParseSpawnMode(flagSpawn)
	if err != nil {
		return err
	}
	moves, err := game.ParseMoves(args[0])
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, game.WithSeed(flagSeed))
	}
	ctrl := game.NewController(cfg.Rules.Game(), opts...)

	snap, err := simulate(ctrl, moves, mode, logger)
	if err != nil {
		return err
	}
	return writeSnapshot(cmd.OutOrStdout(), snap, ctrl.Grid(), flagFormat)
}

// simulate starts ctrl and applies moves until they run out or the game ends.
func simulate(ctrl *game.Controller, moves []game.Direction, mode game.SpawnMode, logger *log.Logger) (game.Snapshot, error) {
	if err := ctrl.StartGame(); err != nil {
		return game.Snapshot{}, err
	}

	for i, dir := range moves {
		if ctrl.State() != game.StateRunning {
			logger.Info("game ended before script finished", "state", ctrl.State(), "applied", i, "total", len(moves))
			break
		}
		if !ctrl.Move(dir, mode) {
			logger.Debug("move had no effect", "index", i, "dir", dir)
		}
	}
	return ctrl.Snapshot(), nil
}

func writeSnapshot(w io.Writer, snap game.Snapshot, grid *game.Grid, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		return enc.Close()
	case "text":
		fmt.Fprint(w, tui.RenderPlain(grid))
		fmt.Fprintf(w, "state: %s  score: %d  best: %d  moves: %d\n", snap.State, snap.Score, snap.HighestScore, snap.Moves)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
