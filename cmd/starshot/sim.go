package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starshot/internal/core"
	"github.com/vovakirdan/starshot/internal/games/shooter"
)

var (
	flagFrames    int
	flagFireEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with an autopilot",
	Long: `Run the game without a terminal. An autopilot steers the ship under the
nearest block and fires at a fixed interval. Score events are logged to
stderr and the final state is printed when the run ends.

Examples:
  starshot sim
  starshot sim --seed 7 --frames 20000 --fire-every 4`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frames to simulate (stops early on a win)")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 6, "Frames between autopilot shots")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, newRunID())

	b, err := load(flagConfig, flagAssetsDir)
	if err != nil {
		return err
	}
	b.warnSkipped(logger)

	rt := runtimeConfig(0, 0)
	game := shooter.New(b.cfg, b.pack)
	game.Reset(rt)
	logger.Info("simulation started", "seed", rt.Seed, "frames", flagFrames)

	started := time.Now()
	st := simulate(game, shooter.NewAutopilot(flagFireEvery), flagFrames, logger)
	logger.Info("simulation finished", "elapsed", time.Since(started).Round(time.Millisecond))
	printSummary(os.Stdout, rt.Seed, st, game.Snapshot())
	return nil
}

// simulate steps the game with autopilot input until it is won or the
// frame budget runs out.
func simulate(game *shooter.Game, ap *shooter.Autopilot, frames int, logger *log.Logger) core.GameState {
	st := game.State()
	for i := 0; i < frames && !st.Won; i++ {
		res := game.Step(ap.Next(game))
		st = res.State
		for _, ev := range res.Events {
			switch ev.Kind {
			case core.EventBlockDestroyed:
				logger.Info("block destroyed", "score", ev.Score, "frame", st.Frame)
			case core.EventWon:
				logger.Info("all blocks destroyed", "score", ev.Score, "frame", st.Frame)
			}
		}
	}
	return st
}

func printSummary(w io.Writer, seed int64, st core.GameState, snap shooter.Snapshot) {
	fmt.Fprintf(w, "seed:    %d\n", seed)
	fmt.Fprintf(w, "frames:  %d\n", st.Frame)
	fmt.Fprintf(w, "score:   %d/%d\n", st.Score, st.Target)
	fmt.Fprintf(w, "won:     %v\n", st.Won)
	fmt.Fprintf(w, "blocks:  %d\n", st.Blocks)
	fmt.Fprintf(w, "bullets: %d\n", st.Bullets)
	fmt.Fprintf(w, "hash:    %016x\n", snap.Hash())
}
