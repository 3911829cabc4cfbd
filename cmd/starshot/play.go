package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starshot/internal/audio"
	"github.com/vovakirdan/starshot/internal/audio/device"
	"github.com/vovakirdan/starshot/internal/games/shooter"
	"github.com/vovakirdan/starshot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Mouse            - Move the ship
  Click/Space      - Fire
  Left/H/A         - Nudge the ship left
  Right/L/D        - Nudge the ship right
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Examples:
  starshot play
  starshot play --seed 42
  starshot play --config ./shooter.yaml --assets ./pack`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// runPlay returns errors instead of exiting so the deferred closes run.
func runPlay(cmd *cobra.Command, args []string) error {
	logFile, err := openLogFile(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, newRunID())

	b, err := load(flagConfig, flagAssetsDir)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return err
	}
	b.warnSkipped(logger)

	sound, closeSound := openSound(b, logger)
	defer closeSound()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := runtimeConfig(width, height)
	game := shooter.New(b.cfg, b.pack)
	started := time.Now()
	st, err := tui.Run(game, sound, logger, rt)
	if err != nil {
		logger.Error("game exited", "err", err)
		return err
	}
	logger.Info("game over", "score", st.Score, "won", st.Won, "frames", st.Frame,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}

// openSound binds the fire sound to the speaker. Without a working audio
// device the game runs silent.
func openSound(b *bundle, logger *log.Logger) (tui.Sound, func()) {
	spk, err := device.Open(b.fire.Format().SampleRate)
	if err != nil {
		logger.Warn("no audio device, running silent", "err", err)
		return audio.Silent{}, func() {}
	}
	return audio.NewEffect(b.fire, spk, b.cfg.Assets.FireVolume), spk.Close
}
