package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Load the asset pack and describe it",
	Long: `Load the asset pack the same way play does and describe every asset.
Fails like play would when a file is missing or cannot be decoded.

Examples:
  starshot assets
  starshot assets --assets ./my-pack`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	b, err := load(flagConfig, flagAssetsDir)
	if err != nil {
		return err
	}
	b.warnSkipped(newLogger(os.Stderr, newRunID()))
	describe(os.Stdout, b)
	return nil
}

func describe(w io.Writer, b *bundle) {
	source := "built-in"
	if flagAssetsDir != "" {
		source = flagAssetsDir
	}
	fmt.Fprintf(w, "Asset pack: %s\n\n", source)

	fmt.Fprintf(w, "  %-8s  %s\n", "block", b.pack.Block)
	fmt.Fprintf(w, "  %-8s  %s\n", "player", b.pack.Player)
	fmt.Fprintf(w, "  %-8s  %s\n", "bullet", b.pack.Bullet)
	fmt.Fprintf(w, "  %-8s  %s dim=%.2f\n", "backdrop", b.cfg.Assets.Background, b.cfg.Assets.BackgroundDim)

	format := b.fire.Format()
	fmt.Fprintf(w, "  %-8s  %s %dHz %v volume=%.2f\n", "fire", b.pack.FireSound.Name,
		format.SampleRate, format.SampleRate.D(b.fire.Len()), b.cfg.Assets.FireVolume)
}
