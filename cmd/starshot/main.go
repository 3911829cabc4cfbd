// starshot is a terminal shooter: steer the ship with the mouse and shoot
// down fifty bouncing blocks over a scrolling starfield.
//
// Usage:
//
//	starshot [play]   - Play in the terminal (default)
//	starshot sim      - Run the game headless with an autopilot
//	starshot assets   - Load the asset pack and describe it
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Load settings from a YAML file
//	--assets <dir>    - Load assets from a directory instead of the built-in pack
//	--log <path>      - Log file for play (default: ~/.starshot/starshot.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagAssetsDir string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starshot",
	Short: "Starshot - shoot down the blocks in your terminal",
	Long: `Starshot is a terminal shooter. Fifty blocks bounce around a 1200x800
field; move the ship with the mouse and click to fire. Destroy every block
to win.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run headless with an autopilot
  assets   - Describe the loaded asset pack

Examples:
  starshot
  starshot --seed 42 --fps 30
  starshot play --assets ./my-pack
  starshot sim --frames 20000
  starshot assets`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "", "Asset pack directory (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.starshot/starshot.log", "Log file used while playing")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(assetsCmd)
}
