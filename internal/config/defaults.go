package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
		},
		Blocks: BlocksConfig{
			Count:             50,
			SpawnMarginX:      25,
			SpawnMarginBottom: 150,
			MaxSpeed:          3,
			Glyph:             "█",
		},
		Player: PlayerConfig{
			BottomOffset: 100,
			Glyph:        "▲",
		},
		Bullet: BulletConfig{
			Speed:    3,
			OffsetX:  42,
			DespawnY: -10,
			Glyph:    "│",
		},
		Stars: StarsConfig{
			Count:        2000,
			Speed:        1,
			InitialExtra: 25,
			RespawnMin:   10,
			RespawnMax:   50,
			Radius:       1,
			Glyph:        "·",
		},
		Win: WinConfig{
			Banner: "CONGRATULATIONS YOU WIN",
			Freeze: false,
		},
		Controls: ControlsConfig{
			KeyStep: 30,
		},
		Assets: AssetsConfig{
			Block:         "block.png",
			Player:        "player.png",
			Bullet:        "bullet.png",
			Background:    "background.png",
			FireSound:     "laser.wav",
			FireVolume:    0.8,
			BackgroundDim: 0.6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
