// Package config provides YAML-based configuration loading for the shooter.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains all tunables of the shooter game.
type ShooterConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Player   PlayerConfig   `yaml:"player"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Stars    StarsConfig    `yaml:"stars"`
	Win      WinConfig      `yaml:"win"`
	Controls ControlsConfig `yaml:"controls"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// ScreenConfig defines the logical surface the game simulates on.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlocksConfig defines the target blocks spawned at reset.
type BlocksConfig struct {
	Count             int    `yaml:"count"`
	SpawnMarginX      int    `yaml:"spawn_margin_x"`
	SpawnMarginBottom int    `yaml:"spawn_margin_bottom"`
	MaxSpeed          int    `yaml:"max_speed"`
	Glyph             string `yaml:"glyph"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	BottomOffset int    `yaml:"bottom_offset"` // Distance from the bottom edge to the ship's top
	Glyph        string `yaml:"glyph"`
}

// BulletConfig defines bullets fired by the player.
type BulletConfig struct {
	Speed    int    `yaml:"speed"`
	OffsetX  int    `yaml:"offset_x"`  // Spawn offset from the ship's left edge
	DespawnY int    `yaml:"despawn_y"` // Bullets above this y are removed
	Glyph    string `yaml:"glyph"`
}

// StarsConfig defines the decorative starfield.
type StarsConfig struct {
	Count        int    `yaml:"count"`
	Speed        int    `yaml:"speed"`
	InitialExtra int    `yaml:"initial_extra"` // Initial y range extends this far below the surface
	RespawnMin   int    `yaml:"respawn_min"`   // Respawn window below the surface
	RespawnMax   int    `yaml:"respawn_max"`
	Radius       int    `yaml:"radius"` // Logical dot radius used for terminal sampling
	Glyph        string `yaml:"glyph"`
}

// WinConfig defines the win banner and post-win behavior.
type WinConfig struct {
	Banner string `yaml:"banner"`
	Freeze bool   `yaml:"freeze"` // Stop simulating once won
}

// ControlsConfig defines keyboard fallbacks for the pointer.
type ControlsConfig struct {
	KeyStep int `yaml:"key_step"` // Logical units per arrow key press
}

// AssetsConfig names the asset files inside the asset pack.
type AssetsConfig struct {
	Block         string  `yaml:"block"`
	Player        string  `yaml:"player"`
	Bullet        string  `yaml:"bullet"`
	Background    string  `yaml:"background"`
	FireSound     string  `yaml:"fire_sound"`
	FireVolume    float64 `yaml:"fire_volume"`    // Linear gain, 0 mutes
	BackgroundDim float64 `yaml:"background_dim"` // 0 keeps the image, 1 turns it black
}

// Validate reports every setting that would make the game unplayable.
func (c ShooterConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Blocks.Count <= 0 {
		errs = append(errs, fmt.Errorf("blocks.count must be positive, got %d", c.Blocks.Count))
	}
	if c.Blocks.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("blocks.max_speed must not be negative, got %d", c.Blocks.MaxSpeed))
	}
	if c.Blocks.SpawnMarginX < 0 {
		errs = append(errs, fmt.Errorf("blocks.spawn_margin_x must not be negative, got %d", c.Blocks.SpawnMarginX))
	} else if c.Screen.Width-2*c.Blocks.SpawnMarginX <= 0 {
		errs = append(errs, fmt.Errorf("blocks.spawn_margin_x %d leaves no room on a %d wide screen", c.Blocks.SpawnMarginX, c.Screen.Width))
	}
	if c.Blocks.SpawnMarginBottom < 0 {
		errs = append(errs, fmt.Errorf("blocks.spawn_margin_bottom must not be negative, got %d", c.Blocks.SpawnMarginBottom))
	} else if c.Screen.Height-c.Blocks.SpawnMarginBottom <= 0 {
		errs = append(errs, fmt.Errorf("blocks.spawn_margin_bottom %d leaves no room on a %d high screen", c.Blocks.SpawnMarginBottom, c.Screen.Height))
	}
	if c.Bullet.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bullet.speed must be positive, got %d", c.Bullet.Speed))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Stars.Speed <= 0 {
		errs = append(errs, fmt.Errorf("stars.speed must be positive, got %d", c.Stars.Speed))
	}
	if c.Stars.Radius < 0 {
		errs = append(errs, fmt.Errorf("stars.radius must not be negative, got %d", c.Stars.Radius))
	}
	if c.Stars.RespawnMax <= c.Stars.RespawnMin {
		errs = append(errs, fmt.Errorf("stars.respawn_max %d must exceed respawn_min %d", c.Stars.RespawnMax, c.Stars.RespawnMin))
	}
	if c.Stars.InitialExtra < 0 {
		errs = append(errs, fmt.Errorf("stars.initial_extra must not be negative, got %d", c.Stars.InitialExtra))
	}
	if c.Controls.KeyStep <= 0 {
		errs = append(errs, fmt.Errorf("controls.key_step must be positive, got %d", c.Controls.KeyStep))
	}
	if c.Assets.FireVolume < 0 {
		errs = append(errs, fmt.Errorf("assets.fire_volume must not be negative, got %v", c.Assets.FireVolume))
	}
	if c.Assets.BackgroundDim < 0 || c.Assets.BackgroundDim > 1 {
		errs = append(errs, fmt.Errorf("assets.background_dim must be within [0, 1], got %v", c.Assets.BackgroundDim))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
