package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseShooter(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded YAML differs from DefaultShooterConfig():\n got  %+v\n want %+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadShooterCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	writeFile(t, path, "blocks:\n  count: 10\nwin:\n  freeze: true\n")

	cfg, _, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Blocks.Count != 10 {
		t.Errorf("Blocks.Count = %d, expected 10", cfg.Blocks.Count)
	}
	if !cfg.Win.Freeze {
		t.Error("Win.Freeze should be true")
	}
	// Untouched keys keep their defaults
	if cfg.Screen.Width != 1200 || cfg.Bullet.OffsetX != 42 {
		t.Errorf("defaults lost: screen %d, offset %d", cfg.Screen.Width, cfg.Bullet.OffsetX)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		create  bool
		wantErr string
	}{
		{"missing file", "", false, "failed to read"},
		{"bad yaml", "blocks: [1, 2", true, "failed to parse"},
		{"invalid values", "blocks:\n  count: 0\n", true, "blocks.count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.create {
				writeFile(t, path, tc.content)
			}
			_, _, err := LoadShooter(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadShooterSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, skipped, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("missing files are not worth reporting, got %v", skipped)
	}
	if cfg.Blocks.Count != 50 {
		t.Errorf("default Blocks.Count = %d, expected 50", cfg.Blocks.Count)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "shooter.yaml"), "blocks:\n  count: 20\n")
	cfg, _, _ = LoadShooter("")
	if cfg.Blocks.Count != 20 {
		t.Errorf("local Blocks.Count = %d, expected 20", cfg.Blocks.Count)
	}

	// User directory wins over local
	writeFile(t, filepath.Join(home, ".starshot", "configs", "shooter.yaml"), "blocks:\n  count: 30\n")
	cfg, _, _ = LoadShooter("")
	if cfg.Blocks.Count != 30 {
		t.Errorf("user Blocks.Count = %d, expected 30", cfg.Blocks.Count)
	}

	// An invalid user file falls through to the local one
	writeFile(t, filepath.Join(home, ".starshot", "configs", "shooter.yaml"), "screen:\n  width: -1\n")
	cfg, skipped, _ = LoadShooter("")
	if cfg.Blocks.Count != 20 {
		t.Errorf("fallthrough Blocks.Count = %d, expected 20", cfg.Blocks.Count)
	}
	if len(skipped) != 1 || !strings.Contains(skipped[0].Error(), "screen size") {
		t.Errorf("skipped = %v, expected the user file's validation error", skipped)
	}

	// Both files broken: embedded default, both reasons reported
	writeFile(t, filepath.Join(work, "configs", "shooter.yaml"), "blocks: [1, 2")
	cfg, skipped, err = LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Blocks.Count != 50 {
		t.Errorf("Blocks.Count = %d, expected the default 50", cfg.Blocks.Count)
	}
	if len(skipped) != 2 || !strings.Contains(skipped[1].Error(), "failed to parse") {
		t.Errorf("skipped = %v, expected the user and local errors", skipped)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		field  string
	}{
		{"zero width", func(c *ShooterConfig) { c.Screen.Width = 0 }, "screen size"},
		{"no blocks", func(c *ShooterConfig) { c.Blocks.Count = 0 }, "blocks.count"},
		{"margin too wide", func(c *ShooterConfig) { c.Blocks.SpawnMarginX = 600 }, "spawn_margin_x"},
		{"margin too tall", func(c *ShooterConfig) { c.Blocks.SpawnMarginBottom = 800 }, "spawn_margin_bottom"},
		{"still bullets", func(c *ShooterConfig) { c.Bullet.Speed = 0 }, "bullet.speed"},
		{"empty respawn window", func(c *ShooterConfig) { c.Stars.RespawnMax = 10 }, "respawn_max"},
		{"dim out of range", func(c *ShooterConfig) { c.Assets.BackgroundDim = 1.5 }, "background_dim"},
		{"negative side margin", func(c *ShooterConfig) { c.Blocks.SpawnMarginX = -5 }, "spawn_margin_x must not be negative"},
		{"negative bottom margin", func(c *ShooterConfig) { c.Blocks.SpawnMarginBottom = -1 }, "spawn_margin_bottom must not be negative"},
		{"frozen stars", func(c *ShooterConfig) { c.Stars.Speed = 0 }, "stars.speed"},
		{"stars drifting down", func(c *ShooterConfig) { c.Stars.Speed = -1 }, "stars.speed"},
		{"negative star radius", func(c *ShooterConfig) { c.Stars.Radius = -1 }, "stars.radius"},
		{"no keyboard step", func(c *ShooterConfig) { c.Controls.KeyStep = 0 }, "controls.key_step"},
		{"negative volume", func(c *ShooterConfig) { c.Assets.FireVolume = -0.1 }, "fire_volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
