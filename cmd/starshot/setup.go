package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/starshot/internal/assets"
	"github.com/vovakirdan/starshot/internal/audio"
	"github.com/vovakirdan/starshot/internal/config"
	"github.com/vovakirdan/starshot/internal/core"
)

// bundle is everything a command needs before the game can start.
type bundle struct {
	cfg  config.ShooterConfig
	pack *assets.Pack
	fire *beep.Buffer
	// config files that were found but passed over
	skipped []error
}

// load reads the settings and the asset pack, and decodes the fire sound.
// Any failure here is fatal for every command.
func load(configPath, assetsDir string) (*bundle, error) {
	cfg, skipped, err := config.LoadShooter(configPath)
	if err != nil {
		return nil, err
	}

	var fsys fs.FS = assets.Embedded()
	if assetsDir != "" {
		info, err := os.Stat(assetsDir)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", assetsDir)
		}
		fsys = assets.Dir(assetsDir)
	}

	pack, err := assets.Load(fsys, cfg.Assets)
	if err != nil {
		return nil, err
	}
	fire, err := audio.Decode(pack.FireSound)
	if err != nil {
		return nil, err
	}
	return &bundle{cfg: cfg, pack: pack, fire: fire, skipped: skipped}, nil
}

// warnSkipped logs every config file that was passed over during load.
func (b *bundle) warnSkipped(logger *log.Logger) {
	for _, err := range b.skipped {
		logger.Warn("config file ignored", "err", err)
	}
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newRunID returns the id that tags every log line of one run.
func newRunID() string {
	return uuid.NewString()
}

// newLogger creates the run logger. Every line carries the run id.
func newLogger(w io.Writer, runID string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starshot",
	})
	return logger.With("run", runID)
}

// openLogFile opens path for appending, expanding a leading ~ and creating
// parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log: cannot create directory %s: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	return f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("log: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
