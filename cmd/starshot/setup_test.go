package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starshot/internal/core"
	"github.com/vovakirdan/starshot/internal/games/shooter"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/var/log/starshot.log", "/var/log/starshot.log"},
		{"relative.log", "relative.log"},
		{"~/.starshot/starshot.log", filepath.Join(home, ".starshot", "starshot.log")},
	}
	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestOpenLogFileCreatesDirectories(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := openLogFile("~/.starshot/logs/run.log")
	if err != nil {
		t.Fatalf("openLogFile: %v", err)
	}
	logger := newLogger(f, "run-1")
	logger.Info("game started")
	f.Close()

	data, err := os.ReadFile(filepath.Join(home, ".starshot", "logs", "run.log"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "game started") || !strings.Contains(out, "run=run-1") {
		t.Errorf("log line = %q, expected message and run id", out)
	}
}

func TestLoadBuiltInPack(t *testing.T) {
	b, err := load("", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.fire.Len() == 0 {
		t.Error("fire sound decoded to no samples")
	}
	if w, h := b.pack.Player.Size(); w == 0 || h == 0 {
		t.Errorf("player sprite is %dx%d", w, h)
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	badConfig := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badConfig, []byte("blocks: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		config string
		assets string
	}{
		{"missing asset dir", "", filepath.Join(dir, "missing")},
		{"asset path is a file", "", file},
		{"empty asset dir", "", dir},
		{"bad config", badConfig, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := load(tc.config, tc.assets); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSimulateLogsScore(t *testing.T) {
	b, err := load("", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	game := shooter.New(b.cfg, b.pack)
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})

	var logs bytes.Buffer
	st := simulate(game, shooter.NewAutopilot(4), 20000, log.New(&logs))
	if st.Score == 0 {
		t.Fatalf("autopilot scored nothing in %d frames", st.Frame)
	}
	if !strings.Contains(logs.String(), "block destroyed") {
		t.Errorf("score events not logged:\n%s", logs.String())
	}
	if st.Won && st.Frame >= 20000 {
		t.Error("simulation should stop at the win")
	}

	var out bytes.Buffer
	printSummary(&out, 3, st, game.Snapshot())
	for _, want := range []string{"seed:    3", "score:", "hash:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary is missing %q:\n%s", want, out.String())
		}
	}
}

func TestDescribe(t *testing.T) {
	b, err := load("", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var out bytes.Buffer
	describe(&out, b)
	for _, want := range []string{"built-in", "block", "player", "bullet", "fire", "Hz"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("description is missing %q:\n%s", want, out.String())
		}
	}
}

// setFlag points a global flag at v for the duration of the test.
func setFlag(t *testing.T, flag *string, v string) {
	t.Helper()
	old := *flag
	*flag = v
	t.Cleanup(func() { *flag = old })
}

func TestCommandsReturnStartupErrors(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "play.log")
	setFlag(t, &flagLogPath, logPath)
	setFlag(t, &flagAssetsDir, filepath.Join(dir, "missing"))
	setFlag(t, &flagConfig, "")

	if err := runPlay(nil, nil); err == nil {
		t.Fatal("play should fail on a missing asset directory")
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "startup failed") {
		t.Errorf("log = %q, expected the startup failure", data)
	}

	if err := runAssets(nil, nil); err == nil {
		t.Error("assets should fail on a missing asset directory")
	}
	if err := runSim(nil, nil); err == nil {
		t.Error("sim should fail on a missing asset directory")
	}
}

func TestLoadWarnsAboutIgnoredConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userFile := filepath.Join(home, ".starshot", "configs", "shooter.yaml")
	if err := os.MkdirAll(filepath.Dir(userFile), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userFile, []byte("stars:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := load("", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.cfg.Stars.Speed <= 0 {
		t.Errorf("Stars.Speed = %v, expected the default", b.cfg.Stars.Speed)
	}

	var logs bytes.Buffer
	b.warnSkipped(log.New(&logs))
	out := logs.String()
	if !strings.Contains(out, "config file ignored") || !strings.Contains(out, "stars.speed") {
		t.Errorf("warning = %q, expected the ignored file and its reason", out)
	}
}
