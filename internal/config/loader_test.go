package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if want := DefaultRunnerConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, want)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  clear_score: 50\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Scoring.ClearScore != 50 {
		t.Errorf("ClearScore = %d, expected 50", cfg.Scoring.ClearScore)
	}
	if cfg.Scoring.EvolutionScore != 1000 {
		t.Errorf("EvolutionScore = %d, expected default 1000", cfg.Scoring.EvolutionScore)
	}
	if !reflect.DeepEqual(cfg.Spawn.Periods, []int{100, 200}) {
		t.Errorf("Periods = %v, expected default [100 200]", cfg.Spawn.Periods)
	}
}

func TestParseReplacesPeriods(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  periods: [7]\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Spawn.Periods, []int{7}) {
		t.Errorf("Periods = %v, expected [7]", cfg.Spawn.Periods)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "canvas: [", "failed to parse"},
		{"zero width", "canvas:\n  width: 0\n", "canvas.width"},
		{"empty periods", "spawn:\n  periods: []\n", "spawn.periods"},
		{"negative period", "spawn:\n  periods: [100, -1]\n", "spawn.periods[1]"},
		{"ground below canvas", "ground_y: 900\n", "ground_y"},
		{"no hitbox", "hitbox:\n  factor: 0\n", "hitbox.factor"},
		{"stopped enemies", "enemy:\n  speed: 0\n", "enemy.speed"},
		{"reversed enemies", "enemy:\n  speed: -8\n", "enemy.speed"},
		{"no gravity", "physics:\n  gravity: 0\n", "physics.gravity"},
		{"negative gravity", "physics:\n  gravity: -0.4\n", "physics.gravity"},
		{"no jump", "physics:\n  jump_velocity: 0\n", "physics.jump_velocity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Player.Width = 0
	cfg.Enemy.Height = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"player.width", "enemy.height"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("ground_y: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.GroundY != 300 {
		t.Errorf("GroundY = %d, expected 300", cfg.GroundY)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, src, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner error: %v", err)
	}
	if src != SourceEmbedded || cfg.GroundY != 400 {
		t.Errorf("got source %s ground %d, expected embedded default", src, cfg.GroundY)
	}

	// Local file wins over embedded
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "runner.yaml"), []byte("ground_y: 350\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadRunner("")
	if src != SourceLocal || cfg.GroundY != 350 {
		t.Errorf("got source %s ground %d, expected local 350", src, cfg.GroundY)
	}

	// User file wins over local
	userDir := filepath.Join(home, ".runner", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "runner.yaml"), []byte("ground_y: 320\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadRunner("")
	if src != SourceUser || cfg.GroundY != 320 {
		t.Errorf("got source %s ground %d, expected user 320", src, cfg.GroundY)
	}

	// A broken user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "runner.yaml"), []byte("canvas: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	_, src, _ = LoadRunner("")
	if src != SourceLocal {
		t.Errorf("broken user config should fall through to local, got %s", src)
	}
}
