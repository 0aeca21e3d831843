package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Width != 255 || cfg.Grid.Height != 255 {
		t.Errorf("grid = %dx%d, want 255x255", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Derived.Cells != 255*255 {
		t.Errorf("Derived.Cells = %d", cfg.Derived.Cells)
	}
	if cfg.History.Cap != 500 {
		t.Errorf("History.Cap = %d, want 500", cfg.History.Cap)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "grid:\n  width: 40\nsheep:\n  breed_threshold: 2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 255 {
		t.Errorf("grid = %dx%d, want 40x255", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Sheep.BreedThreshold != 2 || cfg.Sheep.StarvationTime != Default().Sheep.StarvationTime {
		t.Errorf("sheep = %+v", cfg.Sheep)
	}
	if cfg.Derived.Cells != 40*255 {
		t.Errorf("Derived.Cells = %d", cfg.Derived.Cells)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "grid: [", "parsing config file"},
		{"negative count", "grass:\n  initial_count: -1\n", "grass.initial_count"},
		{"spread over 100", "grass:\n  spread_rate: 150\n", "grass.spread_rate"},
		{"zero radius", "wolf:\n  hunting_radius: 0\n", "wolf.hunting_radius"},
		{"zero starvation", "sheep:\n  starvation_time: 0\n", "sheep.starvation_time"},
		{"zero speed", "game_speed: 0\n", "game_speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 0
	cfg.Sheep.BreedThreshold = 0
	cfg.History.Cap = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"grid.width", "sheep.breed_threshold", "history.cap"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cp := cfg.Clone()
	cp.Grid.Width = 10
	cp.Wolf.HuntingRadius = 2

	if cfg.Grid.Width != 255 || cfg.Wolf.HuntingRadius != Default().Wolf.HuntingRadius {
		t.Error("Clone shares state with the original")
	}
	if cp.Clone().Derived.Cells != 10*255 {
		t.Error("Clone should recompute derived values")
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 64
	cfg.Grass.SpreadRate = 12.5
	cfg.Wolf.InitialCount = 3

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg.Clone() {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}
