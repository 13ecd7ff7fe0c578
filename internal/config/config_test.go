package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wayfind.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "map:\n  size: 6\n  seed: 9\n  density: 0.25\n  scenario: maps/maze.yaml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Map.Size != 6 {
		t.Errorf("map.size = %d, want 6", cfg.Map.Size)
	}
	if cfg.Map.Seed != 9 {
		t.Errorf("map.seed = %d, want 9", cfg.Map.Seed)
	}
	if cfg.Map.Density != 0.25 {
		t.Errorf("map.density = %v, want 0.25", cfg.Map.Density)
	}
	if cfg.Map.Scenario != "maps/maze.yaml" {
		t.Errorf("map.scenario = %q, want maps/maze.yaml", cfg.Map.Scenario)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "map:\n  seed: 42\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Map.Seed != 42 {
		t.Errorf("map.seed = %d, want 42", cfg.Map.Seed)
	}
	if cfg.Map.Size != 10 {
		t.Errorf("map.size = %d, want default 10", cfg.Map.Size)
	}
	if cfg.Map.Density != 0.5 {
		t.Errorf("map.density = %v, want default 0.5", cfg.Map.Density)
	}
	if cfg.Map.Scenario != "" {
		t.Errorf("map.scenario = %q, want empty default", cfg.Map.Scenario)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load("/nonexistent/wayfind.yaml"); err == nil {
		t.Error("expected error for an explicitly named missing file")
	}
}
