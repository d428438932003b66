package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Rounds != 50 {
		t.Errorf("Expected 50 rounds, got %d", cfg.Rounds)
	}
	if cfg.Games != 10 {
		t.Errorf("Expected 10 games, got %d", cfg.Games)
	}
	if !cfg.Training {
		t.Errorf("Expected training enabled by default")
	}
	if len(cfg.Players) < 2 {
		t.Errorf("Expected a playable roster, got %v", cfg.Players)
	}
	for _, name := range cfg.Players {
		if name == "gemini" {
			t.Errorf("Default roster must work offline, found %s", name)
		}
	}
	if cfg.Rating.Rating != 1500 {
		t.Errorf("Expected default rating 1500, got %v", cfg.Rating.Rating)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("rounds: 7\nplayers:\n  - rock\n  - mirror\nrating:\n  deviation: 200\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Rounds != 7 {
		t.Errorf("Expected rounds from file, got %d", cfg.Rounds)
	}
	if cfg.Games != 10 {
		t.Errorf("Expected default games to survive, got %d", cfg.Games)
	}
	if len(cfg.Players) != 2 || cfg.Players[0] != "rock" || cfg.Players[1] != "mirror" {
		t.Errorf("Expected roster from file, got %v", cfg.Players)
	}
	if cfg.Rating.Deviation != 200 {
		t.Errorf("Expected deviation from file, got %v", cfg.Rating.Deviation)
	}
	if cfg.Rating.Rating != 1500 {
		t.Errorf("Expected default rating to survive, got %v", cfg.Rating.Rating)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rounds: [not a number"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Expected an error for malformed YAML")
	}
}
