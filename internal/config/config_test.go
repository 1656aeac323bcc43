package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "arena.toml", `
model_a = "llama3:8b-instruct-q8_0"
model_b = "gemma2:9b-instruct-q8_0"
experiments = 10
max_turns = 50
start_word = "Otter"
temperature = 0.6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ModelA != "llama3:8b-instruct-q8_0" {
		t.Errorf("Unexpected model_a: %q", cfg.ModelA)
	}
	if cfg.Experiments != 10 || cfg.MaxTurns != 50 {
		t.Errorf("Unexpected counts: %+v", cfg)
	}
	if cfg.StartWord != "Otter" {
		t.Errorf("Unexpected start_word: %q", cfg.StartWord)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.6 {
		t.Errorf("Unexpected temperature: %v", cfg.Temperature)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "arena.yaml", `
model_a: llama3:8b
backend: native
host: http://remote:11434
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ModelA != "llama3:8b" || cfg.Backend != "native" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Host != "http://remote:11434" {
		t.Errorf("Unexpected host: %q", cfg.Host)
	}
	if cfg.Experiments != 0 {
		t.Errorf("Unset field should stay zero, got %d", cfg.Experiments)
	}
	if cfg.Temperature != nil {
		t.Errorf("Unset temperature should stay nil, got %v", *cfg.Temperature)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "arena.json", `{"model_b": "gemma2:9b", "category": "city"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ModelB != "gemma2:9b" || cfg.Category != "city" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "arena.ini", "model_a=x")

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for unsupported extension")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Expected an error for an empty path")
	}
}
