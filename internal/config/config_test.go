package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TUI.RefreshRate != 100*time.Millisecond {
		t.Errorf("expected refresh rate 100ms, got %v", cfg.TUI.RefreshRate)
	}

	if cfg.TUI.ASCII {
		t.Error("expected tui.ascii to default to false")
	}

	if cfg.ETA.BufferSize != 0 {
		t.Errorf("expected eta.buffer_size 0 (library default), got %d", cfg.ETA.BufferSize)
	}

	if cfg.Run.Shell != "sh" {
		t.Errorf("expected run.shell 'sh', got %q", cfg.Run.Shell)
	}

	if !cfg.History.Enabled {
		t.Error("expected history.enabled to be true")
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
tui:
  refresh_rate: 250ms
  ascii: true
eta:
  buffer_size: 5
run:
  shell: bash
history:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}

	if cfg.TUI.RefreshRate != 250*time.Millisecond {
		t.Errorf("refresh_rate = %v, want 250ms", cfg.TUI.RefreshRate)
	}
	if !cfg.TUI.ASCII {
		t.Error("tui.ascii should be true")
	}
	if cfg.ETA.BufferSize != 5 {
		t.Errorf("eta.buffer_size = %d, want 5", cfg.ETA.BufferSize)
	}
	if cfg.Run.Shell != "bash" {
		t.Errorf("run.shell = %q, want %q", cfg.Run.Shell, "bash")
	}
	if cfg.History.Enabled {
		t.Error("history.enabled should be false")
	}
}

func TestLoadFromPath_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := "run:\n  shell: zsh\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}

	if cfg.Run.Shell != "zsh" {
		t.Errorf("run.shell = %q, want %q", cfg.Run.Shell, "zsh")
	}
	if cfg.TUI.RefreshRate != 100*time.Millisecond {
		t.Errorf("refresh_rate = %v, want default 100ms", cfg.TUI.RefreshRate)
	}
	if !cfg.History.Enabled {
		t.Error("history.enabled should keep its default")
	}
}

func TestLoadFromPath_ExpandsHistoryPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("PACER_TEST_DATA", tmpDir)
	content := "history:\n  path: ${PACER_TEST_DATA}/runs.db\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath returned error: %v", err)
	}

	want := filepath.Join(tmpDir, "runs.db")
	if cfg.History.Path != want {
		t.Errorf("history.path = %q, want %q", cfg.History.Path, want)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
