package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitStatus.Format == "" {
		t.Error("default git_status format should not be empty")
	}
	if cfg.GitStatus.Style != "bold red" {
		t.Errorf("git_status style = %q, want %q", cfg.GitStatus.Style, "bold red")
	}
	if cfg.GitStatus.Untracked != "?" {
		t.Errorf("untracked symbol = %q, want %q", cfg.GitStatus.Untracked, "?")
	}
	if cfg.GitBranch.Style != "bold purple" {
		t.Errorf("git_branch style = %q, want %q", cfg.GitBranch.Style, "bold purple")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_PartialFileInheritsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[git_status]
modified = "!$count"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.GitStatus.Modified != "!$count" {
		t.Errorf("modified = %q, want %q", cfg.GitStatus.Modified, "!$count")
	}
	// Everything not in the file keeps its default.
	if cfg.GitStatus.Untracked != "?" {
		t.Errorf("untracked = %q, want default %q", cfg.GitStatus.Untracked, "?")
	}
	if cfg.GitBranch.Symbol != "🌿 " {
		t.Errorf("symbol = %q, want default", cfg.GitBranch.Symbol)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for an explicitly named missing file")
	}
}

func TestLoad_BadTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[[["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
