package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("ServerURL = %q, want default %q", cfg.ServerURL, defaultServerURL)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want default %d", cfg.PollSeconds, defaultPollSeconds)
	}
	if cfg.StudentID != "" {
		t.Fatalf("StudentID = %q, want empty", cfg.StudentID)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://attendance.example.edu"
student_id = "s123"
poll_seconds = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != "https://attendance.example.edu" {
		t.Fatalf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.StudentID != "s123" {
		t.Fatalf("StudentID = %q", cfg.StudentID)
	}
	if cfg.PollSeconds != 10 {
		t.Fatalf("PollSeconds = %d", cfg.PollSeconds)
	}
}

func TestLoad_BlankAndZeroFieldsFallBack(t *testing.T) {
	path := writeConfig(t, `
server_url = "  "
poll_seconds = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ServerURL != defaultServerURL {
		t.Fatalf("ServerURL = %q, want default", cfg.ServerURL)
	}
	if cfg.PollSeconds != defaultPollSeconds {
		t.Fatalf("PollSeconds = %d, want default", cfg.PollSeconds)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeConfig(t, `server_url = [broken`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed toml")
	}
}
