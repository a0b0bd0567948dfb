package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}
	if cfg.Root != "admin" {
		t.Errorf("Expected default root admin, got %q", cfg.Root)
	}
	if cfg.Workers != 10 {
		t.Errorf("Expected default workers 10, got %d", cfg.Workers)
	}
	if cfg.Report.Mode != "fresh" {
		t.Errorf("Expected default report mode fresh, got %q", cfg.Report.Mode)
	}
	if cfg.History.Disabled {
		t.Error("History should be enabled by default")
	}
}

func TestMalformedDiscoveredConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, ".confgen.yaml"), []byte("root: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Malformed config in the search path should surface a parse error, not defaults")
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicitly named missing config file")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confgen.yaml")
	content := `root: /tmp/admin-out
workers: 4
report:
  mode: append
history:
  disabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/tmp/admin-out" {
		t.Errorf("Expected root /tmp/admin-out, got %q", cfg.Root)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.Report.Mode != "append" {
		t.Errorf("Expected append mode, got %q", cfg.Report.Mode)
	}
	if !cfg.History.Disabled {
		t.Error("History should be disabled")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONFGEN_WORKERS", "7")
	t.Setenv("CONFGEN_ROOT", "/tmp/env-root")
	t.Setenv("CONFGEN_REPORT_PATH", "/tmp/env-report.json")
	t.Setenv("CONFGEN_HISTORY_PATH", "/tmp/env-history.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 7 {
		t.Errorf("Expected env workers 7, got %d", cfg.Workers)
	}
	if cfg.Root != "/tmp/env-root" {
		t.Errorf("Expected env root, got %q", cfg.Root)
	}
	if cfg.ReportPath() != "/tmp/env-report.json" {
		t.Errorf("Expected env report path, got %q", cfg.ReportPath())
	}
	if cfg.HistoryPath() != "/tmp/env-history.db" {
		t.Errorf("Expected env history path, got %q", cfg.HistoryPath())
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := &Config{Root: "/tmp/out"}
	if got := cfg.ReportPath(); got != filepath.Join("/tmp/out", "parallel_implementation_report.json") {
		t.Errorf("Unexpected report path %q", got)
	}
	if got := cfg.HistoryPath(); got != filepath.Join("/tmp/out", "confgen_history.db") {
		t.Errorf("Unexpected history path %q", got)
	}

	cfg.Report.Path = "/elsewhere/report.json"
	cfg.History.Path = "/elsewhere/history.db"
	if cfg.ReportPath() != "/elsewhere/report.json" {
		t.Error("Explicit report path should win")
	}
	if cfg.HistoryPath() != "/elsewhere/history.db" {
		t.Error("Explicit history path should win")
	}
}
