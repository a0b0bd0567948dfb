package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeHook(t *testing.T, dir, name, body string, mode os.FileMode) {
	t.Helper()
	script := "#!/bin/bash\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, name+".sh"), []byte(script), mode); err != nil {
		t.Fatal(err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "beta_hook", "echo b", 0o755)
	writeHook(t, dir, "alpha_hook", "echo a", 0o755)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := New(dir).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha_hook" || names[1] != "beta_hook" {
		t.Errorf("Expected sorted hook names, got %v", names)
	}
}

func TestListMissingDir(t *testing.T) {
	names, err := New(filepath.Join(t.TempDir(), "nope")).List()
	if err != nil {
		t.Fatalf("Missing dir should not error: %v", err)
	}
	if names != nil {
		t.Errorf("Expected no hooks, got %v", names)
	}
}

func TestRunCapturesOutput(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "ping_check", "echo ok", 0o755)

	res, err := New(dir).Run(context.Background(), "ping_check")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("Expected exit 0, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "ok") {
		t.Errorf("Expected stdout to contain ok, got %q", res.Stdout)
	}
}

func TestRunReportsNonzeroExit(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "failing_hook", "exit 3", 0o755)

	res, err := New(dir).Run(context.Background(), "failing_hook")
	if err != nil {
		t.Fatalf("Nonzero exit should not be an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("Expected exit 3, got %d", res.ExitCode)
	}
}

func TestRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	r := New(dir)

	for _, name := range []string{"../evil", "sub/evil", "/etc/passwd", ""} {
		if r.IsAllowed(name) {
			t.Errorf("Name %q should be rejected", name)
		}
		if _, err := r.Run(context.Background(), name); err == nil {
			t.Errorf("Run(%q) should fail", name)
		}
	}
}

func TestRejectsNonExecutable(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "plain_hook", "echo hi", 0o644)

	r := New(dir)
	if r.IsAllowed("plain_hook") {
		t.Error("Non-executable hook should be rejected")
	}
	if _, err := r.Run(context.Background(), "plain_hook"); err == nil {
		t.Error("Running a non-executable hook should fail")
	}
}

func TestRejectsMissingHook(t *testing.T) {
	r := New(t.TempDir())
	if r.IsAllowed("ghost_hook") {
		t.Error("Missing hook should be rejected")
	}
}
