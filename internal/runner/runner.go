// Package runner executes generated hook scripts with a strict allowlist.
//
// Only regular, executable .sh files that resolve inside the configured
// hooks directory may run; anything else is rejected before exec.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Result holds the outcome of one hook execution.
type Result struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// HookRunner runs hooks from a single directory.
type HookRunner struct {
	hooksDir string
}

// New creates a HookRunner for the given hooks directory.
func New(hooksDir string) *HookRunner {
	return &HookRunner{hooksDir: hooksDir}
}

// List returns the names of runnable hooks, sorted.
func (r *HookRunner) List() ([]string, error) {
	entries, err := os.ReadDir(r.hooksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read hooks directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sh") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".sh"))
	}
	sort.Strings(names)
	return names, nil
}

// IsAllowed checks whether a hook name resolves to a runnable script
// inside the hooks directory.
func (r *HookRunner) IsAllowed(name string) bool {
	_, err := r.resolve(name)
	return err == nil
}

// resolve maps a hook name to its script path, rejecting anything that
// escapes the hooks directory or is not an executable regular file.
func (r *HookRunner) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid hook name: %q", name)
	}

	dir, err := filepath.Abs(r.hooksDir)
	if err != nil {
		return "", fmt.Errorf("resolve hooks directory: %w", err)
	}
	path := filepath.Join(dir, name+".sh")
	if filepath.Dir(path) != dir {
		return "", fmt.Errorf("hook outside hooks directory: %q", name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat hook: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("hook is not a regular file: %q", name)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return "", fmt.Errorf("hook is not executable: %q", name)
	}
	return path, nil
}

// Run executes one hook and captures its output. A nonzero script exit
// is reported in the result, not as an error.
func (r *HookRunner) Run(ctx context.Context, name string) (*Result, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	execCmd := exec.CommandContext(ctx, path)
	execCmd.Dir = r.hooksDir

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	runErr := execCmd.Run()

	exitCode := 0
	if runErr != nil {
		if exitError, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitError.ExitCode()
		} else {
			return nil, fmt.Errorf("exec hook: %w", runErr)
		}
	}

	return &Result{
		Name:     name,
		Path:     path,
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
