// Package generator renders configuration artifacts from task descriptors.
//
// Each task type maps to exactly one generator. Generators are pure
// functions of the descriptor: the same task always produces the same
// bytes, so regenerating is safe and overwrites are last-writer-wins.
// A generator never panics and never returns an error to the caller;
// every failure is folded into a failed Result.
package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fentz26/confgen/internal/models"
)

const (
	fileMode = 0o644
	execMode = 0o755
	dirMode  = 0o755
)

// Generator routes tasks to per-type artifact renderers.
type Generator struct {
	paths Paths
}

// New creates a Generator writing into the given category directories.
func New(paths Paths) *Generator {
	return &Generator{paths: paths}
}

// Paths returns the category directories this generator writes into.
func (g *Generator) Paths() Paths {
	return g.paths
}

// Generate produces the artifact for one task and reports the outcome.
// Unknown task types fail closed with a failed Result; they never abort
// the batch.
func (g *Generator) Generate(task models.Task) models.Result {
	path, err := g.dispatch(task)
	res := models.Result{
		ID:      task.ID,
		Name:    task.Name,
		Type:    task.Type,
		Success: err == nil,
		Detail:  path,
	}
	if err != nil {
		res.Detail = err.Error()
	}
	return res
}

func (g *Generator) dispatch(task models.Task) (string, error) {
	switch task.Type {
	case models.TaskTypeHook:
		return g.hook(task)
	case models.TaskTypeAutoCmd:
		return g.autoCommand(task)
	case models.TaskTypeDecision:
		return g.decision(task)
	case models.TaskTypeMonitor:
		return g.monitor(task)
	case models.TaskTypeContext:
		return g.context(task)
	case models.TaskTypeQuality:
		return g.quality(task)
	default:
		return "", &Error{
			Kind: KindUnknownType,
			Task: task.ID,
			Err:  fmt.Errorf("Unknown task type: %s", task.Type),
		}
	}
}

// hook writes an executable shell script embedding the task's script text.
func (g *Generator) hook(task models.Task) (string, error) {
	script := task.Script
	if script == "" {
		script = `echo "Hook implementation pending"`
	}
	data := struct {
		Name   string
		Script string
	}{task.Name, script}

	var buf bytes.Buffer
	if err := hookTmpl.Execute(&buf, data); err != nil {
		return "", renderErr(task.ID, err)
	}

	path := filepath.Join(g.paths.Hooks, task.Name+".sh")
	return path, g.write(task.ID, path, buf.Bytes(), execMode)
}

// autoCommandConfig is the JSON descriptor for a session-start command.
type autoCommandConfig struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Trigger string `json:"trigger"`
	Enabled bool   `json:"enabled"`
}

func (g *Generator) autoCommand(task models.Task) (string, error) {
	command := task.Command
	if command == "" {
		command = `echo "Command pending"`
	}
	cfg := autoCommandConfig{
		Name:    task.Name,
		Command: command,
		Trigger: "session_start",
		Enabled: true,
	}

	path := filepath.Join(g.paths.AutoCommands, task.Name+".json")
	return path, g.writeJSON(task.ID, path, cfg)
}

func (g *Generator) decision(task models.Task) (string, error) {
	keywords, err := pyList(task.Keywords)
	if err != nil {
		return "", renderErr(task.ID, err)
	}
	categories, err := pyList(task.Categories)
	if err != nil {
		return "", renderErr(task.ID, err)
	}
	data := struct {
		Name       string
		Class      string
		Keywords   string
		Categories string
	}{task.Name, identifier(task.Name), keywords, categories}

	var buf bytes.Buffer
	if err := decisionTmpl.Execute(&buf, data); err != nil {
		return "", renderErr(task.ID, err)
	}

	path := filepath.Join(g.paths.Decisions, task.Name+".py")
	return path, g.write(task.ID, path, buf.Bytes(), execMode)
}

func (g *Generator) monitor(task models.Task) (string, error) {
	metrics, err := pyList(task.Metrics)
	if err != nil {
		return "", renderErr(task.ID, err)
	}
	interval := task.Interval
	if interval == 0 {
		interval = 60
	}
	data := struct {
		Name     string
		Class    string
		Metrics  string
		Interval int
	}{task.Name, identifier(task.Name), metrics, interval}

	var buf bytes.Buffer
	if err := monitorTmpl.Execute(&buf, data); err != nil {
		return "", renderErr(task.ID, err)
	}

	path := filepath.Join(g.paths.Monitors, task.Name+".py")
	return path, g.write(task.ID, path, buf.Bytes(), execMode)
}

// contextConfig echoes the descriptor's context flags plus the full
// descriptor, matching what session-start tooling expects to read back.
type contextConfig struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	AutoLoad    bool        `json:"auto_load"`
	Display     string      `json:"display"`
	TrackActive bool        `json:"track_active"`
	Version     bool        `json:"version"`
	Backup      bool        `json:"backup"`
	Config      models.Task `json:"config"`
}

func (g *Generator) context(task models.Task) (string, error) {
	display := task.Display
	if display == "" {
		display = "none"
	}
	cfg := contextConfig{
		Name:        task.Name,
		Type:        "context_awareness",
		AutoLoad:    task.AutoLoad,
		Display:     display,
		TrackActive: task.TrackActive,
		Version:     task.Version,
		Backup:      task.Backup,
		Config:      task,
	}

	path := filepath.Join(g.paths.Context, task.Name+".json")
	return path, g.writeJSON(task.ID, path, cfg)
}

// qualityGateConfig describes a gate; the full descriptor rides along so
// threshold, severity and friends survive into the artifact.
type qualityGateConfig struct {
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Enabled bool        `json:"enabled"`
	Config  models.Task `json:"config"`
}

// quality writes the gate descriptor plus an executable companion checker.
// The gate path is the reported artifact.
func (g *Generator) quality(task models.Task) (string, error) {
	cfg := qualityGateConfig{
		Name:    task.Name,
		Type:    "quality_gate",
		Enabled: true,
		Config:  task,
	}

	gatePath := filepath.Join(g.paths.Quality, task.Name+".json")
	if err := g.writeJSON(task.ID, gatePath, cfg); err != nil {
		return "", err
	}

	configJSON, err := json.Marshal(task)
	if err != nil {
		return "", renderErr(task.ID, err)
	}
	data := struct {
		Name   string
		Class  string
		Config string
	}{task.Name, identifier(task.Name), string(configJSON)}

	var buf bytes.Buffer
	if err := qualityTmpl.Execute(&buf, data); err != nil {
		return "", renderErr(task.ID, err)
	}

	checkerPath := filepath.Join(g.paths.Quality, task.Name+".py")
	if err := g.write(task.ID, checkerPath, buf.Bytes(), execMode); err != nil {
		return "", err
	}
	return gatePath, nil
}

// write creates the parent directory if missing and writes the artifact,
// overwriting any previous version.
func (g *Generator) write(taskID, path string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return ioErr(taskID, fmt.Errorf("create directory: %w", err))
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return ioErr(taskID, fmt.Errorf("write artifact: %w", err))
	}
	// WriteFile mode only applies to new files; re-assert on overwrite so
	// regenerated scripts stay executable.
	if err := os.Chmod(path, mode); err != nil {
		return ioErr(taskID, fmt.Errorf("chmod artifact: %w", err))
	}
	return nil
}

func (g *Generator) writeJSON(taskID, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return renderErr(taskID, err)
	}
	return g.write(taskID, path, append(data, '\n'), fileMode)
}

// pyList marshals a string slice as a JSON array, which doubles as a
// Python list literal in generated stubs. A nil slice renders as [].
func pyList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
