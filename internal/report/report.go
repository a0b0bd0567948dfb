// Package report persists implementation reports and prints run summaries.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"github.com/fentz26/confgen/internal/generator"
	"github.com/fentz26/confgen/internal/models"
)

// Mode selects what happens when a report already exists at the target path.
type Mode string

const (
	// ModeFresh overwrites any prior report; each run stands alone.
	ModeFresh Mode = "fresh"
	// ModeAppend merges into a prior report by incrementing the totals and
	// concatenating results. The merge is additive and does not deduplicate
	// by task id, so repeated runs accumulate history.
	ModeAppend Mode = "append"
)

// Filename is the report file written under the output root.
const Filename = "parallel_implementation_report.json"

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// Writer serializes reports to a fixed path.
type Writer struct {
	Path string
	Mode Mode
}

// Write persists the report according to the writer's mode.
func (w *Writer) Write(rep models.Report) error {
	out := rep
	if w.Mode == ModeAppend {
		prior, err := Load(w.Path)
		switch {
		case err == nil:
			out = merge(*prior, rep)
		case os.IsNotExist(err):
			// First run; nothing to merge.
		default:
			// An unreadable prior report must not be silently replaced;
			// its accumulated history would be lost.
			return fmt.Errorf("load prior report: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(w.Path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(w.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a previously written report.
func Load(path string) (*models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rep models.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &rep, nil
}

// merge folds a new run into a prior report. The prior timestamp is kept
// as the start of the accumulated window; elapsed time reflects the
// latest run only.
func merge(prior, next models.Report) models.Report {
	prior.TotalTasks += next.TotalTasks
	prior.Successful += next.Successful
	prior.Failed += next.Failed
	prior.ElapsedTime = next.ElapsedTime
	prior.Results = append(prior.Results, next.Results...)
	return prior
}

// PrintResult writes the one-line progress message for a completed task.
func PrintResult(res models.Result) {
	if res.Success {
		fmt.Printf("%s %s: %s - Created\n", okMark("✅"), res.ID, res.Name)
	} else {
		fmt.Printf("%s %s: %s - Failed: %s\n", failMark("❌"), res.ID, res.Name, res.Detail)
	}
}

// PrintSummary writes the end-of-run summary block, including per-directory
// file counts for every category directory.
func PrintSummary(rep models.Report, paths generator.Paths, reportPath string) {
	fmt.Println()
	fmt.Println("============================================================")
	fmt.Println("📊 IMPLEMENTATION COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("%s Successful: %d/%d\n", okMark("✅"), rep.Successful, rep.TotalTasks)
	fmt.Printf("%s Failed: %d\n", failMark("❌"), rep.Failed)
	fmt.Printf("⏱️  Time: %s\n", rep.ElapsedTime)
	fmt.Printf("📄 Report: %s\n", reportPath)

	fmt.Println("\n📁 Created directories:")
	dirs := paths.Dirs()
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entries, err := os.ReadDir(dirs[name])
		if err != nil {
			fmt.Printf("  %s: 0 files\n", name)
			continue
		}
		fmt.Printf("  %s: %d files\n", name, len(entries))
	}
}
