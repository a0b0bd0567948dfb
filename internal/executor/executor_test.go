package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fentz26/confgen/internal/catalog"
	"github.com/fentz26/confgen/internal/generator"
	"github.com/fentz26/confgen/internal/models"
)

// fakeGenerator fails or panics for configured task ids and succeeds
// otherwise. It does no I/O.
type fakeGenerator struct {
	failIDs  map[string]bool
	panicIDs map[string]bool
}

func (f *fakeGenerator) Generate(task models.Task) models.Result {
	if f.panicIDs[task.ID] {
		panic(fmt.Sprintf("boom for %s", task.ID))
	}
	if f.failIDs[task.ID] {
		return models.Result{ID: task.ID, Name: task.Name, Type: task.Type, Success: false, Detail: "forced failure"}
	}
	return models.Result{ID: task.ID, Name: task.Name, Type: task.Type, Success: true, Detail: "/dev/null/" + task.Name}
}

func makeTasks(n int) []models.Task {
	tasks := make([]models.Task, n)
	for i := range tasks {
		tasks[i] = models.Task{
			ID:   fmt.Sprintf("T%03d", i),
			Type: models.TaskTypeHook,
			Name: fmt.Sprintf("task_%03d", i),
		}
	}
	return tasks
}

func TestOneResultPerTask(t *testing.T) {
	tasks := makeTasks(40)
	exec := New(&fakeGenerator{}, Config{Workers: 8})

	rep := exec.Run(context.Background(), tasks)
	if rep.TotalTasks != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), rep.TotalTasks)
	}
	if len(rep.Results) != len(tasks) {
		t.Errorf("Expected %d result entries, got %d", len(tasks), len(rep.Results))
	}

	seen := make(map[string]bool)
	for _, res := range rep.Results {
		if seen[res.ID] {
			t.Errorf("Task %s reported twice", res.ID)
		}
		seen[res.ID] = true
	}
}

func TestFailuresDoNotAbortBatch(t *testing.T) {
	tasks := makeTasks(20)
	fake := &fakeGenerator{failIDs: map[string]bool{"T003": true, "T017": true}}
	exec := New(fake, Config{Workers: 4})

	rep := exec.Run(context.Background(), tasks)
	if rep.Successful != 18 {
		t.Errorf("Expected 18 successes, got %d", rep.Successful)
	}
	if rep.Failed != 2 {
		t.Errorf("Expected 2 failures, got %d", rep.Failed)
	}
}

func TestPanicIsContained(t *testing.T) {
	tasks := makeTasks(10)
	fake := &fakeGenerator{panicIDs: map[string]bool{"T005": true}}
	exec := New(fake, Config{Workers: 3})

	rep := exec.Run(context.Background(), tasks)
	if rep.TotalTasks != 10 {
		t.Fatalf("Expected 10 results despite panic, got %d", rep.TotalTasks)
	}
	if rep.Failed != 1 {
		t.Errorf("Expected 1 failure, got %d", rep.Failed)
	}
	for _, res := range rep.Results {
		if res.ID == "T005" {
			if res.Success {
				t.Error("Panicking task should be recorded as failed")
			}
			if !strings.Contains(res.Detail, "worker panic") {
				t.Errorf("Expected panic detail, got %q", res.Detail)
			}
		}
	}
}

func TestOnResultSeesCompletionOrder(t *testing.T) {
	tasks := makeTasks(15)
	exec := New(&fakeGenerator{}, Config{Workers: 5})

	var streamed []string
	exec.OnResult = func(res models.Result) {
		streamed = append(streamed, res.ID)
	}

	rep := exec.Run(context.Background(), tasks)
	if len(streamed) != rep.TotalTasks {
		t.Errorf("OnResult saw %d results, report has %d", len(streamed), rep.TotalTasks)
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	exec := New(&fakeGenerator{}, Config{})
	if exec.workers != DefaultWorkers {
		t.Errorf("Expected %d workers by default, got %d", DefaultWorkers, exec.workers)
	}
	exec = New(&fakeGenerator{}, Config{Workers: -3})
	if exec.workers != DefaultWorkers {
		t.Errorf("Negative worker count should fall back, got %d", exec.workers)
	}
}

// TestWorkerCountInvariance runs the real catalog through the real
// generator at several pool sizes and checks the successful id sets
// match: success must not depend on scheduling.
func TestWorkerCountInvariance(t *testing.T) {
	tasks := catalog.All()

	successSet := func(workers int) map[string]bool {
		gen := generator.New(generator.DefaultPaths(t.TempDir()))
		exec := New(gen, Config{Workers: workers})
		rep := exec.Run(context.Background(), tasks)

		set := make(map[string]bool)
		for _, res := range rep.Results {
			if res.Success {
				set[res.ID] = true
			}
		}
		return set
	}

	base := successSet(1)
	for _, workers := range []int{10, 50} {
		got := successSet(workers)
		if len(got) != len(base) {
			t.Errorf("Workers=%d: %d successes, workers=1 had %d", workers, len(got), len(base))
		}
		for id := range base {
			if !got[id] {
				t.Errorf("Workers=%d: task %s missing from success set", workers, id)
			}
		}
	}
}

// TestBatchEndToEnd mirrors the minimal two-task batch: a hook and a
// quality gate, generated for real, with the report totals checked.
func TestBatchEndToEnd(t *testing.T) {
	tasks := []models.Task{
		{ID: "C001", Type: models.TaskTypeHook, Name: "ping_check", Script: "echo ok"},
		{ID: "C087", Type: models.TaskTypeQuality, Name: "code_coverage_gate", Threshold: 80},
	}

	paths := generator.DefaultPaths(t.TempDir())
	exec := New(generator.New(paths), Config{Workers: 2})
	rep := exec.Run(context.Background(), tasks)

	if rep.TotalTasks != 2 || rep.Successful != 2 || rep.Failed != 0 {
		t.Fatalf("Expected 2/2 successes, got total=%d ok=%d failed=%d",
			rep.TotalTasks, rep.Successful, rep.Failed)
	}

	hookPath := filepath.Join(paths.Hooks, "ping_check.sh")
	info, err := os.Stat(hookPath)
	if err != nil {
		t.Fatalf("Hook missing: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Error("Hook should be executable")
	}
	content, _ := os.ReadFile(hookPath)
	if !strings.Contains(string(content), "echo ok") {
		t.Error("Hook should contain the script text")
	}

	gate, err := os.ReadFile(filepath.Join(paths.Quality, "code_coverage_gate.json"))
	if err != nil {
		t.Fatalf("Gate config missing: %v", err)
	}
	if !strings.Contains(string(gate), `"threshold": 80`) {
		t.Error("Gate config should contain the threshold")
	}
}

// TestUnknownTypeDoesNotBlockSiblings runs a batch containing a bogus
// type through the real generator.
func TestUnknownTypeDoesNotBlockSiblings(t *testing.T) {
	tasks := []models.Task{
		{ID: "C001", Type: models.TaskTypeHook, Name: "ping_check", Script: "echo ok"},
		{ID: "C999", Type: "BOGUS", Name: "bogus_task"},
	}

	gen := generator.New(generator.DefaultPaths(t.TempDir()))
	rep := New(gen, Config{Workers: 2}).Run(context.Background(), tasks)

	if rep.Successful != 1 || rep.Failed != 1 {
		t.Fatalf("Expected 1 success and 1 failure, got ok=%d failed=%d", rep.Successful, rep.Failed)
	}
	for _, res := range rep.Results {
		if res.ID == "C999" && !strings.Contains(res.Detail, "Unknown task type") {
			t.Errorf("Expected unknown-type detail, got %q", res.Detail)
		}
	}
}
