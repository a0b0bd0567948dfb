// Package executor runs artifact generation with a bounded worker pool.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fentz26/confgen/internal/models"
)

// DefaultWorkers bounds concurrency when no worker count is configured.
const DefaultWorkers = 10

// Config defines the executor configuration.
type Config struct {
	// Workers is the fixed worker-pool size. Values below 1 fall back to
	// DefaultWorkers.
	Workers int
}

// Executor fans task generation out over a fixed-size worker pool and
// collects one Result per task. Tasks are independent file writes; the
// only shared state is the result channel, so workers need no locking.
type Executor struct {
	gen     Generator
	workers int

	// OnResult, when set, is called from the collection goroutine for each
	// completed task, in completion order. It is never called concurrently.
	OnResult func(models.Result)
}

// Generator is the single dependency the executor dispatches through.
type Generator interface {
	Generate(models.Task) models.Result
}

// New creates an executor around the given generator.
func New(gen Generator, cfg Config) *Executor {
	workers := cfg.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Executor{gen: gen, workers: workers}
}

// Run executes every task and returns the aggregate report. One task
// failing, or panicking, never aborts the batch or cancels siblings:
// panics are recovered at the worker boundary and recorded as failed
// results. Results arrive in completion order; no ordering is guaranteed
// relative to submission.
func (e *Executor) Run(ctx context.Context, tasks []models.Task) models.Report {
	start := time.Now()

	queue := make(chan models.Task)
	results := make(chan models.Result)

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				results <- e.runOne(task)
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, task := range tasks {
			select {
			case queue <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	report := models.Report{
		Timestamp: time.Now(),
		Results:   make([]models.Result, 0, len(tasks)),
	}
	for res := range results {
		if e.OnResult != nil {
			e.OnResult(res)
		}
		report.Results = append(report.Results, res)
		if res.Success {
			report.Successful++
		} else {
			report.Failed++
		}
	}

	report.TotalTasks = len(report.Results)
	report.ElapsedTime = fmt.Sprintf("%.2f seconds", time.Since(start).Seconds())
	return report
}

// runOne dispatches a single task, converting a panicking generator into
// a failed result tagged with the panic text.
func (e *Executor) runOne(task models.Task) (res models.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = models.Result{
				ID:      task.ID,
				Name:    task.Name,
				Type:    task.Type,
				Success: false,
				Detail:  fmt.Sprintf("worker panic: %v", r),
			}
		}
	}()
	return e.gen.Generate(task)
}
