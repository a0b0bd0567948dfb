package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fentz26/confgen/internal/catalog"
	"github.com/fentz26/confgen/internal/executor"
	"github.com/fentz26/confgen/internal/generator"
	"github.com/fentz26/confgen/internal/history"
	"github.com/fentz26/confgen/internal/models"
	"github.com/fentz26/confgen/internal/report"
	"github.com/fentz26/confgen/internal/tui"
)

var implementCmd = &cobra.Command{
	Use:   "implement",
	Short: "Generate all configuration artifacts in parallel",
	RunE:  runImplement,
}

var (
	implementWorkers    int
	implementReportMode string
	implementTUI        bool
	implementNoHistory  bool
	implementStrict     bool
)

func init() {
	implementCmd.Flags().IntVar(&implementWorkers, "workers", 0, "Worker pool size (overrides config)")
	implementCmd.Flags().StringVar(&implementReportMode, "report-mode", "", "Report mode: fresh or append (overrides config)")
	implementCmd.Flags().BoolVar(&implementTUI, "tui", false, "Show live progress TUI instead of per-task lines")
	implementCmd.Flags().BoolVar(&implementNoHistory, "no-history", false, "Skip recording this run in the history database")
	implementCmd.Flags().BoolVar(&implementStrict, "strict", false, "Exit nonzero when any task fails")
}

func runImplement(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if implementWorkers > 0 {
		workers = implementWorkers
	}
	mode := report.Mode(cfg.Report.Mode)
	if implementReportMode != "" {
		mode = report.Mode(implementReportMode)
	}
	if mode != report.ModeFresh && mode != report.ModeAppend {
		return fmt.Errorf("invalid report mode %q (want fresh or append)", mode)
	}

	tasks, dropped := catalog.Load()
	for _, id := range dropped {
		fmt.Printf("⚠️  Duplicate catalog id %s dropped\n", id)
	}

	paths := generator.DefaultPaths(cfg.Root)
	exec := executor.New(generator.New(paths), executor.Config{Workers: workers})

	var rep models.Report
	if implementTUI {
		rep, err = runBatchTUI(cmd, exec, tasks)
		if err != nil {
			return err
		}
	} else {
		fmt.Printf("🚀 Starting parallel implementation with %d workers\n", workers)
		fmt.Printf("📊 Total tasks: %d\n", len(tasks))
		fmt.Println("============================================================")
		exec.OnResult = report.PrintResult
		rep = exec.Run(cmd.Context(), tasks)
	}

	writer := &report.Writer{Path: cfg.ReportPath(), Mode: mode}
	if err := writer.Write(rep); err != nil {
		return err
	}

	if !implementNoHistory && !cfg.History.Disabled {
		if err := recordRun(cfg.HistoryPath(), rep, tasks); err != nil {
			// History is bookkeeping; a failure here should not mask the
			// completed batch.
			fmt.Printf("⚠️  Could not record run history: %v\n", err)
		}
	}

	report.PrintSummary(rep, paths, cfg.ReportPath())

	if implementStrict && rep.Failed > 0 {
		return fmt.Errorf("%d of %d tasks failed", rep.Failed, rep.TotalTasks)
	}
	return nil
}

// runBatchTUI runs the batch with the live progress view attached. The
// view is display only: dismissing it, or a view error, never aborts the
// batch, and the report is still collected.
func runBatchTUI(cmd *cobra.Command, exec *executor.Executor, tasks []models.Task) (models.Report, error) {
	results, done := startBatch(cmd.Context(), exec, tasks)

	if err := tui.New(len(tasks), results).Run(); err != nil {
		fmt.Printf("⚠️  Progress view error: %v\n", err)
	}
	return finishBatch(results, done), nil
}

// startBatch runs the executor in the background, streaming results as
// they complete; the aggregate report lands on done after the result
// stream closes.
func startBatch(ctx context.Context, exec *executor.Executor, tasks []models.Task) (chan models.Result, chan models.Report) {
	results := make(chan models.Result)
	done := make(chan models.Report, 1)

	exec.OnResult = func(res models.Result) {
		results <- res
	}
	go func() {
		rep := exec.Run(ctx, tasks)
		close(results)
		done <- rep
	}()
	return results, done
}

// finishBatch drains any results the view did not consume so the workers
// never block on a result send, then picks up the report.
func finishBatch(results chan models.Result, done chan models.Report) models.Report {
	go func() {
		for range results {
		}
	}()
	return <-done
}

func recordRun(dbPath string, rep models.Report, tasks []models.Task) error {
	store, err := history.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.RecordRun(rep, tasks)
	if err != nil {
		return err
	}
	fmt.Printf("🗂  Run recorded: %s\n", run.ID)
	return nil
}
