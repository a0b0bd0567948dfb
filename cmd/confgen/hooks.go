package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fentz26/confgen/internal/generator"
	"github.com/fentz26/confgen/internal/runner"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List and run generated session hooks",
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List runnable hooks",
	RunE:  runHooksList,
}

var hooksRunCmd = &cobra.Command{
	Use:   "run [hook-name]",
	Short: "Run one hook, or all hooks with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHooksRun,
}

var hooksRunAll bool

func init() {
	hooksCmd.AddCommand(hooksListCmd, hooksRunCmd)
	hooksRunCmd.Flags().BoolVar(&hooksRunAll, "all", false, "Run every generated hook in name order")
}

func hookRunner() (*runner.HookRunner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	paths := generator.DefaultPaths(cfg.Root)
	return runner.New(paths.Hooks), nil
}

func runHooksList(cmd *cobra.Command, args []string) error {
	r, err := hookRunner()
	if err != nil {
		return err
	}
	names, err := r.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No hooks generated yet. Run 'confgen implement' first.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runHooksRun(cmd *cobra.Command, args []string) error {
	r, err := hookRunner()
	if err != nil {
		return err
	}

	var names []string
	switch {
	case hooksRunAll:
		names, err = r.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no hooks to run")
		}
	case len(args) == 1:
		names = args
	default:
		return fmt.Errorf("hook name required (or --all)")
	}

	failed := 0
	for _, name := range names {
		res, err := r.Run(cmd.Context(), name)
		if err != nil {
			return fmt.Errorf("run hook %s: %w", name, err)
		}
		if res.ExitCode == 0 {
			fmt.Printf("✅ %s\n", name)
		} else {
			failed++
			fmt.Printf("❌ %s (exit %d)\n", name, res.ExitCode)
		}
		if out := strings.TrimSpace(res.Stdout); out != "" {
			for _, line := range strings.Split(out, "\n") {
				fmt.Printf("   %s\n", line)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d hook(s) failed", failed)
	}
	return nil
}
