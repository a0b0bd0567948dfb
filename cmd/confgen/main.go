package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fentz26/confgen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Confgen - parallel configuration implementor",
	Long: `Confgen generates the admin toolkit's configuration artifacts (session
hooks, auto-commands, decision trackers, monitors, context configs, and
quality gates) from a fixed catalog, running all generators in parallel
and writing an aggregate implementation report.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	cfgFile      string
	rootOverride string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .confgen.yaml in $HOME or .)")
	rootCmd.PersistentFlags().StringVar(&rootOverride, "root", "", "Output root directory (overrides config)")

	rootCmd.AddCommand(implementCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(hooksCmd)
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if rootOverride != "" {
		cfg.Root = rootOverride
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
