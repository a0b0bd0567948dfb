package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fentz26/confgen/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the configuration task catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog tasks",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show one task descriptor",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the deduplicated catalog",
	RunE:  runCatalogExport,
}

var (
	catalogType   string
	exportFormat  string
	exportOutFile string
)

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogExportCmd)

	catalogListCmd.Flags().StringVar(&catalogType, "type", "", "Filter by type (HOOK, AUTO_CMD, DECISION, MONITOR, CONTEXT, QUALITY)")
	catalogExportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or yaml")
	catalogExportCmd.Flags().StringVar(&exportOutFile, "out", "", "Write to file instead of stdout")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	tasks, dropped := catalog.Load()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME")
	for _, t := range tasks {
		if catalogType != "" && string(t.Type) != catalogType {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Type, t.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(dropped) > 0 {
		fmt.Printf("\n⚠️  %d duplicate id(s) dropped: %v\n", len(dropped), dropped)
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	task, ok := catalog.ByID(args[0])
	if !ok {
		return fmt.Errorf("task not found: %s", args[0])
	}
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	tasks := catalog.All()

	var data []byte
	var err error
	switch exportFormat {
	case "json":
		data, err = json.MarshalIndent(tasks, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(tasks)
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if exportOutFile == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutFile, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported %d tasks to %s\n", len(tasks), exportOutFile)
	return nil
}
