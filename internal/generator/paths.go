package generator

import "path/filepath"

// Paths holds the category output directories for generated artifacts.
// It is built once from configuration and passed into the generator;
// nothing in this package reads paths from package state.
type Paths struct {
	Hooks        string
	AutoCommands string
	Decisions    string
	Monitors     string
	Context      string
	Quality      string
}

// DefaultPaths lays out the category directories under root.
func DefaultPaths(root string) Paths {
	return Paths{
		Hooks:        filepath.Join(root, "hooks"),
		AutoCommands: filepath.Join(root, "auto-commands"),
		Decisions:    filepath.Join(root, "decisions"),
		Monitors:     filepath.Join(root, "monitors"),
		Context:      filepath.Join(root, "context"),
		Quality:      filepath.Join(root, "quality-gates"),
	}
}

// Dirs returns the category directories keyed by display name, for the
// per-directory file counts in the run summary.
func (p Paths) Dirs() map[string]string {
	return map[string]string{
		"hooks":         p.Hooks,
		"auto-commands": p.AutoCommands,
		"decisions":     p.Decisions,
		"monitors":      p.Monitors,
		"context":       p.Context,
		"quality-gates": p.Quality,
	}
}
