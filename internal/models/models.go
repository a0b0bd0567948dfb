// Package models defines the core domain types for confgen.
package models

import "time"

// TaskType categorizes a configuration task and selects its generator.
type TaskType string

const (
	TaskTypeHook     TaskType = "HOOK"
	TaskTypeAutoCmd  TaskType = "AUTO_CMD"
	TaskTypeDecision TaskType = "DECISION"
	TaskTypeMonitor  TaskType = "MONITOR"
	TaskTypeContext  TaskType = "CONTEXT"
	TaskTypeQuality  TaskType = "QUALITY"
)

// KnownTypes lists every task type the generator can route.
func KnownTypes() []TaskType {
	return []TaskType{
		TaskTypeHook,
		TaskTypeAutoCmd,
		TaskTypeDecision,
		TaskTypeMonitor,
		TaskTypeContext,
		TaskTypeQuality,
	}
}

// Task is an immutable configuration task descriptor. ID is the stable
// catalog key (e.g. "C001") and Name is unique within the catalog; output
// filenames and generated identifiers are derived from Name. The remaining
// fields form a category-specific parameter bag: unset fields are omitted
// when a generator echoes the descriptor into an artifact.
type Task struct {
	ID   string   `json:"id"`
	Type TaskType `json:"type"`
	Name string   `json:"name"`

	// HOOK
	Script string `json:"script,omitempty"`

	// AUTO_CMD
	Command string `json:"command,omitempty"`

	// DECISION
	Keywords   []string `json:"keywords,omitempty"`
	Categories []string `json:"categories,omitempty"`

	// MONITOR
	Metrics   []string `json:"metrics,omitempty"`
	Endpoints []string `json:"endpoints,omitempty"`
	Interval  int      `json:"interval,omitempty"`

	// CONTEXT
	AutoLoad    bool   `json:"auto_load,omitempty"`
	Display     string `json:"display,omitempty"`
	TrackActive bool   `json:"track_active,omitempty"`
	Version     bool   `json:"version,omitempty"`
	Backup      bool   `json:"backup,omitempty"`

	// QUALITY
	Threshold int      `json:"threshold,omitempty"`
	Severity  string   `json:"severity,omitempty"`
	Check     string   `json:"check,omitempty"`
	Required  []string `json:"required,omitempty"`
}

// Result records the outcome of generating one task's artifact. Detail
// holds the output file path on success or the error text on failure.
type Result struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    TaskType `json:"type"`
	Success bool     `json:"success"`
	Detail  string   `json:"result"`
}

// Report aggregates the results of one implementation batch.
type Report struct {
	Timestamp   time.Time `json:"timestamp"`
	TotalTasks  int       `json:"total_tasks"`
	Successful  int       `json:"successful"`
	Failed      int       `json:"failed"`
	ElapsedTime string    `json:"elapsed_time"`
	Results     []Result  `json:"results"`
}
