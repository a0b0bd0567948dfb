// Package catalog supplies the static set of configuration tasks.
//
// The catalog is pure data: building it performs no I/O and cannot fail.
// Category population is hand-curated and asymmetric; ids are treated as a
// set keyed by id, with later duplicates dropped rather than generating two
// artifacts for the same id.
package catalog

import "github.com/fentz26/confgen/internal/models"

// Load returns the deduplicated catalog plus the ids of any dropped
// duplicate entries.
func Load() ([]models.Task, []string) {
	return Dedupe(raw())
}

// All returns the deduplicated catalog of configuration tasks.
func All() []models.Task {
	tasks, _ := Load()
	return tasks
}

// Dedupe keeps the first occurrence of each id and reports the dropped ids.
func Dedupe(tasks []models.Task) ([]models.Task, []string) {
	seen := make(map[string]bool, len(tasks))
	unique := make([]models.Task, 0, len(tasks))
	var dropped []string
	for _, t := range tasks {
		if seen[t.ID] {
			dropped = append(dropped, t.ID)
			continue
		}
		seen[t.ID] = true
		unique = append(unique, t)
	}
	return unique, dropped
}

// ByID looks up a task in the deduplicated catalog.
func ByID(id string) (models.Task, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// ByType filters the deduplicated catalog by task type.
func ByType(tt models.TaskType) []models.Task {
	var out []models.Task
	for _, t := range All() {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

func raw() []models.Task {
	var tasks []models.Task
	tasks = append(tasks, sessionHooks()...)
	tasks = append(tasks, autoCommands()...)
	tasks = append(tasks, decisionTracking()...)
	tasks = append(tasks, monitoring()...)
	tasks = append(tasks, contextAwareness()...)
	tasks = append(tasks, qualityGates()...)
	return tasks
}

func sessionHooks() []models.Task {
	return []models.Task{
		{ID: "C001", Type: models.TaskTypeHook, Name: "pre_session_context_check", Script: "scripts/query_context.py --command summary"},
		{ID: "C002", Type: models.TaskTypeHook, Name: "load_latest_decisions", Script: "scripts/query_context.py --command decisions --days 1"},
		{ID: "C003", Type: models.TaskTypeHook, Name: "validate_admin_system", Script: "ls -la \"$ADMIN_ROOT\""},
		{ID: "C004", Type: models.TaskTypeHook, Name: "start_context_daemon", Script: "pgrep -f capture_context.py || scripts/capture_context.py --daemon &"},
		{ID: "C005", Type: models.TaskTypeHook, Name: "session_id_generator", Script: "echo \"SESSION_ID=session_$(date +%Y%m%d_%H%M%S)\""},
		{ID: "C006", Type: models.TaskTypeHook, Name: "auto_log_session_start", Script: "echo \"Session started at $(date)\" >> logs/sessions.log"},
		{ID: "C007", Type: models.TaskTypeHook, Name: "backup_critical_decisions", Script: "cp -r decisions decisions.backup.$(date +%Y%m%d)"},
		{ID: "C008", Type: models.TaskTypeHook, Name: "post_session_summary", Script: "scripts/caia_progress_tracker.py report"},
		{ID: "C009", Type: models.TaskTypeHook, Name: "update_context_if_needed", Script: "scripts/capture_context.py"},
		{ID: "C010", Type: models.TaskTypeHook, Name: "health_check_directories", Script: "for dir in context decisions logs; do [ -d \"$dir\" ] && echo \"ok $dir\" || echo \"missing $dir\"; done"},
		{ID: "C011", Type: models.TaskTypeHook, Name: "load_environment_vars", Script: "export CAIA_ROOT=\"$HOME/projects/caia\""},
		{ID: "C012", Type: models.TaskTypeHook, Name: "setup_logging", Script: "mkdir -p logs"},
		{ID: "C013", Type: models.TaskTypeHook, Name: "verify_dependencies", Script: "python3 --version && node --version && npm --version"},
		{ID: "C014", Type: models.TaskTypeHook, Name: "cache_warmup", Script: "ls \"$CAIA_ROOT/packages\" > /dev/null"},
		{ID: "C015", Type: models.TaskTypeHook, Name: "telemetry_init", Script: "echo \"Telemetry initialized\" > logs/telemetry.log"},
	}
}

func autoCommands() []models.Task {
	return []models.Task{
		{ID: "C020", Type: models.TaskTypeAutoCmd, Name: "quick_status_on_start", Command: "scripts/quick_status.sh"},
		{ID: "C021", Type: models.TaskTypeAutoCmd, Name: "caia_status_on_start", Command: "scripts/caia_status.sh"},
		{ID: "C022", Type: models.TaskTypeAutoCmd, Name: "context_summary", Command: "scripts/query_context.py --command summary"},
		{ID: "C023", Type: models.TaskTypeAutoCmd, Name: "git_status_check", Command: "git status"},
		{ID: "C024", Type: models.TaskTypeAutoCmd, Name: "npm_audit", Command: "npm audit"},
		{ID: "C025", Type: models.TaskTypeAutoCmd, Name: "typescript_check", Command: "npx tsc --noEmit"},
		{ID: "C026", Type: models.TaskTypeAutoCmd, Name: "eslint_check", Command: "npx eslint ."},
		{ID: "C027", Type: models.TaskTypeAutoCmd, Name: "test_status", Command: "npm test"},
		{ID: "C028", Type: models.TaskTypeAutoCmd, Name: "coverage_report", Command: "npm run test:coverage"},
		{ID: "C029", Type: models.TaskTypeAutoCmd, Name: "dependency_check", Command: "npm outdated"},
		{ID: "C030", Type: models.TaskTypeAutoCmd, Name: "security_scan", Command: "npm audit fix"},
		{ID: "C031", Type: models.TaskTypeAutoCmd, Name: "build_status", Command: "npm run build:all"},
		{ID: "C032", Type: models.TaskTypeAutoCmd, Name: "docker_status", Command: "docker ps"},
		{ID: "C033", Type: models.TaskTypeAutoCmd, Name: "memory_check", Command: "vm_stat | grep 'Pages free'"},
		{ID: "C034", Type: models.TaskTypeAutoCmd, Name: "disk_usage", Command: "df -h"},
		{ID: "C035", Type: models.TaskTypeAutoCmd, Name: "process_check", Command: "ps aux | grep -E 'node|python' | head -5"},
		{ID: "C036", Type: models.TaskTypeAutoCmd, Name: "network_status", Command: "netstat -an | grep LISTEN | head -5"},
		{ID: "C037", Type: models.TaskTypeAutoCmd, Name: "log_tail", Command: "tail -5 logs/latest.log 2>/dev/null || echo 'No logs yet'"},
		{ID: "C038", Type: models.TaskTypeAutoCmd, Name: "performance_metrics", Command: "top -l 1 | head -10"},
		{ID: "C039", Type: models.TaskTypeAutoCmd, Name: "roadmap_status", Command: "head -20 ROADMAP.md"},
	}
}

func decisionTracking() []models.Task {
	return []models.Task{
		{ID: "C040", Type: models.TaskTypeDecision, Name: "keyword_detector", Keywords: []string{"decided", "chose", "implemented", "designed", "selected"}},
		{ID: "C041", Type: models.TaskTypeDecision, Name: "auto_categorizer", Categories: []string{"architecture", "design", "strategy", "implementation", "optimization"}},
		{ID: "C042", Type: models.TaskTypeDecision, Name: "decision_logger"},
		{ID: "C043", Type: models.TaskTypeDecision, Name: "decision_analyzer"},
		{ID: "C044", Type: models.TaskTypeDecision, Name: "decision_backup", Backup: true},
		{ID: "C045", Type: models.TaskTypeDecision, Name: "decision_versioning", Version: true},
		{ID: "C046", Type: models.TaskTypeDecision, Name: "decision_search"},
		{ID: "C047", Type: models.TaskTypeDecision, Name: "decision_export", Categories: []string{"json", "md", "pdf"}},
		{ID: "C048", Type: models.TaskTypeDecision, Name: "decision_import", Categories: []string{"github", "jira", "slack"}},
		{ID: "C049", Type: models.TaskTypeDecision, Name: "decision_validation"},
		{ID: "C050", Type: models.TaskTypeDecision, Name: "decision_notification", Keywords: []string{"email", "slack"}},
		{ID: "C051", Type: models.TaskTypeDecision, Name: "decision_approval"},
		{ID: "C052", Type: models.TaskTypeDecision, Name: "decision_rollback"},
		{ID: "C053", Type: models.TaskTypeDecision, Name: "decision_metrics"},
		{ID: "C054", Type: models.TaskTypeDecision, Name: "decision_ai_suggest"},
	}
}

func monitoring() []models.Task {
	return []models.Task{
		{ID: "C060", Type: models.TaskTypeMonitor, Name: "npm_publication_checker", Metrics: []string{"published", "version", "downloads"}},
		{ID: "C061", Type: models.TaskTypeMonitor, Name: "component_tracker", Metrics: []string{"total", "active", "deprecated"}},
		{ID: "C062", Type: models.TaskTypeMonitor, Name: "quality_metrics", Metrics: []string{"coverage", "complexity", "duplication"}},
		{ID: "C063", Type: models.TaskTypeMonitor, Name: "performance_monitor", Metrics: []string{"cpu", "memory", "latency"}},
		{ID: "C064", Type: models.TaskTypeMonitor, Name: "error_tracker", Metrics: []string{"errors", "warnings", "info"}},
		{ID: "C065", Type: models.TaskTypeMonitor, Name: "api_monitor", Endpoints: []string{"health", "metrics", "status"}},
		{ID: "C066", Type: models.TaskTypeMonitor, Name: "database_monitor", Check: "postgres"},
		{ID: "C067", Type: models.TaskTypeMonitor, Name: "cache_monitor", Check: "redis"},
		{ID: "C068", Type: models.TaskTypeMonitor, Name: "queue_monitor", Check: "rabbitmq"},
		{ID: "C069", Type: models.TaskTypeMonitor, Name: "log_aggregator"},
		{ID: "C070", Type: models.TaskTypeMonitor, Name: "alert_manager"},
		{ID: "C071", Type: models.TaskTypeMonitor, Name: "uptime_monitor", Interval: 60},
		{ID: "C072", Type: models.TaskTypeMonitor, Name: "latency_monitor", Metrics: []string{"p50", "p95", "p99"}},
		{ID: "C073", Type: models.TaskTypeMonitor, Name: "throughput_monitor", Metrics: []string{"rps"}},
		{ID: "C074", Type: models.TaskTypeMonitor, Name: "resource_monitor", Metrics: []string{"cpu", "memory", "disk"}},
		{ID: "C075", Type: models.TaskTypeMonitor, Name: "dependency_monitor"},
		{ID: "C076", Type: models.TaskTypeMonitor, Name: "security_monitor"},
		{ID: "C077", Type: models.TaskTypeMonitor, Name: "compliance_monitor"},
		{ID: "C078", Type: models.TaskTypeMonitor, Name: "cost_monitor"},
		{ID: "C079", Type: models.TaskTypeMonitor, Name: "user_activity_monitor"},
	}
}

func contextAwareness() []models.Task {
	return []models.Task{
		{ID: "C080", Type: models.TaskTypeContext, Name: "auto_load_context", AutoLoad: true},
		{ID: "C081", Type: models.TaskTypeContext, Name: "project_summary_display", Display: "summary"},
		{ID: "C082", Type: models.TaskTypeContext, Name: "active_decisions_tracker", TrackActive: true},
		{ID: "C083", Type: models.TaskTypeContext, Name: "context_versioning", Version: true},
		{ID: "C084", Type: models.TaskTypeContext, Name: "context_backup", Backup: true},
		{ID: "C085", Type: models.TaskTypeContext, Name: "context_restore"},
		{ID: "C086", Type: models.TaskTypeContext, Name: "context_merge"},
	}
}

func qualityGates() []models.Task {
	return []models.Task{
		{ID: "C087", Type: models.TaskTypeQuality, Name: "code_coverage_gate", Threshold: 80},
		{ID: "C088", Type: models.TaskTypeQuality, Name: "security_gate", Severity: "high"},
		{ID: "C089", Type: models.TaskTypeQuality, Name: "performance_gate", Metrics: []string{"latency", "throughput"}},
		{ID: "C090", Type: models.TaskTypeQuality, Name: "dependency_gate", Check: "vulnerabilities"},
		{ID: "C091", Type: models.TaskTypeQuality, Name: "documentation_gate", Required: []string{"README", "API"}},
	}
}
