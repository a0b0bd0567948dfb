package generator

import (
	"strings"
	"text/template"
)

// hookTmpl renders a session hook shell script. The embedded script text
// comes straight from the task descriptor; the wrapper always exits 0.
var hookTmpl = template.Must(template.New("hook").Parse(`#!/bin/bash
# Auto-generated hook: {{.Name}}

echo "Executing hook: {{.Name}}"

{{.Script}}

exit 0
`))

// decisionTmpl renders a keyword-match-and-log decision tracker stub.
var decisionTmpl = template.Must(template.New("decision").Parse(`#!/usr/bin/env python3
# Auto-generated decision tracker: {{.Name}}

import json
from datetime import datetime
from pathlib import Path


class {{.Class}}:
    def __init__(self):
        self.keywords = {{.Keywords}}
        self.categories = {{.Categories}}
        self.log_path = Path(__file__).parent / "logs"
        self.log_path.mkdir(exist_ok=True)

    def track(self, text, context=None):
        """Track decisions based on keywords."""
        for keyword in self.keywords:
            if keyword.lower() in text.lower():
                self.log_decision(text, keyword, context)
                return True
        return False

    def log_decision(self, text, trigger, context=None):
        """Log a detected decision."""
        decision = {
            "timestamp": datetime.now().isoformat(),
            "trigger": trigger,
            "text": text,
            "context": context or {},
            "tracker": "{{.Name}}",
        }
        log_file = self.log_path / f"decisions_{datetime.now().strftime('%Y%m%d')}.json"
        decisions = json.loads(log_file.read_text()) if log_file.exists() else []
        decisions.append(decision)
        log_file.write_text(json.dumps(decisions, indent=2))


if __name__ == "__main__":
    tracker = {{.Class}}()
    if tracker.track("We decided to use parallel processing for better performance"):
        print("decision tracked")
    else:
        print("no decision keywords found")
`))

// monitorTmpl renders a monitor stub with a no-op collect step and an
// append-to-JSON-log step.
var monitorTmpl = template.Must(template.New("monitor").Parse(`#!/usr/bin/env python3
# Auto-generated monitor: {{.Name}}

import json
from datetime import datetime
from pathlib import Path


class {{.Class}}:
    def __init__(self):
        self.name = "{{.Name}}"
        self.metrics = {{.Metrics}}
        self.interval = {{.Interval}}
        self.log_path = Path(__file__).parent / "logs"
        self.log_path.mkdir(exist_ok=True)

    def monitor(self):
        """Run one monitoring pass."""
        results = {
            "timestamp": datetime.now().isoformat(),
            "monitor": self.name,
            "status": "active",
            "metrics": {metric: self.check_metric(metric) for metric in self.metrics},
        }
        self.log_results(results)
        return results

    def check_metric(self, metric):
        # Placeholder until a real collector is wired in.
        return {"value": "N/A", "status": "pending"}

    def log_results(self, results):
        """Append results to the daily JSON log."""
        log_file = self.log_path / f"{self.name}_{datetime.now().strftime('%Y%m%d')}.json"
        logs = json.loads(log_file.read_text()) if log_file.exists() else []
        logs.append(results)
        log_file.write_text(json.dumps(logs, indent=2))


if __name__ == "__main__":
    monitor = {{.Class}}()
    print(json.dumps(monitor.monitor(), indent=2))
`))

// qualityTmpl renders the executable companion to a quality gate config.
// The check is a placeholder that always reports passed.
var qualityTmpl = template.Must(template.New("quality").Parse(`#!/usr/bin/env python3
# Quality gate: {{.Name}}

import json
import sys


class {{.Class}}:
    def __init__(self):
        self.config = json.loads("""{{.Config}}""")

    def check(self):
        """Run the quality gate check."""
        passed = True  # Placeholder
        if passed:
            print("Quality gate '{{.Name}}' passed")
            return 0
        print("Quality gate '{{.Name}}' failed")
        return 1


if __name__ == "__main__":
    gate = {{.Class}}()
    sys.exit(gate.check())
`))

// identifier derives a class name from a task name: underscore segments,
// each capitalized, concatenated (cost_monitor -> CostMonitor).
func identifier(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
