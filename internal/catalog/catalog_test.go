package catalog

import (
	"testing"

	"github.com/fentz26/confgen/internal/models"
)

func TestCatalogSize(t *testing.T) {
	tasks := All()
	if len(tasks) != 82 {
		t.Errorf("Expected 82 tasks, got %d", len(tasks))
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, task := range All() {
		if prev, ok := seen[task.ID]; ok {
			t.Errorf("Duplicate id %s shared by %s and %s", task.ID, prev, task.Name)
		}
		seen[task.ID] = task.Name
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, task := range All() {
		if seen[task.Name] {
			t.Errorf("Duplicate name %s", task.Name)
		}
		seen[task.Name] = true
	}
}

func TestCatalogTypesKnown(t *testing.T) {
	known := make(map[models.TaskType]bool)
	for _, tt := range models.KnownTypes() {
		known[tt] = true
	}
	for _, task := range All() {
		if !known[task.Type] {
			t.Errorf("Task %s has unknown type %s", task.ID, task.Type)
		}
	}
}

func TestCatalogCategoryCounts(t *testing.T) {
	want := map[models.TaskType]int{
		models.TaskTypeHook:     15,
		models.TaskTypeAutoCmd:  20,
		models.TaskTypeDecision: 15,
		models.TaskTypeMonitor:  20,
		models.TaskTypeContext:  7,
		models.TaskTypeQuality:  5,
	}
	for tt, count := range want {
		if got := len(ByType(tt)); got != count {
			t.Errorf("Expected %d %s tasks, got %d", count, tt, got)
		}
	}
}

func TestDedupeFirstWins(t *testing.T) {
	tasks := []models.Task{
		{ID: "X1", Type: models.TaskTypeHook, Name: "first"},
		{ID: "X2", Type: models.TaskTypeHook, Name: "second"},
		{ID: "X1", Type: models.TaskTypeContext, Name: "shadow"},
	}

	unique, dropped := Dedupe(tasks)
	if len(unique) != 2 {
		t.Fatalf("Expected 2 unique tasks, got %d", len(unique))
	}
	if unique[0].Name != "first" {
		t.Errorf("Expected first occurrence to win, got %s", unique[0].Name)
	}
	if len(dropped) != 1 || dropped[0] != "X1" {
		t.Errorf("Expected dropped [X1], got %v", dropped)
	}
}

func TestLoadReportsNoDuplicates(t *testing.T) {
	_, dropped := Load()
	if len(dropped) != 0 {
		t.Errorf("Static catalog should have no duplicates, dropped %v", dropped)
	}
}

func TestByID(t *testing.T) {
	task, ok := ByID("C001")
	if !ok {
		t.Fatal("C001 should exist")
	}
	if task.Type != models.TaskTypeHook || task.Name != "pre_session_context_check" {
		t.Errorf("Unexpected C001: %+v", task)
	}

	gate, ok := ByID("C087")
	if !ok {
		t.Fatal("C087 should exist")
	}
	if gate.Type != models.TaskTypeQuality {
		t.Errorf("Expected C087 to be a quality gate, got %s", gate.Type)
	}
	if gate.Threshold != 80 {
		t.Errorf("Expected threshold 80, got %d", gate.Threshold)
	}

	if _, ok := ByID("C999"); ok {
		t.Error("C999 should not exist")
	}
}
