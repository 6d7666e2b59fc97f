package aggregate

import (
	"testing"

	"github.com/tunnelworks/termin/pkg/task"
)

func fixtureProject() task.Project {
	return task.Project{
		ID:           3,
		Name:         "Stadttunnel Nord",
		StartDate:    "2025-05-01",
		EndDate:      "2025-12-31",
		InterimDates: []string{"2025-06-15"},
		Todos: []task.Todo{
			{ID: 12, Title: "Bewehrung abnehmen", Status: task.StatusTodo, Priority: task.PriorityHigh, DueDate: "2025-06-01"},
		},
	}
}

func TestBuildMergesAllSources(t *testing.T) {
	personal := []task.Todo{
		{ID: 1, Title: "Zeiterfassung", Status: task.StatusTodo, Priority: task.PriorityMedium, DueDate: "2025-06-01"},
	}
	entries := Build(personal, []task.Project{fixtureProject()})

	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	wantSources := []Source{SourcePersonal, SourceProject, SourceInterim, SourceProjectDate, SourceProjectDate}
	for i, want := range wantSources {
		if entries[i].Source != want {
			t.Fatalf("entry %d: source %s, want %s", i, entries[i].Source, want)
		}
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.ID] {
			t.Fatalf("duplicate entry id %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestBuildIDScheme(t *testing.T) {
	personal := []task.Todo{{ID: 1, Title: "Zeiterfassung"}}
	entries := Build(personal, []task.Project{fixtureProject()})

	want := []string{"1", "project-12", "interim-3-0", "start-3", "end-3"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Fatalf("entry %d: id %s, want %s", i, entries[i].ID, id)
		}
	}

	if entries[1].OriginalID != 12 {
		t.Fatalf("project entry must keep the backend id, got %d", entries[1].OriginalID)
	}
	if entries[1].ProjectID != 3 || entries[1].ProjectName != "Stadttunnel Nord" {
		t.Fatalf("project entry missing owner: %+v", entries[1])
	}
	if entries[2].InterimIndex != 0 {
		t.Fatalf("interim index: got %d", entries[2].InterimIndex)
	}
	for i, e := range entries {
		if i != 2 && e.InterimIndex != -1 {
			t.Fatalf("entry %s: interim index must be -1, got %d", e.ID, e.InterimIndex)
		}
	}
}

func TestBuildMilestoneFields(t *testing.T) {
	entries := Build(nil, []task.Project{fixtureProject()})

	interim := entries[1]
	if interim.Title != "Zwischentermin 1: Stadttunnel Nord" {
		t.Fatalf("interim title: %q", interim.Title)
	}
	if interim.Status != task.StatusMilestone || interim.Priority != task.PriorityHigh {
		t.Fatalf("interim must be a high priority milestone: %+v", interim)
	}
	if interim.DueDate != "2025-06-15" {
		t.Fatalf("interim due date: %q", interim.DueDate)
	}

	start, end := entries[2], entries[3]
	if start.Title != "Projektstart: Stadttunnel Nord" || start.DueDate != "2025-05-01" {
		t.Fatalf("start marker: %+v", start)
	}
	if end.Title != "Projektende: Stadttunnel Nord" || end.DueDate != "2025-12-31" {
		t.Fatalf("end marker: %+v", end)
	}
	for _, e := range []Entry{interim, start, end} {
		if !e.ReadOnly() {
			t.Fatalf("%s must be read only", e.ID)
		}
	}
}

func TestBuildSkipsAbsentDates(t *testing.T) {
	p := task.Project{ID: 4, Name: "Bestand"}
	entries := Build(nil, []task.Project{p})
	if len(entries) != 0 {
		t.Fatalf("project without dates or todos yields no entries, got %d", len(entries))
	}
}

func TestGroupByDayDropsUnresolvable(t *testing.T) {
	entries := []Entry{
		{ID: "1", DueDate: "2025-06-01"},
		{ID: "2", DueDate: "2025-06-01T08:00:00Z"},
		{ID: "3", DueDate: ""},
		{ID: "4", DueDate: "kaputt"},
	}
	byDay := GroupByDay(entries)
	if len(byDay) != 1 {
		t.Fatalf("expected one bucket, got %d", len(byDay))
	}
	if got := len(byDay["2025-06-01"]); got != 2 {
		t.Fatalf("expected 2 entries on 2025-06-01, got %d", got)
	}
}

func TestSortFlatDatelessLast(t *testing.T) {
	entries := []Entry{
		{ID: "a", DueDate: "2025-06-10"},
		{ID: "b", DueDate: ""},
		{ID: "c", DueDate: "2025-01-01"},
	}
	sorted := SortFlat(entries)
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, sorted[i].ID, id)
		}
	}
	if entries[0].ID != "a" {
		t.Fatal("SortFlat must not mutate its input")
	}
}

func TestFind(t *testing.T) {
	entries := Build(nil, []task.Project{fixtureProject()})
	e, err := Find(entries, "project-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.OriginalID != 12 {
		t.Fatalf("wrong entry: %+v", e)
	}
	if _, err := Find(entries, "project-99"); err == nil {
		t.Fatal("expected ErrNotFound")
	}
}
