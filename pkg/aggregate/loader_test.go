package aggregate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tunnelworks/termin/pkg/session"
	"github.com/tunnelworks/termin/pkg/task"
)

type fakeBackend struct {
	personal []task.Todo
	projects []task.Project
	todos    map[int64][]task.Todo
	fail     map[int64]error

	personalErr error
	projectsErr error
}

func (b *fakeBackend) UserTodos(context.Context, int64) ([]task.Todo, error) {
	return b.personal, b.personalErr
}

func (b *fakeBackend) Projects(context.Context, int64) ([]task.Project, error) {
	return b.projects, b.projectsErr
}

func (b *fakeBackend) ProjectTodos(_ context.Context, projectID, _ int64) ([]task.Todo, error) {
	if err := b.fail[projectID]; err != nil {
		return nil, err
	}
	return b.todos[projectID], nil
}

func TestLoaderRequiresSession(t *testing.T) {
	l := &Loader{Backend: &fakeBackend{}}
	if _, err := l.Load(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestLoaderToleratesProjectFetchFailure(t *testing.T) {
	backend := &fakeBackend{
		personal: []task.Todo{{ID: 1, Title: "Zeiterfassung", DueDate: "2025-06-01"}},
		projects: []task.Project{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B", InterimDates: []string{"2025-06-15"}},
			{ID: 3, Name: "C"},
		},
		todos: map[int64][]task.Todo{
			1: {{ID: 10, Title: "a", AssignedTo: 7}},
			3: {{ID: 30, Title: "c", AssignedTo: 7}},
		},
		fail: map[int64]error{2: errors.New("connection refused")},
	}
	var warnings bytes.Buffer
	l := &Loader{
		Backend: backend,
		Session: session.Session{UserID: 7},
		Log:     log.New(&warnings),
	}

	entries, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("a single project failure must not fail the load: %v", err)
	}
	if !strings.Contains(warnings.String(), "B") {
		t.Fatalf("expected a warning naming the failed project, got %q", warnings.String())
	}

	ids := map[string]bool{}
	for _, e := range entries {
		ids[e.ID] = true
	}
	for _, want := range []string{"1", "project-10", "project-30", "interim-2-0"} {
		if !ids[want] {
			t.Fatalf("missing entry %s in %v", want, ids)
		}
	}
	// The failing project contributes markers but no todos.
	for id := range ids {
		if id == "project-20" {
			t.Fatal("failed project must not contribute todo entries")
		}
	}
}

func TestLoaderFiltersAssignment(t *testing.T) {
	backend := &fakeBackend{
		projects: []task.Project{{ID: 1, Name: "A"}},
		todos: map[int64][]task.Todo{
			1: {
				{ID: 10, Title: "meins", AssignedTo: 7},
				{ID: 11, Title: "fremd", AssignedTo: 9},
			},
		},
	}
	l := &Loader{Backend: backend, Session: session.Session{UserID: 7}}

	entries, err := l.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "project-10" {
		t.Fatalf("expected only the assigned todo, got %+v", entries)
	}
}

func TestLoaderFatalOnMissingBaseData(t *testing.T) {
	l := &Loader{
		Backend: &fakeBackend{personalErr: errors.New("boom")},
		Session: session.Session{UserID: 7},
	}
	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("personal todo failure is fatal for the load")
	}

	l = &Loader{
		Backend: &fakeBackend{projectsErr: errors.New("boom")},
		Session: session.Session{UserID: 7},
	}
	if _, err := l.Load(context.Background()); err == nil {
		t.Fatal("project list failure is fatal for the load")
	}
}

func TestLoaderDiscardsStaleGeneration(t *testing.T) {
	l := &Loader{Backend: &fakeBackend{}, Session: session.Session{UserID: 7}}

	older := l.begin()
	newer := l.begin()

	if l.install(older, []Entry{{ID: "stale"}}) {
		t.Fatal("superseded load must not install its result")
	}
	if !l.install(newer, []Entry{{ID: "fresh"}}) {
		t.Fatal("current load must install its result")
	}

	current := l.Current()
	if len(current) != 1 || current[0].ID != "fresh" {
		t.Fatalf("expected the fresh aggregate, got %+v", current)
	}
}
