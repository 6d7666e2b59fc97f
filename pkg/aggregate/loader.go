package aggregate

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tunnelworks/termin/pkg/session"
	"github.com/tunnelworks/termin/pkg/task"
)

// Backend is the read side of the API client the loader consumes.
type Backend interface {
	UserTodos(ctx context.Context, userID int64) ([]task.Todo, error)
	Projects(ctx context.Context, userID int64) ([]task.Project, error)
	ProjectTodos(ctx context.Context, projectID, userID int64) ([]task.Todo, error)
}

// Loader fetches everything the calendar shows and rebuilds the entry
// set from scratch on every load. Overlapping loads are resolved with a
// generation counter: only the most recently started load may install
// its result, a superseded one is discarded on arrival.
type Loader struct {
	Backend Backend
	Session session.Session

	// Log receives the warning for a tolerated per-project fetch
	// failure. Defaults to log.Default.
	Log *log.Logger

	mu      sync.Mutex
	gen     uint64
	current []Entry
}

// Load fetches personal todos, projects and per-project assigned todos
// and returns the aggregated entries. A failing project todo fetch is
// tolerated: that project contributes no todo entries, but its interim
// and date markers still come from the already fetched project
// metadata.
func (l *Loader) Load(ctx context.Context) ([]Entry, error) {
	if l.Session.UserID == 0 {
		return nil, session.ErrNoSession
	}
	gen := l.begin()

	personal, err := l.Backend.UserTodos(ctx, l.Session.UserID)
	if err != nil {
		return nil, err
	}
	projects, err := l.Backend.Projects(ctx, l.Session.UserID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		todos, err := l.Backend.ProjectTodos(ctx, projects[i].ID, l.Session.UserID)
		if err != nil {
			l.logger().Warn("project todos unavailable", "project", projects[i].Name, "err", err)
			continue
		}
		projects[i].Todos = assignedTo(todos, l.Session.UserID)
	}

	entries := Build(personal, projects)
	if l.install(gen, entries) {
		return entries, nil
	}
	return l.Current(), nil
}

// Refresh is the single re-fetch-everything operation run after a
// permitted mutation.
func (l *Loader) Refresh(ctx context.Context) ([]Entry, error) {
	return l.Load(ctx)
}

// Current returns the last installed aggregate.
func (l *Loader) Current() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.current))
	copy(out, l.current)
	return out
}

func (l *Loader) logger() *log.Logger {
	if l.Log != nil {
		return l.Log
	}
	return log.Default()
}

func (l *Loader) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	return l.gen
}

func (l *Loader) install(gen uint64, entries []Entry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.current = entries
	return true
}

func assignedTo(todos []task.Todo, userID int64) []task.Todo {
	out := make([]task.Todo, 0, len(todos))
	for _, t := range todos {
		if t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out
}
