package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/session"
	"github.com/tunnelworks/termin/pkg/task"
)

var (
	// ErrReadOnly rejects any mutation of interim milestones and
	// project date markers.
	ErrReadOnly = errors.New("Termin ist nur innerhalb des Projekts bearbeitbar")

	// ErrProjectDelete rejects deleting project todos from the
	// calendar; that happens in the project view only.
	ErrProjectDelete = errors.New("Projektaufgaben können nur im Projekt gelöscht werden")
)

// Mutator is the slice of the backend client the gate needs.
type Mutator interface {
	UpdateUserTodo(ctx context.Context, userID, todoID int64, change task.Change) error
	DeleteUserTodo(ctx context.Context, userID, todoID int64) error
	UpdateProjectTodo(ctx context.Context, projectID, todoID, userID int64, change task.Change) error
}

// Gate decides, per entry origin, whether a mutation is allowed and
// routes permitted ones to the right backend endpoint. It never patches
// local state; callers refresh the aggregate after a permitted
// mutation.
type Gate struct {
	Backend Mutator
	Session session.Session
}

// Edit applies a partial update to an entry.
func (g *Gate) Edit(ctx context.Context, e Entry, change task.Change) error {
	if e.ReadOnly() {
		return fmt.Errorf("%s: %w", e.Title, ErrReadOnly)
	}
	if change.Empty() {
		return errors.New("nothing to change")
	}
	switch e.Source {
	case SourceProject:
		return g.Backend.UpdateProjectTodo(ctx, e.ProjectID, e.OriginalID, g.Session.UserID, change)
	case SourcePersonal:
		id, err := personalID(e)
		if err != nil {
			return err
		}
		return g.Backend.UpdateUserTodo(ctx, g.Session.UserID, id, change)
	default:
		return fmt.Errorf("%s: %w", e.Title, ErrReadOnly)
	}
}

// MoveTo reschedules an entry to another day. The target must be a
// valid day key.
func (g *Gate) MoveTo(ctx context.Context, e Entry, dayKey string) error {
	if _, err := dateutil.ParseDayKey(dayKey); err != nil {
		return err
	}
	return g.Edit(ctx, e, task.Change{DueDate: &dayKey})
}

// Complete marks an entry completed.
func (g *Gate) Complete(ctx context.Context, e Entry) error {
	done := task.StatusCompleted
	return g.Edit(ctx, e, task.Change{Status: &done})
}

// Delete removes a personal entry. Project todos are rejected here
// regardless of assignment.
func (g *Gate) Delete(ctx context.Context, e Entry) error {
	if e.ReadOnly() {
		return fmt.Errorf("%s: %w", e.Title, ErrReadOnly)
	}
	if e.Source == SourceProject {
		return fmt.Errorf("%s: %w", e.Title, ErrProjectDelete)
	}
	id, err := personalID(e)
	if err != nil {
		return err
	}
	return g.Backend.DeleteUserTodo(ctx, g.Session.UserID, id)
}

func personalID(e Entry) (int64, error) {
	id, err := strconv.ParseInt(e.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed personal entry id %q", e.ID)
	}
	return id, nil
}
