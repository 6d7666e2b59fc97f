package add

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/session"
	"github.com/tunnelworks/termin/pkg/task"
)

// Creator is the slice of the API client that creates personal todos.
type Creator interface {
	CreateUserTodo(ctx context.Context, userID int64, change task.Change) (*task.Todo, error)
}

// Add creates a new personal todo.
type Add struct {
	Title       string
	Description string
	Priority    task.Priority
	Due         string

	Backend Creator
	Session session.Session
}

func (a *Add) Do(ctx context.Context) error {
	if a.Title == "" {
		return fmt.Errorf("a title is required")
	}
	if a.Priority != "" && !task.ValidPriority(a.Priority) {
		return fmt.Errorf("unknown priority %q", a.Priority)
	}
	if a.Due != "" {
		if _, err := dateutil.ParseDayKey(a.Due); err != nil {
			return err
		}
	}

	change := task.Change{Title: &a.Title}
	if a.Description != "" {
		change.Description = &a.Description
	}
	if a.Priority != "" {
		change.Priority = &a.Priority
	}
	if a.Due != "" {
		change.DueDate = &a.Due
	}

	todo, err := a.Backend.CreateUserTodo(ctx, a.Session.UserID, change)
	if err != nil {
		return err
	}

	_, _ = color.New(color.FgGreen).Printf("✔ angelegt: %s", todo.Title)
	_, _ = color.New(color.Faint).Printf("  (%s, id %d)\n", dateutil.DisplayDate(a.Due), todo.ID)
	return nil
}
