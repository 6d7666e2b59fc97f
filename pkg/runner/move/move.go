package move

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
)

// Move reschedules one calendar entry to another day, then refreshes
// the aggregate.
type Move struct {
	ID string
	To string

	Loader *aggregate.Loader
	Gate   *aggregate.Gate
}

func (m *Move) Do(ctx context.Context) error {
	entries, err := m.Loader.Load(ctx)
	if err != nil {
		return err
	}
	e, err := aggregate.Find(entries, m.ID)
	if err != nil {
		return err
	}

	if err := m.Gate.MoveTo(ctx, e, m.To); err != nil {
		return err
	}
	if _, err := m.Loader.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after move: %w", err)
	}

	_, _ = color.New(color.FgGreen).Printf("› verschoben: %s", e.Title)
	_, _ = color.New(color.Faint).Printf("  (%s)\n", dateutil.DisplayDate(m.To))
	return nil
}
