package edit

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/task"
)

// Edit applies a partial update to one calendar entry, then refreshes
// the aggregate.
type Edit struct {
	ID     string
	Change task.Change

	Loader *aggregate.Loader
	Gate   *aggregate.Gate
}

func (ed *Edit) Do(ctx context.Context) error {
	if ed.Change.Empty() {
		return fmt.Errorf("nothing to change, set at least one of --title, --description, --priority, --due")
	}
	if ed.Change.Priority != nil && !task.ValidPriority(*ed.Change.Priority) {
		return fmt.Errorf("unknown priority %q", *ed.Change.Priority)
	}
	if ed.Change.DueDate != nil {
		if _, err := dateutil.ParseDayKey(*ed.Change.DueDate); err != nil {
			return err
		}
	}

	entries, err := ed.Loader.Load(ctx)
	if err != nil {
		return err
	}
	e, err := aggregate.Find(entries, ed.ID)
	if err != nil {
		return err
	}

	if err := ed.Gate.Edit(ctx, e, ed.Change); err != nil {
		return err
	}
	if _, err := ed.Loader.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after edit: %w", err)
	}

	_, _ = color.New(color.FgGreen).Printf("✔ geändert: %s\n", e.Title)
	return nil
}
