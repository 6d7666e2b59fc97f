package complete

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/aggregate"
)

// Complete marks one calendar entry as completed, then refreshes the
// aggregate.
type Complete struct {
	ID string

	Loader *aggregate.Loader
	Gate   *aggregate.Gate
}

func (c *Complete) Do(ctx context.Context) error {
	entries, err := c.Loader.Load(ctx)
	if err != nil {
		return err
	}
	e, err := aggregate.Find(entries, c.ID)
	if err != nil {
		return err
	}

	if err := c.Gate.Complete(ctx, e); err != nil {
		return err
	}
	if _, err := c.Loader.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after completion: %w", err)
	}

	_, _ = color.New(color.FgGreen).Printf("✔ erledigt: %s\n", e.Title)
	return nil
}
