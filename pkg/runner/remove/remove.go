package remove

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/aggregate"
)

// Remove deletes one personal calendar entry, then refreshes the
// aggregate. Project, interim and date-marker entries are rejected by
// the gate.
type Remove struct {
	ID string

	Loader *aggregate.Loader
	Gate   *aggregate.Gate
}

func (r *Remove) Do(ctx context.Context) error {
	entries, err := r.Loader.Load(ctx)
	if err != nil {
		return err
	}
	e, err := aggregate.Find(entries, r.ID)
	if err != nil {
		return err
	}

	if err := r.Gate.Delete(ctx, e); err != nil {
		return err
	}
	if _, err := r.Loader.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh after delete: %w", err)
	}

	_, _ = color.New(color.FgRed).Printf("✘ gelöscht: %s\n", e.Title)
	return nil
}
