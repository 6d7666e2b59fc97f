package all

import (
	"context"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/printers"
)

// All renders the flat all-entries view, ascending by date, dateless
// entries last.
type All struct {
	ShowID bool

	Loader *aggregate.Loader
}

func (a *All) Do(ctx context.Context) error {
	entries, err := a.Loader.Load(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.TitleWithCount("Alle Termine", len(entries))
	pp.Flat(aggregate.SortFlat(entries))
	return nil
}
