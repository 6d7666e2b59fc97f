package month

import (
	"context"
	"time"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/printers"
)

// Month renders the month overview grid with entry markers.
type Month struct {
	// On selects the month; nil means the current one.
	On *time.Time

	Loader *aggregate.Loader
}

func (m *Month) Do(ctx context.Context) error {
	entries, err := m.Loader.Load(ctx)
	if err != nil {
		return err
	}

	on := time.Now()
	if m.On != nil {
		on = *m.On
	}

	pp := printers.PrettyPrint{}
	pp.Month(on, aggregate.GroupByDay(entries))
	return nil
}
