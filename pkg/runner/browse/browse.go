package browse

import (
	"context"
	"time"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/ui"
)

// Browse opens the interactive week browser.
type Browse struct {
	Offset int

	Loader *aggregate.Loader
	Now    func() time.Time
}

func (b *Browse) Do(ctx context.Context) error {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	entries, err := b.Loader.Load(ctx)
	if err != nil {
		return err
	}

	days := dateutil.Week(now(), b.Offset)
	return ui.Do(ctx, days, aggregate.GroupByDay(entries))
}
