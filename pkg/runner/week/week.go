package week

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/printers"
)

// Week renders the weekly calendar for the offset week.
type Week struct {
	Offset int
	ShowID bool

	Loader *aggregate.Loader
	Now    func() time.Time
}

func (w *Week) Do(ctx context.Context) error {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	entries, err := w.Loader.Load(ctx)
	if err != nil {
		return err
	}

	days := dateutil.Week(now(), w.Offset)

	header := color.New(color.Bold)
	_, _ = header.Println(dateutil.WeekRange(days))
	switch {
	case w.Offset == 0:
		_, _ = color.New(color.Faint).Println("Aktuelle Woche")
	case w.Offset > 0:
		_, _ = color.New(color.Faint).Println(fmt.Sprintf("In %d Woche(n)", w.Offset))
	default:
		_, _ = color.New(color.Faint).Println(fmt.Sprintf("Vor %d Woche(n)", -w.Offset))
	}
	fmt.Println("")

	pp := printers.PrettyPrint{ShowID: w.ShowID}
	pp.Week(days, aggregate.GroupByDay(entries))
	return nil
}
