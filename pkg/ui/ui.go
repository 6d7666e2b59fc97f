package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/glyph"
)

// Do runs the interactive week browser: day index on the left, the
// selected day's entries on the right.
func Do(ctx context.Context, days []dateutil.WeekDay, byDay map[string][]aggregate.Entry) error {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	eTable := tui.NewTable(1, 0)
	eTable.SetFocused(true)
	eTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, ESC or 'q' to QUIT`)

	entries := tui.NewVBox(eTable)
	entries.SetTitle(dateutil.WeekRange(days))
	entries.SetBorder(true)
	entries.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, entries)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		days:        days,
		byDay:       byDay,
		index:       iTable,
		indexTitle:  "Woche",
		indexView:   index,
		entries:     eTable,
		entriesView: entries,
	}
	d.populateIndex()

	iTable.OnSelectionChanged(func(*tui.Table) {
		d.populateEntries()
	})

	ui.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	ui.SetKeybinding("Right", func() {
		d.focusEntries()
	})

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateEntries()
	d.focusIndex()

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	days  []dateutil.WeekDay
	byDay map[string][]aggregate.Entry

	index      *tui.Table
	indexTitle string
	indexView  *tui.Box

	entries     *tui.Table
	entriesView *tui.Box
}

func (d *impl) focusIndex() {
	d.index.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.entries.SetFocused(false)
}

func (d *impl) focusEntries() {
	d.index.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.entries.SetFocused(true)
}

func (d *impl) populateIndex() {
	d.index.RemoveRows()
	d.index.Select(0)

	for _, day := range d.days {
		label := fmt.Sprintf("%s %s", day.Name, day.Label)
		if dateutil.IsToday(day.Key) {
			label += " ◂"
		}
		d.index.AppendRow(tui.NewLabel(label))
	}
}

func (d *impl) populateEntries() {
	d.entries.RemoveRows()

	selected := d.index.Selected()
	if selected < 0 || selected >= len(d.days) {
		return
	}
	day := d.days[selected]
	d.entriesView.SetTitle(fmt.Sprintf("%s, %s", day.Name, day.Label))

	es := d.byDay[day.Key]
	if len(es) == 0 {
		d.entries.AppendRow(tui.NewLabel(" keine Termine"))
		return
	}
	for _, e := range es {
		origin := "Persönlich"
		if e.ProjectName != "" {
			origin = e.ProjectName
		}
		d.entries.AppendRow(tui.NewLabel(fmt.Sprintf("%s %s  (%s)",
			glyph.ForStatus(e.Status).String(), e.Title, origin)))
	}
}
