package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/glyph"
	"github.com/tunnelworks/termin/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	idSpacing = strings.Repeat(" ", len("interim-9999-99  "))

	sourceColors = map[aggregate.Source]*color.Color{
		aggregate.SourcePersonal:    color.New(color.FgHiCyan),
		aggregate.SourceProject:     color.New(color.FgHiYellow),
		aggregate.SourceInterim:     color.New(color.FgHiMagenta),
		aggregate.SourceProjectDate: color.New(color.FgHiGreen),
	}
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(idSpacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(idSpacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" Termin")
	default:
		_, _ = c.Println(" Termine")
	}
}

// Week prints the seven day columns of a week with their bucketed
// entries, today's column marked.
func (pp *PrettyPrint) Week(days []dateutil.WeekDay, byDay map[string][]aggregate.Entry) {
	for _, day := range days {
		header := fmt.Sprintf("%s, %s", day.Name, day.Label)
		if dateutil.IsToday(day.Key) {
			header += "  (heute)"
		}
		pp.Title(header)
		pp.Entries(byDay[day.Key]...)
	}
}

// Entries prints aggregated entries as rows, a faint placeholder when
// there are none.
func (pp *PrettyPrint) Entries(entries ...aggregate.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(idSpacing)
		}
		_, _ = f.Print(" keine Termine\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 48

	for _, e := range entries {
		tbl.AddRow(pp.row(e)...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Flat prints the all-entries view with a date column, dateless entries
// rendered with the empty date marker.
func (pp *PrettyPrint) Flat(entries []aggregate.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" keine Termine\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 48

	for _, e := range entries {
		key, _ := e.Day()
		cells := []interface{}{color.New(color.Faint).Sprint(dateutil.DisplayDate(key))}
		cells = append(cells, pp.row(e)...)
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Projects prints the project table.
func (pp *PrettyPrint) Projects(projects []task.Project) {
	if len(projects) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" keine Projekte\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	tbl.AddRow(bold.Sprint("Projekt"), bold.Sprint("Status"), bold.Sprint("Fortschritt"), bold.Sprint("Zeitraum"))
	for _, p := range projects {
		span := fmt.Sprintf("%s - %s",
			dateutil.DisplayDate(dayOrEmpty(p.StartDate)),
			dateutil.DisplayDate(dayOrEmpty(p.EndDate)))
		tbl.AddRow(p.Name, p.Status, fmt.Sprintf("%d%%", p.Progress), faint.Sprint(span))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) row(e aggregate.Entry) []interface{} {
	c, ok := sourceColors[e.Source]
	if !ok {
		c = color.New()
	}

	title := e.Title
	if e.Status == task.StatusCompleted {
		title = color.New(color.Faint, color.CrossedOut).Sprint(title)
	} else {
		title = c.Sprint(title)
	}

	origin := "Persönlich"
	if e.ProjectName != "" {
		origin = e.ProjectName
	}

	cells := make([]interface{}, 0, 5)
	if pp.ShowID {
		cells = append(cells, color.New(color.FgHiYellow, color.Italic, color.Faint).Sprint(e.ID))
	}
	cells = append(cells,
		glyph.ForPriority(e.Priority).String(),
		glyph.ForStatus(e.Status).String(),
		title,
		color.New(color.Faint).Sprint(origin),
	)
	return cells
}

func dayOrEmpty(dueDate string) string {
	key, ok := dateutil.EntryDay(dueDate)
	if !ok {
		return ""
	}
	return key
}
