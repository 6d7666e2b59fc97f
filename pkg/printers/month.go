package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tunnelworks/termin/pkg/aggregate"
	"github.com/tunnelworks/termin/pkg/dateutil"
)

var (
	monthHeaderStyle = lipgloss.NewStyle().Bold(true)
	monthEmptyStyle  = lipgloss.NewStyle().Faint(true)
	monthEntryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	monthTodayStyle  = lipgloss.NewStyle().Reverse(true)
)

// Month renders a Monday-start month grid for the month containing on.
// Days carrying at least one entry are colored, today is inverted.
func (pp *PrettyPrint) Month(on time.Time, byDay map[string][]aggregate.Entry) {
	first := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, on.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	pp.Title(dateutil.DisplayMonth(on))

	var lines []string
	lines = append(lines, monthHeaderStyle.Render("Mo Di Mi Do Fr Sa So"))

	weekdayOffset := (int(first.Weekday()) + 6) % 7 // Monday == 0
	rows := ((weekdayOffset + daysInMonth) + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIndex := row*7 + col
			day := cellIndex - weekdayOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderMonthDay(first, day, byDay))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	fmt.Println(strings.Join(lines, "\n"))
	fmt.Println("")
}

func renderMonthDay(first time.Time, day int, byDay map[string][]aggregate.Entry) string {
	key := dateutil.DayKey(first.AddDate(0, 0, day-1))
	cell := fmt.Sprintf("%2d", day)

	style := monthEmptyStyle
	if len(byDay[key]) > 0 {
		style = monthEntryStyle
	}
	if dateutil.IsToday(key) {
		style = style.Inherit(monthTodayStyle)
	}
	return style.Render(cell)
}
