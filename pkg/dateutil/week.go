package dateutil

import (
	"fmt"
	"time"
)

var (
	weekdayNames = [7]string{
		"Montag", "Dienstag", "Mittwoch", "Donnerstag",
		"Freitag", "Samstag", "Sonntag",
	}
	monthNames = [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	}
	monthShort = [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	}
)

// WeekDay is one column of the weekly calendar.
type WeekDay struct {
	Name  string // Montag .. Sonntag
	Label string // short display date, "8. Dez"
	Key   string // day key, 2025-12-08
	Date  time.Time
}

// Week returns the seven days, Monday first, of the week offset weeks
// away from now. Offset 0 is the current week, negative offsets are in
// the past. Pure function of (now, offset).
func Week(now time.Time, offset int) []WeekDay {
	weekday := int(now.Weekday()) // 0 = Sunday .. 6 = Saturday
	toMonday := 1 - weekday
	if weekday == 0 {
		toMonday = -6
	}
	monday := now.AddDate(0, 0, toMonday+offset*7)

	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		days = append(days, WeekDay{
			Name:  weekdayNames[i],
			Label: fmt.Sprintf("%d. %s", d.Day(), monthShort[d.Month()-1]),
			Key:   DayKey(d),
			Date:  d,
		})
	}
	return days
}

// WeekRange renders the header line for a week, from its first to its
// last day.
func WeekRange(days []WeekDay) string {
	if len(days) == 0 {
		return ""
	}
	return fmt.Sprintf("%s - %s",
		DisplayDate(days[0].Key), DisplayDate(days[len(days)-1].Key))
}
