// Package dateutil converts between calendar days and their canonical
// YYYY-MM-DD day keys using local time fields, so a date never shifts
// across the UTC boundary.
package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EmptyDisplay is rendered for entries without a date.
const EmptyDisplay = "–"

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayKey formats t as a day key from its local year, month and day.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDayKey parses a day key into a local-midnight time. The key must
// match \d{4}-\d{2}-\d{2} and name a real calendar day; anything else is
// rejected rather than silently normalized.
func ParseDayKey(key string) (time.Time, error) {
	if !keyPattern.MatchString(key) {
		return time.Time{}, fmt.Errorf("invalid day key %q", key)
	}
	parts := strings.SplitN(key, "-", 3)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid day key %q: no such day", key)
	}
	return t, nil
}

// IsToday reports whether key names the current local day.
func IsToday(key string) bool {
	return key == DayKey(time.Now())
}

// EntryDay extracts the day key from a backend due date string. Only the
// first ten characters are significant. ok is false for empty or
// malformed dates so callers drop the entry from day buckets instead of
// misfiling it.
func EntryDay(dueDate string) (key string, ok bool) {
	if len(dueDate) < 10 {
		return "", false
	}
	key = dueDate[:10]
	if _, err := ParseDayKey(key); err != nil {
		return "", false
	}
	return key, true
}

// DisplayMonth renders the month of t, like "Dezember 2025".
func DisplayMonth(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// DisplayDate renders a day key for humans, like "8. Dezember 2025".
// An empty key renders as EmptyDisplay; a malformed key is passed
// through unchanged.
func DisplayDate(key string) string {
	if key == "" {
		return EmptyDisplay
	}
	t, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
