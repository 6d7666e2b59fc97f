package dateutil

import (
	"regexp"
	"testing"
	"time"
)

// withZone pins the package-local zone for the duration of a test so the
// codec can be exercised away from UTC.
func withZone(t *testing.T, offsetHours int) {
	t.Helper()
	old := time.Local
	time.Local = time.FixedZone("test", offsetHours*3600)
	t.Cleanup(func() { time.Local = old })
}

func TestDayKeyShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dates := []time.Time{
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
		time.Date(999, 1, 9, 23, 59, 0, 0, time.Local),
		time.Date(2025, 12, 31, 12, 0, 0, 0, time.Local),
	}
	for _, d := range dates {
		key := DayKey(d)
		if len(key) != 10 || !pattern.MatchString(key) {
			t.Fatalf("malformed day key %q for %v", key, d)
		}
	}
}

func TestRoundTripNonUTC(t *testing.T) {
	withZone(t, -11)

	// Late evening local time is already the next day in UTC; the key
	// must stay on the local day.
	d := time.Date(2025, 6, 1, 23, 30, 0, 0, time.Local)
	key := DayKey(d)
	if key != "2025-06-01" {
		t.Fatalf("expected local day key, got %q", key)
	}

	parsed, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != d.Year() || parsed.Month() != d.Month() || parsed.Day() != d.Day() {
		t.Fatalf("round trip drifted: %v -> %v", d, parsed)
	}
}

func TestParseDayKeyRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"2025-6-1",
		"25-06-01",
		" 2025-06-01",
		"2025-06-01 ",
		"2025-06-01T00:00:00Z",
		"2025-02-31",
		"2025-13-01",
		"2025-00-10",
	}
	for _, key := range bad {
		if _, err := ParseDayKey(key); err == nil {
			t.Fatalf("expected error for %q", key)
		}
	}
}

func TestEntryDay(t *testing.T) {
	cases := []struct {
		due  string
		want string
		ok   bool
	}{
		{"2025-06-01", "2025-06-01", true},
		{"2025-06-01T10:00:00Z", "2025-06-01", true},
		{"", "", false},
		{"tomorrow", "", false},
		{"2025-02-31", "", false},
	}
	for _, c := range cases {
		got, ok := EntryDay(c.due)
		if got != c.want || ok != c.ok {
			t.Fatalf("EntryDay(%q) = %q, %v; want %q, %v", c.due, got, ok, c.want, c.ok)
		}
	}
}

func TestIsToday(t *testing.T) {
	if !IsToday(DayKey(time.Now())) {
		t.Fatal("today should be today")
	}
	if IsToday("1999-01-01") {
		t.Fatal("1999 is not today")
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate(""); got != EmptyDisplay {
		t.Fatalf("empty key: got %q", got)
	}
	if got := DisplayDate("2025-12-08"); got != "8. Dezember 2025" {
		t.Fatalf("got %q", got)
	}
	if got := DisplayDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("malformed key should pass through, got %q", got)
	}
}

func TestWeekCurrentContainsToday(t *testing.T) {
	now := time.Now()
	days := Week(now, 0)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date.Weekday() != time.Monday {
		t.Fatalf("week should start on Monday, got %v", days[0].Date.Weekday())
	}
	if days[0].Name != "Montag" || days[6].Name != "Sonntag" {
		t.Fatalf("unexpected day names %q .. %q", days[0].Name, days[6].Name)
	}
	found := false
	today := DayKey(now)
	for _, d := range days {
		if d.Key == today {
			found = true
		}
	}
	if !found {
		t.Fatalf("current week does not contain today %s", today)
	}
}

func TestWeekOffsetShiftsBySevenDays(t *testing.T) {
	now := time.Date(2025, 12, 10, 15, 0, 0, 0, time.Local) // a Wednesday
	this := Week(now, 0)
	next := Week(now, 1)
	prev := Week(now, -1)
	for i := range this {
		if want := this[i].Date.AddDate(0, 0, 7); next[i].Key != DayKey(want) {
			t.Fatalf("day %d: next week %s, want %s", i, next[i].Key, DayKey(want))
		}
		if want := this[i].Date.AddDate(0, 0, -7); prev[i].Key != DayKey(want) {
			t.Fatalf("day %d: previous week %s, want %s", i, prev[i].Key, DayKey(want))
		}
	}
	if this[0].Key != "2025-12-08" {
		t.Fatalf("expected Monday 2025-12-08, got %s", this[0].Key)
	}
}

func TestWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, 12, 14, 9, 0, 0, 0, time.Local)
	days := Week(sunday, 0)
	if days[0].Key != "2025-12-08" {
		t.Fatalf("Sunday belongs to the week of its preceding Monday, got %s", days[0].Key)
	}
	if days[6].Key != DayKey(sunday) {
		t.Fatalf("Sunday should be the last day, got %s", days[6].Key)
	}
}

func TestWeekRange(t *testing.T) {
	now := time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local)
	got := WeekRange(Week(now, 0))
	if got != "8. Dezember 2025 - 14. Dezember 2025" {
		t.Fatalf("got %q", got)
	}
}
