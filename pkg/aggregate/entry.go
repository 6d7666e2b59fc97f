// Package aggregate merges personal todos, assigned project todos,
// interim milestones and project start/end dates into one calendar
// entry set, and gates which entries may be mutated.
package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tunnelworks/termin/pkg/dateutil"
	"github.com/tunnelworks/termin/pkg/task"
)

// Source is where a calendar entry came from. It decides mutability and
// rendering and never changes after the entry is built.
type Source string

const (
	SourcePersonal    Source = "personal"
	SourceProject     Source = "project"
	SourceInterim     Source = "interim"
	SourceProjectDate Source = "project-date"
)

// ErrNotFound means no aggregated entry carries the requested id.
var ErrNotFound = errors.New("no calendar entry with that id")

// Entry is one aggregated calendar item. Entries are projections of
// backend state; nothing here survives a refresh.
type Entry struct {
	ID          string
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	DueDate     string
	Source      Source

	// Set for every source except personal.
	ProjectID   int64
	ProjectName string

	// OriginalID is the backend todo id behind a project entry, since
	// ID carries the "project-" prefix.
	OriginalID int64

	// InterimIndex is the position in the project's interim date list,
	// -1 for every other source.
	InterimIndex int
}

// ReadOnly reports whether the entry may never be mutated from the
// calendar.
func (e Entry) ReadOnly() bool {
	return e.Source == SourceInterim || e.Source == SourceProjectDate
}

// Day returns the validated day key of the entry, ok=false when the
// entry has no resolvable date.
func (e Entry) Day() (string, bool) {
	return dateutil.EntryDay(e.DueDate)
}

// Find returns the entry with the given aggregated id.
func Find(entries []Entry, id string) (Entry, error) {
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// GroupByDay buckets entries under their day key. Entries without a
// resolvable date are left out; SortFlat still carries them.
func GroupByDay(entries []Entry) map[string][]Entry {
	byDay := make(map[string][]Entry)
	for _, e := range entries {
		key, ok := e.Day()
		if !ok {
			continue
		}
		byDay[key] = append(byDay[key], e)
	}
	return byDay
}

// SortFlat orders entries ascending by due day for the all-entries
// view. Entries without a date sort last; ties keep aggregation order.
func SortFlat(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		di, iok := out[i].Day()
		dj, jok := out[j].Day()
		if iok != jok {
			return iok
		}
		return di < dj
	})
	return out
}
