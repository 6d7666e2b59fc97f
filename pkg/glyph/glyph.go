package glyph

import (
	"github.com/tunnelworks/termin/pkg/task"
)

// Glyph is the symbol a todo status or entry origin renders with.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "offen",
	}, Glyph{
		Key:     "/",
		Symbol:  "◐",
		Meaning: "in Arbeit",
	}, Glyph{
		Key:     "x",
		Symbol:  "✔",
		Meaning: "erledigt",
	}, Glyph{
		Key:     "^",
		Symbol:  "◆",
		Meaning: "Meilenstein",
	}, Glyph{
		Key:     "!",
		Symbol:  "!",
		Meaning: "hohe Priorität",
	}, Glyph{
		Key:     " ",
		Symbol:  " ",
		Meaning: "keine",
	})

	return g
}

const (
	open = iota
	inProgress
	completed
	milestone
	highPriority
	none
)

// ForStatus maps a backend status onto its glyph. Unknown statuses fall
// back to the open-task glyph.
func ForStatus(s task.Status) Glyph {
	all := DefaultGlyphs()
	switch s {
	case task.StatusInProgress:
		return all[inProgress]
	case task.StatusCompleted:
		return all[completed]
	case task.StatusMilestone:
		return all[milestone]
	default:
		return all[open]
	}
}

// ForPriority returns the signifier shown before high priority entries.
func ForPriority(p task.Priority) Glyph {
	all := DefaultGlyphs()
	if p == task.PriorityHigh {
		return all[highPriority]
	}
	return all[none]
}

func (g Glyph) String() string {
	return g.Symbol
}
