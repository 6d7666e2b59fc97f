package aggregate

import (
	"fmt"
	"strconv"

	"github.com/tunnelworks/termin/pkg/task"
)

// Build flattens personal todos and projects into calendar entries.
// Order is deterministic: personal todos first, then per project (in
// the given order) its assigned todos, interim milestones, start and
// end markers. No sorting, no dedup; the renderer groups by day.
func Build(personal []task.Todo, projects []task.Project) []Entry {
	entries := make([]Entry, 0, len(personal))

	for _, t := range personal {
		entries = append(entries, Entry{
			ID:           strconv.FormatInt(t.ID, 10),
			Title:        t.Title,
			Description:  t.Description,
			Status:       t.Status,
			Priority:     t.Priority,
			DueDate:      t.DueDate,
			Source:       SourcePersonal,
			InterimIndex: -1,
		})
	}

	for _, p := range projects {
		for _, t := range p.Todos {
			entries = append(entries, Entry{
				ID:           fmt.Sprintf("project-%d", t.ID),
				Title:        t.Title,
				Description:  t.Description,
				Status:       t.Status,
				Priority:     t.Priority,
				DueDate:      t.DueDate,
				Source:       SourceProject,
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				OriginalID:   t.ID,
				InterimIndex: -1,
			})
		}

		for i, date := range p.InterimDates {
			entries = append(entries, Entry{
				ID:           fmt.Sprintf("interim-%d-%d", p.ID, i),
				Title:        fmt.Sprintf("Zwischentermin %d: %s", i+1, p.Name),
				Status:       task.StatusMilestone,
				Priority:     task.PriorityHigh,
				DueDate:      date,
				Source:       SourceInterim,
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				InterimIndex: i,
			})
		}

		if p.StartDate != "" {
			entries = append(entries, Entry{
				ID:           fmt.Sprintf("start-%d", p.ID),
				Title:        fmt.Sprintf("Projektstart: %s", p.Name),
				Status:       task.StatusMilestone,
				Priority:     task.PriorityHigh,
				DueDate:      p.StartDate,
				Source:       SourceProjectDate,
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				InterimIndex: -1,
			})
		}
		if p.EndDate != "" {
			entries = append(entries, Entry{
				ID:           fmt.Sprintf("end-%d", p.ID),
				Title:        fmt.Sprintf("Projektende: %s", p.Name),
				Status:       task.StatusMilestone,
				Priority:     task.PriorityHigh,
				DueDate:      p.EndDate,
				Source:       SourceProjectDate,
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				InterimIndex: -1,
			})
		}
	}

	return entries
}
