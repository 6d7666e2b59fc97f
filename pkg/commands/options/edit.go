package options

import (
	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/task"
)

// EditOptions collect the fields of a partial todo update. Only flags
// the user actually set end up in the change.
type EditOptions struct {
	Title       string
	Description string
	Priority    string
	Due         string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "New title.")
	cmd.Flags().StringVar(&o.Description, "description", "", "New description.")
	cmd.Flags().StringVar(&o.Priority, "priority", "", "New priority: low, medium or high.")
	cmd.Flags().StringVar(&o.Due, "due", "", `New due date, example: --due="2025-06-01".`)
}

// Changes converts the set flags into a partial update.
func (o *EditOptions) Changes(cmd *cobra.Command) task.Change {
	var change task.Change
	if cmd.Flags().Changed("title") {
		change.Title = &o.Title
	}
	if cmd.Flags().Changed("description") {
		change.Description = &o.Description
	}
	if cmd.Flags().Changed("priority") {
		p := task.Priority(o.Priority)
		change.Priority = &p
	}
	if cmd.Flags().Changed("due") {
		change.DueDate = &o.Due
	}
	return change
}
