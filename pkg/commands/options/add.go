package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Description string
	Priority    string
	Due         string
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Description, "description", "", "Optional description.")
	cmd.Flags().StringVar(&o.Priority, "priority", "medium", "Priority: low, medium or high.")
	cmd.Flags().StringVar(&o.Due, "due", "", `Due date, example: --due="2025-06-01".`)
}
