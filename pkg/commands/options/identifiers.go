package options

import (
	"github.com/spf13/cobra"
)

// IDOptions carry the aggregated entry id a mutation targets.
type IDOptions struct {
	ID     string
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show entry ids; use them with complete, move, edit and delete.")
}
