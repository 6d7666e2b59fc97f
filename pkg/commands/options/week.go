package options

import (
	"github.com/spf13/cobra"
)

// WeekOptions selects which week a calendar command shows.
type WeekOptions struct {
	Offset int
}

func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.Flags().IntVarP(&o.Offset, "week", "w", 0,
		"Week offset: 0 is the current week, 1 the next, -1 the previous.")
}
