package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/commands/options"
	"github.com/tunnelworks/termin/pkg/runner/all"
	"github.com/tunnelworks/termin/pkg/runner/browse"
	"github.com/tunnelworks/termin/pkg/runner/month"
	"github.com/tunnelworks/termin/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "week",
		Aliases: []string{"woche"},
		Short:   "show the weekly calendar",
		Example: `
termin week
termin week --week -1
termin week --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := calendar()
			if err != nil {
				return err
			}
			s := week.Week{
				Offset: wo.Offset,
				ShowID: io.ShowID,
				Loader: l,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWeekArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAll(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "all",
		Short: "show every entry, sorted by date",
		Example: `
termin all
termin all --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := calendar()
			if err != nil {
				return err
			}
			s := all.All{
				ShowID: io.ShowID,
				Loader: l,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "show a month overview with entry markers",
		Example: `
termin month
termin month --on="2025-06-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			l, _, err := calendar()
			if err != nil {
				return err
			}
			s := month.Month{
				On:     on,
				Loader: l,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addBrowse(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "browse the week interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := calendar()
			if err != nil {
				return err
			}
			s := browse.Browse{
				Offset: wo.Offset,
				Loader: l,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWeekArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
