package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/commands/options"
	"github.com/tunnelworks/termin/pkg/runner/complete"
	"github.com/tunnelworks/termin/pkg/runner/edit"
	"github.com/tunnelworks/termin/pkg/runner/move"
	"github.com/tunnelworks/termin/pkg/runner/remove"
)

func entryIDArgs(io *options.IDOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires an entry id, see: termin week --show-id")
		}
		io.ID = strings.Join(args, " ")
		return nil
	}
}

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done", "erledigt"},
		Short:   "mark an entry completed",
		Example: `
termin complete 42
termin complete project-12
`,
		Args: entryIDArgs(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := calendar()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:     io.ID,
				Loader: l,
				Gate:   g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := ""

	cmd := &cobra.Command{
		Use:   "move",
		Short: "move an entry to another day",
		Example: `
termin move 42 --to="2025-06-05"
`,
		Args: entryIDArgs(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := calendar()
			if err != nil {
				return err
			}
			s := move.Move{
				ID:     io.ID,
				To:     to,
				Loader: l,
				Gate:   g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", `Target day, example: --to="2025-06-05".`)
	_ = cmd.MarkFlagRequired("to")

	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "change title, description, priority or due date",
		Example: `
termin edit 42 --title="Schalung prüfen"
termin edit project-12 --priority=high --due="2025-06-05"
`,
		Args: entryIDArgs(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := calendar()
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:     io.ID,
				Change: eo.Changes(cmd),
				Loader: l,
				Gate:   g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "delete a personal entry",
		Long: "Delete a personal entry. Project tasks can only be deleted from " +
			"within the project; milestones and project dates are read only.",
		Example: `
termin delete 42
`,
		Args: entryIDArgs(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, g, err := calendar()
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:     io.ID,
				Loader: l,
				Gate:   g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
