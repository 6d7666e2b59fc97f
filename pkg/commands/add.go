package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/commands/options"
	"github.com/tunnelworks/termin/pkg/runner/add"
	"github.com/tunnelworks/termin/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a personal task",
		Example: `
termin add "Zeiterfassung abgeben" --due="2025-06-01"
termin add "Schalung prüfen" --priority=high
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, client, err := environment()
			if err != nil {
				return err
			}
			sess, err := store.Current()
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       title,
				Description: ao.Description,
				Priority:    task.Priority(ao.Priority),
				Due:         ao.Due,
				Backend:     client,
				Session:     sess,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAddArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
