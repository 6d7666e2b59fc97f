package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/runner/projects"
)

func addProjects(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"projekte"},
		Short:   "list your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, client, err := environment()
			if err != nil {
				return err
			}
			sess, err := store.Current()
			if err != nil {
				return err
			}
			s := projects.Projects{
				Backend: client,
				Session: sess,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
