package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/tunnelworks/termin/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "termin",
		Short: base.Wrap80("Projektkalender on the command line: personal tasks, project tasks, milestones and project dates in one week view."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoAmI(topLevel)

	addWeek(topLevel)
	addAll(topLevel)
	addMonth(topLevel)
	addBrowse(topLevel)

	addAdd(topLevel)
	addComplete(topLevel)
	addMove(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)

	addProjects(topLevel)
	addVersion(topLevel)
}
