package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/commands/options"
	"github.com/tunnelworks/termin/pkg/runner/login"
	"github.com/tunnelworks/termin/pkg/runner/logout"
	"github.com/tunnelworks/termin/pkg/runner/whoami"
)

func addLogin(topLevel *cobra.Command) {
	lo := &options.LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "log in to the backend",
		Example: `
termin login -e mail@example.com -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, client, err := environment()
			if err != nil {
				return err
			}
			s := login.Login{
				Email:    lo.Email,
				Password: lo.Password,
				Backend:  client,
				Store:    store,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddLoginArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := environment()
			if err != nil {
				return err
			}
			s := logout.Logout{Store: store}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := environment()
			if err != nil {
				return err
			}
			s := whoami.WhoAmI{Store: store}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
