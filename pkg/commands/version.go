package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Overridden via -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	short := false
	format := "json"

	cmd := &cobra.Command{
		Use:   "version",
		Short: "show the build version",
		Example: `
termin version
termin version --short
`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Print(goversion.FuncWithOutput(short, version, commit, date, format))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print just the version number")
	cmd.Flags().StringVarP(&format, "output", "o", "json", "output format, 'yaml' or 'json'")

	topLevel.AddCommand(cmd)
}
