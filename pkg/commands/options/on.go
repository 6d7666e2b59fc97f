package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tunnelworks/termin/pkg/dateutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-06-01".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := dateutil.ParseDayKey(o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
