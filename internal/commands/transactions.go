package commands

import (
	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/query"
	"github.com/ledgerlens/ledgerlens/internal/report"
)

func newTransactionsCommand(opts *rootOptions) *cobra.Command {
	var params query.Params
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List card transactions matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := query.ParseSpec(params)
			if err != nil {
				return err
			}
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}

			set := query.Filter(s.data.Store.All(), spec)
			if asCSV {
				return report.WriteCSV(cmd.OutOrStdout(), set)
			}
			return report.WriteText(cmd.OutOrStdout(), set)
		},
	}

	addFilterFlags(cmd, &params)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")

	return cmd
}
