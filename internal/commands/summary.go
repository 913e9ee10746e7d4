package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/query"
	"github.com/ledgerlens/ledgerlens/internal/report"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var params query.Params

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending per category and per month",
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
			totals := query.CategoryTotals(set)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.CategoryChart(totals, spec.Year, spec.MonthName))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.MonthlyChart(query.MonthlyTotals(set)))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Total: %s across %d transactions\n", report.FormatAmount(query.GrandTotal(totals)), len(set))
			return nil
		},
	}

	addFilterFlags(cmd, &params)

	return cmd
}
