package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/report"
)

func newBankCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bank",
		Short: "Show monthly net income and month-end balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, opts)
			if err != nil {
				return err
			}
			if s.cfg.Sources.Bank == nil {
				return fmt.Errorf("no bank source configured in %s", opts.configPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.NetIncomeChart(report.KindBar, s.data.Bank.Net))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.BalanceChart(report.KindLine, s.data.Bank.Balance))
			return nil
		},
	}
}
