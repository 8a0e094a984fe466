package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgetis-dev/budgetis/internal/accounts"
	"github.com/budgetis-dev/budgetis/internal/reconcile"
	"github.com/budgetis-dev/budgetis/internal/report"
)

func newReportCommand() *cobra.Command {
	var input string
	var year int
	var budget bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Emit the grouped account report tree as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if year == 0 {
				year = cfg.Report.DefaultYear
			}
			if year == 0 {
				return fmt.Errorf("no year given and no default_year configured")
			}

			svc, err := accounts.Load(input)
			if err != nil {
				return err
			}

			var reconciled []reconcile.Account
			if budget {
				reconciled = reconcile.BudgetComparison(svc.All(), year)
			} else {
				reconciled = reconcile.Actuals(svc.All(), year)
			}

			tree := report.BuildTree(reconciled)
			return writeJSON(cmd.OutOrStdout(), tree)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "accounts snapshot CSV (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().IntVar(&year, "year", 0, "target year")
	cmd.Flags().BoolVar(&budget, "budget", false, "report the year's budget against history instead of actuals")
	cmd.Flags().StringVar(&configPath, "config", "", "budgetis.yaml path")

	return cmd
}
