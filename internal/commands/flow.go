package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgetis-dev/budgetis/internal/accounts"
	"github.com/budgetis-dev/budgetis/internal/flow"
)

func newFlowCommand() *cobra.Command {
	var input string
	var year int
	var configPath string
	var tolerance float64
	var grouped bool
	var groupBy string
	var valueMode string
	var minAmount float64

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Emit the money-flow Sankey graph as JSON",
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
			actuals := svc.Actuals(year)

			if grouped {
				minLink := decimal.NewFromFloat(minAmount)
				if minAmount == 0 {
					minLink = decimal.NewFromFloat(cfg.Flow.MinLinkAmount)
				}
				g := flow.BuildGrouped(actuals, flow.GroupBy(groupBy), flow.ValueMode(valueMode), minLink)
				return writeJSON(cmd.OutOrStdout(), g)
			}

			var opts []flow.Option
			switch {
			case cmd.Flags().Changed("tolerance"):
				opts = append(opts, flow.WithTolerance(decimal.NewFromFloat(tolerance)))
			case cfg.Flow.Tolerance > 0:
				opts = append(opts, flow.WithTolerance(decimal.NewFromFloat(cfg.Flow.Tolerance)))
			}

			g := flow.Build(actuals, opts...)
			return writeJSON(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "accounts snapshot CSV (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().IntVar(&year, "year", 0, "target year")
	cmd.Flags().StringVar(&configPath, "config", "", "budgetis.yaml path")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.5, "residual tolerance before a result node is added")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "build the exploratory grouped Sankey instead of the taxonomy flow")
	cmd.Flags().StringVar(&groupBy, "group-by", string(flow.GroupByGroup), "grouped mode aggregation: group or function_nature")
	cmd.Flags().StringVar(&valueMode, "value-mode", string(flow.ValueModeNet), "grouped mode link magnitude: net, charges or revenues")
	cmd.Flags().Float64Var(&minAmount, "min-amount", 0, "grouped mode minimum link amount")

	return cmd
}
