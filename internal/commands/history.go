package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/budgetis-dev/budgetis/internal/accounts"
	"github.com/budgetis-dev/budgetis/internal/code"
	"github.com/budgetis-dev/budgetis/internal/history"
	"github.com/budgetis-dev/budgetis/internal/reconcile"
)

func newHistoryCommand() *cobra.Command {
	var input string
	var codeStr string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Emit the actual-vs-budget charge series for one account code",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(codeStr)
			if err != nil {
				return err
			}

			key := reconcile.Key{Function: c.Function, Nature: c.Nature}
			if c.SubAccount != "" {
				sub, err := strconv.Atoi(c.SubAccount)
				if err != nil {
					return fmt.Errorf("sub-account %q is not numeric", c.SubAccount)
				}
				key.SubAccount = sub
			}

			svc, err := accounts.Load(input)
			if err != nil {
				return err
			}

			series := history.Charges(svc.All(), key)
			return writeJSON(cmd.OutOrStdout(), series)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "accounts snapshot CSV (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&codeStr, "code", "", "dotted account code, e.g. 600.351 (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
