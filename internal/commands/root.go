package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgetis-dev/budgetis/internal/buildinfo"
	"github.com/budgetis-dev/budgetis/internal/config"
	"github.com/budgetis-dev/budgetis/internal/taxonomy"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. The static taxonomy tables are validated before any
// subcommand runs; a broken table is fatal.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetis",
		Short:   "Municipal budget classification and flow reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if errs := taxonomy.Validate(); len(errs) > 0 {
				msgs := make([]string, len(errs))
				for i, e := range errs {
					msgs[i] = e.Error()
				}
				return fmt.Errorf("taxonomy tables invalid: %s", strings.Join(msgs, "; "))
			}
			return nil
		},
	}

	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newFlowCommand())
	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// loadConfig reads the optional budgetis.yaml; an empty path yields the
// defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(""), nil
	}
	return config.Load(path)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
