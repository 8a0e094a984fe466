package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetis-dev/budgetis/internal/accounts"
	"github.com/budgetis-dev/budgetis/internal/commands"
	"github.com/budgetis-dev/budgetis/internal/flow"
	"github.com/budgetis-dev/budgetis/internal/history"
	"github.com/budgetis-dev/budgetis/internal/model"
	"github.com/budgetis-dev/budgetis/internal/report"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeSnapshot(t *testing.T, accts []model.Account) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, accounts.WriteAccounts(f, accts))
	require.NoError(t, f.Close())
	return path
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// communeSnapshot is a small 2024 commune: one tax revenue, one police
// charge, plus the matching budget rows.
func communeSnapshot(t *testing.T) string {
	t.Helper()
	group := &model.Group{
		Code:  "600",
		Label: "Police",
		Parent: &model.Group{
			Code:  "60",
			Label: "Police administration",
			Parent: &model.Group{
				Code:  "6",
				Label: "Police et securite",
			},
		},
	}
	return writeSnapshot(t, []model.Account{
		{
			Year: 2024, Function: 600, Nature: 400,
			Label: "Impot sur le revenu", Group: group,
			Charges: decimal.Zero, Revenues: dec("1000"),
		},
		{
			Year: 2024, Function: 600, Nature: 351,
			Label: "Participation police cantonale", Group: group,
			Charges: dec("200"), Revenues: decimal.Zero,
		},
		{
			Year: 2024, Function: 600, Nature: 400,
			Label: "Impot sur le revenu", Group: group, IsBudget: true,
			Charges: decimal.Zero, Revenues: dec("900"),
		},
		{
			Year: 2024, Function: 600, Nature: 351,
			Label: "Participation police cantonale", Group: group, IsBudget: true,
			Charges: dec("250"), Revenues: decimal.Zero,
		},
	})
}

func TestReport_Actuals(t *testing.T) {
	path := communeSnapshot(t)

	out, err := run(t, "report", "--input", path, "--year", "2024")
	require.NoError(t, err)

	var root report.GroupNode
	require.NoError(t, json.Unmarshal([]byte(out), &root))

	assert.True(t, root.Totals.Charges.Equal(dec("200")))
	assert.True(t, root.Totals.Revenues.Equal(dec("1000")))
	assert.True(t, root.Totals.BudgetCharges.Equal(dec("250")))
	assert.True(t, root.Totals.BudgetRevenues.Equal(dec("900")))

	require.Len(t, root.Children, 1)
	assert.Equal(t, "6", root.Children[0].Code)
}

func TestReport_NoYear(t *testing.T) {
	path := communeSnapshot(t)

	_, err := run(t, "report", "--input", path)
	require.Error(t, err)
}

func TestReport_MissingInput(t *testing.T) {
	_, err := run(t, "report", "--year", "2024")
	require.Error(t, err, "report without --input should fail")
}

func TestFlow_Graph(t *testing.T) {
	path := communeSnapshot(t)

	out, err := run(t, "flow", "--input", path, "--year", "2024")
	require.NoError(t, err)

	var g flow.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &g))

	byID := make(map[string]flow.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	assert.Equal(t, 1000.0, byID["taxes_general"].Value)
	assert.Equal(t, 1000.0, byID["household"].Value)
	assert.Equal(t, 200.0, byID["police"].Value)
	assert.Equal(t, 800.0, byID["result"].Value, "surplus should appear as the result node")
}

func TestFlow_Grouped(t *testing.T) {
	path := communeSnapshot(t)

	out, err := run(t, "flow", "--input", path, "--year", "2024", "--grouped")
	require.NoError(t, err)

	var g flow.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &g))

	byID := make(map[string]flow.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	assert.Contains(t, byID, "revenues")
	assert.Contains(t, byID, "charges")
}

func TestHistory_Series(t *testing.T) {
	path := communeSnapshot(t)

	out, err := run(t, "history", "--input", path, "--code", "600.351")
	require.NoError(t, err)

	var s history.Series
	require.NoError(t, json.Unmarshal([]byte(out), &s))

	assert.Equal(t, []int{2024}, s.Years)
	assert.Equal(t, []float64{200}, s.Actuals)
	assert.Equal(t, []float64{250}, s.Budgets)
}

func TestHistory_BadCode(t *testing.T) {
	path := communeSnapshot(t)

	_, err := run(t, "history", "--input", path, "--code", "abc")
	require.Error(t, err)
}
