package flow

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetis-dev/budgetis/internal/model"
)

func grouped(groupCode, groupLabel string, function, nature int, charges, revenues string) model.Account {
	return model.Account{
		Year:     2024,
		Function: function,
		Nature:   nature,
		Group:    &model.Group{Code: groupCode, Label: groupLabel},
		Charges:  dec(charges),
		Revenues: dec(revenues),
	}
}

func TestBuildGrouped_NetMode(t *testing.T) {
	accounts := []model.Account{
		grouped("PCO", "Police", 600, 351, "200.00", "0"),
		grouped("ADA", "Administration", 170, 401, "50.00", "1000.00"),
	}

	g := BuildGrouped(accounts, GroupByGroup, ValueModeNet, decimal.Zero)

	require.Len(t, g.Nodes, 4) // source, sink, two groups
	_, srcIdx := nodeByID(t, g, nodeRevenueSource)
	_, sinkIdx := nodeByID(t, g, nodeChargesSink)
	_, adaIdx := nodeByID(t, g, "group:ADA")
	_, pcoIdx := nodeByID(t, g, "group:PCO")

	require.Len(t, g.Links, 2)
	byPair := map[[2]int]float64{}
	for _, l := range g.Links {
		byPair[[2]int{l.Source, l.Target}] = l.Value
	}
	assert.InDelta(t, 950, byPair[[2]int{srcIdx, adaIdx}], 0.001)
	assert.InDelta(t, 200, byPair[[2]int{pcoIdx, sinkIdx}], 0.001)
}

func TestBuildGrouped_ChargesMode(t *testing.T) {
	accounts := []model.Account{
		grouped("PCO", "Police", 600, 351, "200.00", "0"),
		grouped("ADA", "Administration", 170, 401, "0", "1000.00"),
	}

	g := BuildGrouped(accounts, GroupByGroup, ValueModeCharges, decimal.Zero)
	require.Len(t, g.Links, 1)
	assert.InDelta(t, 200, g.Links[0].Value, 0.001)
}

func TestBuildGrouped_MinAmountFilters(t *testing.T) {
	accounts := []model.Account{
		grouped("PCO", "Police", 600, 351, "200.00", "0"),
		grouped("ADA", "Administration", 170, 401, "0.40", "0"),
	}

	g := BuildGrouped(accounts, GroupByGroup, ValueModeNet, dec("1.00"))
	require.Len(t, g.Links, 1)
	assert.InDelta(t, 200, g.Links[0].Value, 0.001)
}

func TestBuildGrouped_ByFunctionNature(t *testing.T) {
	accounts := []model.Account{
		{Year: 2024, Function: 170, Nature: 401, Revenues: dec("100.00")},
		{Year: 2024, Function: 170, Nature: 401, SubAccount: 1, Revenues: dec("50.00")},
		{Year: 2024, Function: 600, Nature: 351, Charges: dec("75.00")},
	}

	g := BuildGrouped(accounts, GroupByFunctionNature, ValueModeNet, decimal.Zero)

	n, _ := nodeByID(t, g, "fn:170.401")
	assert.Equal(t, "170.401", n.Label)

	in, _ := flowThrough(g, "fn:170.401")
	assert.InDelta(t, 150, in, 0.001, "sub-accounts aggregate under one function.nature node")
}

func TestBuildGrouped_GrouplessAccountsSkippedInGroupMode(t *testing.T) {
	accounts := []model.Account{
		{Year: 2024, Function: 170, Nature: 401, Revenues: dec("100.00")},
	}

	g := BuildGrouped(accounts, GroupByGroup, ValueModeNet, decimal.Zero)
	assert.Len(t, g.Nodes, 2) // only the virtual source and sink
	assert.Empty(t, g.Links)
}
