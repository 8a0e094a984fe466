package history

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetis-dev/budgetis/internal/model"
	"github.com/budgetis-dev/budgetis/internal/reconcile"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func row(year int, budget bool, charges string) model.Account {
	return model.Account{
		Year:     year,
		Function: 600,
		Nature:   351,
		IsBudget: budget,
		Charges:  dec(charges),
	}
}

func TestCharges_AlignedSeries(t *testing.T) {
	accounts := []model.Account{
		row(2023, false, "190.00"),
		row(2023, true, "185.00"),
		row(2024, true, "200.00"), // budget only, actual zero-filled
		row(2022, false, "175.50"),
		{Year: 2024, Function: 170, Nature: 401, Charges: dec("999")}, // other key
	}

	s := Charges(accounts, reconcile.Key{Function: 600, Nature: 351})

	require.Equal(t, []int{2022, 2023, 2024}, s.Years)
	assert.InDelta(t, 175.5, s.Actuals[0], 0.001)
	assert.InDelta(t, 0, s.Budgets[0], 0.001)
	assert.InDelta(t, 190, s.Actuals[1], 0.001)
	assert.InDelta(t, 185, s.Budgets[1], 0.001)
	assert.InDelta(t, 0, s.Actuals[2], 0.001)
	assert.InDelta(t, 200, s.Budgets[2], 0.001)
}

func TestCharges_NoMatch(t *testing.T) {
	s := Charges(nil, reconcile.Key{Function: 1, Nature: 2})
	assert.Empty(t, s.Years)
	assert.Empty(t, s.Actuals)
	assert.Empty(t, s.Budgets)
}
