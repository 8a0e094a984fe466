// Package history produces the per-account year series backing the history
// chart: actual vs budget charges for one composite key across all
// supplied years.
package history

import (
	"sort"

	"github.com/budgetis-dev/budgetis/internal/model"
	"github.com/budgetis-dev/budgetis/internal/money"
	"github.com/budgetis-dev/budgetis/internal/reconcile"
)

// Series holds aligned per-year values. A year with no row on one side is
// zero-filled on that side.
type Series struct {
	Years   []int     `json:"years"`
	Actuals []float64 `json:"actuals"`
	Budgets []float64 `json:"budgets"`
}

// Charges builds the charge series for one composite key over every year
// present in the collection for that key.
func Charges(accounts []model.Account, key reconcile.Key) Series {
	actuals := make(map[int]float64)
	budgets := make(map[int]float64)
	yearSet := make(map[int]bool)

	for _, a := range accounts {
		if reconcile.KeyOf(a) != key {
			continue
		}
		yearSet[a.Year] = true
		if a.IsBudget {
			budgets[a.Year] = money.Float(a.Charges)
		} else {
			actuals[a.Year] = money.Float(a.Charges)
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	s := Series{Years: years}
	for _, y := range years {
		s.Actuals = append(s.Actuals, actuals[y])
		s.Budgets = append(s.Budgets, budgets[y])
	}
	return s
}
