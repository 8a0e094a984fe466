// Package reconcile matches actual figures against their budget and
// prior-year counterparts by the composite (function, nature, sub-account)
// key. Absence of a counterpart is a valid state and always resolves to an
// explicit zero, never a missing field.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/model"
)

// Key is the composite natural key joining actual, budget and prior-year
// rows. A zero SubAccount means none; it sorts before any real value.
type Key struct {
	Function   int
	Nature     int
	SubAccount int
}

// KeyOf extracts the composite key from an account.
func KeyOf(a model.Account) Key {
	return Key{Function: a.Function, Nature: a.Nature, SubAccount: a.SubAccount}
}

// Less orders keys by (function, nature, sub-account) ascending.
func (k Key) Less(o Key) bool {
	if k.Function != o.Function {
		return k.Function < o.Function
	}
	if k.Nature != o.Nature {
		return k.Nature < o.Nature
	}
	return k.SubAccount < o.SubAccount
}

// Account is an account enriched with its reconciled counterparts. All
// fields are always populated; zero is the explicit default for a missing
// counterpart and a nil percentage means the denominator was zero.
type Account struct {
	model.Account

	BudgetCharges  decimal.Decimal `json:"budget_charges"`
	BudgetRevenues decimal.Decimal `json:"budget_revenues"`

	PrevBudgetCharges  decimal.Decimal `json:"prev_budget_charges"`
	PrevBudgetRevenues decimal.Decimal `json:"prev_budget_revenues"`

	ActualCharges  decimal.Decimal `json:"actual_charges"`
	ActualRevenues decimal.Decimal `json:"actual_revenues"`

	ChargesPct  *decimal.Decimal `json:"charges_pct,omitempty"`
	RevenuesPct *decimal.Decimal `json:"revenues_pct,omitempty"`
}

// Actuals reconciles the target year's actual rows against their same-year
// budget counterparts. When the year has no actual rows at all it falls
// back to the budget rows themselves, with their figures moved into the
// budget fields and the primary figures zeroed, so a report can render
// before any actuals have been imported.
func Actuals(accounts []model.Account, year int) []Account {
	var actuals []model.Account
	budgets := make(map[Key]model.Account)
	for _, a := range accounts {
		if a.Year != year {
			continue
		}
		if a.IsBudget {
			budgets[KeyOf(a)] = a
		} else {
			actuals = append(actuals, a)
		}
	}

	if len(actuals) == 0 {
		return budgetFallback(accounts, year)
	}

	out := make([]Account, 0, len(actuals))
	for _, a := range actuals {
		ra := Account{
			Account:        a,
			BudgetCharges:  decimal.Zero,
			BudgetRevenues: decimal.Zero,
		}
		if b, ok := budgets[KeyOf(a)]; ok {
			ra.BudgetCharges = b.Charges
			ra.BudgetRevenues = b.Revenues
		}
		ra.ChargesPct = pct(a.Charges, ra.BudgetCharges)
		ra.RevenuesPct = pct(a.Revenues, ra.BudgetRevenues)
		out = append(out, ra)
	}
	return out
}

func budgetFallback(accounts []model.Account, year int) []Account {
	var out []Account
	for _, a := range accounts {
		if a.Year != year || !a.IsBudget {
			continue
		}
		ra := Account{
			Account:        a,
			BudgetCharges:  a.Charges,
			BudgetRevenues: a.Revenues,
		}
		ra.Charges = decimal.Zero
		ra.Revenues = decimal.Zero
		out = append(out, ra)
	}
	return out
}

// BudgetComparison reports the target year's budget rows against history:
// each row is joined with the year-1 budget row and the year-2 actual row
// by the same key. Percentage deltas compare the current budget against the
// prior-year budget.
func BudgetComparison(accounts []model.Account, year int) []Account {
	var current []model.Account
	prevBudgets := make(map[Key]model.Account)
	prevActuals := make(map[Key]model.Account)
	for _, a := range accounts {
		switch {
		case a.Year == year && a.IsBudget:
			current = append(current, a)
		case a.Year == year-1 && a.IsBudget:
			prevBudgets[KeyOf(a)] = a
		case a.Year == year-2 && !a.IsBudget:
			prevActuals[KeyOf(a)] = a
		}
	}

	out := make([]Account, 0, len(current))
	for _, a := range current {
		// A budget row is its own budget figure.
		ra := Account{
			Account:        a,
			BudgetCharges:  a.Charges,
			BudgetRevenues: a.Revenues,
		}
		if pb, ok := prevBudgets[KeyOf(a)]; ok {
			ra.PrevBudgetCharges = pb.Charges
			ra.PrevBudgetRevenues = pb.Revenues
		}
		if pa, ok := prevActuals[KeyOf(a)]; ok {
			ra.ActualCharges = pa.Charges
			ra.ActualRevenues = pa.Revenues
		}
		ra.ChargesPct = pct(a.Charges, ra.PrevBudgetCharges)
		ra.RevenuesPct = pct(a.Revenues, ra.PrevBudgetRevenues)
		out = append(out, ra)
	}
	return out
}

// pct computes (current - previous) / previous * 100 rounded to one decimal
// place, nil when the denominator is zero.
func pct(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	delta := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
	return &delta
}
