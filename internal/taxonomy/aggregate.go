package taxonomy

import (
	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/model"
)

// Sum filters the collection by the category rule and sums the requested
// monetary field. Returns exact zero when nothing matches; negative totals
// are clamped to zero, since the taxonomy represents flow magnitudes.
func Sum(accounts []model.Account, c *Category, field model.Field) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if c.Matches(a) {
			total = total.Add(a.Amount(field))
		}
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// CategoryTotal pairs a category with its aggregated amount.
type CategoryTotal struct {
	Category *Category
	Total    decimal.Decimal
}

// RevenueBreakdown sums revenues per revenue-axis category and returns the
// per-category totals in axis order plus the overall total.
func RevenueBreakdown(accounts []model.Account) ([]CategoryTotal, decimal.Decimal) {
	return breakdown(accounts, RevenueCategories, model.FieldRevenues)
}

// HubBreakdown sums charges per leaf category of a charge hub and returns
// the per-category totals in hub order plus the hub total.
func HubBreakdown(accounts []model.Account, h *Hub) ([]CategoryTotal, decimal.Decimal) {
	return breakdown(accounts, h.Categories, model.FieldCharges)
}

func breakdown(accounts []model.Account, cats []*Category, field model.Field) ([]CategoryTotal, decimal.Decimal) {
	out := make([]CategoryTotal, 0, len(cats))
	total := decimal.Zero
	for _, c := range cats {
		v := Sum(accounts, c, field)
		out = append(out, CategoryTotal{Category: c, Total: v})
		total = total.Add(v)
	}
	return out, total
}
