package flow

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/model"
)

// GroupBy selects the aggregation level of the grouped Sankey.
type GroupBy string

const (
	GroupByGroup          GroupBy = "group"
	GroupByFunctionNature GroupBy = "function_nature"
)

// ValueMode selects which amount drives the link magnitude.
type ValueMode string

const (
	ValueModeNet      ValueMode = "net"
	ValueModeCharges  ValueMode = "charges"
	ValueModeRevenues ValueMode = "revenues"
)

const (
	nodeRevenueSource = "revenues"
	nodeChargesSink   = "charges"
)

type groupedRow struct {
	key      string
	label    string
	charges  decimal.Decimal
	revenues decimal.Decimal
}

// BuildGrouped builds the exploratory Sankey: one intermediate node per
// account group (or per function.nature pair), a virtual revenue source and
// a virtual charge sink. Net mode draws a single flow per node in the
// direction of its sign; absolute amounts below minAmount are dropped.
func BuildGrouped(accounts []model.Account, groupBy GroupBy, mode ValueMode, minAmount decimal.Decimal) Graph {
	rows := aggregateRows(accounts, groupBy)

	b := newBuilder()
	b.node(nodeRevenueSource, "Revenues", "", decimal.Zero)
	b.node(nodeChargesSink, "Charges", "", decimal.Zero)
	for _, r := range rows {
		b.node(r.key, r.label, "", decimal.Zero)
	}

	for _, r := range rows {
		switch mode {
		case ValueModeCharges:
			if r.charges.IsPositive() && r.charges.GreaterThanOrEqual(minAmount) {
				b.link(r.key, nodeChargesSink, r.charges, "")
			}
		case ValueModeRevenues:
			if r.revenues.IsPositive() && r.revenues.GreaterThanOrEqual(minAmount) {
				b.link(nodeRevenueSource, r.key, r.revenues, "")
			}
		default: // net
			net := r.revenues.Sub(r.charges)
			amount := net.Abs()
			if amount.IsZero() || amount.LessThan(minAmount) {
				continue
			}
			if net.IsPositive() {
				b.link(nodeRevenueSource, r.key, amount, "")
			} else {
				b.link(r.key, nodeChargesSink, amount, "")
			}
		}
	}

	return b.graph
}

func aggregateRows(accounts []model.Account, groupBy GroupBy) []groupedRow {
	byKey := make(map[string]*groupedRow)
	for _, a := range accounts {
		var key, label string
		if groupBy == GroupByFunctionNature {
			key = fmt.Sprintf("fn:%d.%d", a.Function, a.Nature)
			label = fmt.Sprintf("%03d.%03d", a.Function, a.Nature)
		} else {
			if a.Group == nil {
				continue
			}
			key = "group:" + a.Group.Code
			label = a.Group.Label
		}

		r, ok := byKey[key]
		if !ok {
			r = &groupedRow{key: key, label: label, charges: decimal.Zero, revenues: decimal.Zero}
			byKey[key] = r
		}
		r.charges = r.charges.Add(a.Charges)
		r.revenues = r.revenues.Add(a.Revenues)
	}

	rows := make([]groupedRow, 0, len(byKey))
	for _, r := range byKey {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].label != rows[j].label {
			return rows[i].label < rows[j].label
		}
		return rows[i].key < rows[j].key
	})
	return rows
}
