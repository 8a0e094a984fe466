// Package flow builds the weighted money-flow graph: revenue categories
// feed a central household hub, which fans out to the canton, intercommunal
// and commune charge hubs and their leaf categories. A synthetic result
// node absorbs any gap between inflow and outflow so the graph conserves.
package flow

import (
	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/model"
	"github.com/budgetis-dev/budgetis/internal/money"
	"github.com/budgetis-dev/budgetis/internal/taxonomy"
)

// Node is a labeled graph node. Value is the node's own total, rounded to
// cents; it duplicates the attached edge weights for chart tooltips.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

// Link is a weighted directed edge. Source and Target index into Nodes,
// matching the Plotly Sankey input format.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// Graph is the JSON-serializable Sankey description.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

const (
	nodeHousehold = "household"
	nodeResult    = "result"

	labelHousehold = "Municipal household"
	labelResult    = "Result"

	colorHousehold     = "#111827"
	colorHouseholdLink = "#9CA3AF"
	colorResult        = "#374151"
)

// defaultTolerance is half a currency unit: residuals at or below it are
// rounding noise and get no result node.
var defaultTolerance = decimal.NewFromFloat(0.5)

// ResultSlice is one leaf under the result node, produced by a
// BreakdownFunc.
type ResultSlice struct {
	Key   string
	Label string
	Value decimal.Decimal
}

// BreakdownFunc splits the residual into result leaves (amortizations,
// fund allocations, profit, ...). The default build attaches none; real
// computation rules are an extension point.
type BreakdownFunc func(residual decimal.Decimal) []ResultSlice

// Option adjusts graph construction.
type Option func(*options)

type options struct {
	tolerance decimal.Decimal
	breakdown BreakdownFunc
}

// WithTolerance overrides the residual tolerance.
func WithTolerance(t decimal.Decimal) Option {
	return func(o *options) { o.tolerance = t }
}

// WithBreakdown attaches a result breakdown to the graph.
func WithBreakdown(f BreakdownFunc) Option {
	return func(o *options) { o.breakdown = f }
}

// builder accumulates nodes and links, addressing nodes by stable key.
type builder struct {
	idx   map[string]int
	graph Graph
}

func newBuilder() *builder {
	return &builder{idx: make(map[string]int)}
}

func (b *builder) node(id, label, color string, value decimal.Decimal) {
	b.idx[id] = len(b.graph.Nodes)
	b.graph.Nodes = append(b.graph.Nodes, Node{
		ID:    id,
		Label: label,
		Color: color,
		Value: money.Float(value),
	})
}

// link adds an edge when the value is positive and both endpoints exist.
func (b *builder) link(src, dst string, value decimal.Decimal, color string) {
	if !value.IsPositive() {
		return
	}
	si, ok := b.idx[src]
	if !ok {
		return
	}
	di, ok := b.idx[dst]
	if !ok {
		return
	}
	b.graph.Links = append(b.graph.Links, Link{
		Source: si,
		Target: di,
		Value:  money.Float(value),
		Color:  color,
	})
}

// Build assembles the flow graph from an account collection (one year's
// actual rows, typically). Only non-zero categories and hubs get nodes; an
// empty or all-zero collection yields a graph with no nodes at all.
//
// Conservation: after residual insertion, the edge values entering the
// household hub sum exactly to the edge values leaving it. The residual
// edge always carries the absolute gap; a surplus flows household->result,
// a deficit result->household.
func Build(accounts []model.Account, opts ...Option) Graph {
	o := options{tolerance: defaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder()

	revenues, totalRevenue := taxonomy.RevenueBreakdown(accounts)

	type hubTotals struct {
		hub   *taxonomy.Hub
		cats  []taxonomy.CategoryTotal
		total decimal.Decimal
	}
	hubs := make([]hubTotals, 0, len(taxonomy.ChargeHubs))
	totalOut := decimal.Zero
	for _, h := range taxonomy.ChargeHubs {
		cats, total := taxonomy.HubBreakdown(accounts, h)
		hubs = append(hubs, hubTotals{hub: h, cats: cats, total: total})
		totalOut = totalOut.Add(total)
	}

	if totalRevenue.IsZero() && totalOut.IsZero() {
		return b.graph
	}

	// Revenue leaves feed the household hub.
	for _, ct := range revenues {
		if ct.Total.IsPositive() {
			b.node(ct.Category.Key, ct.Category.Label, ct.Category.Color, ct.Total)
		}
	}
	b.node(nodeHousehold, labelHousehold, colorHousehold, totalRevenue)
	for _, ct := range revenues {
		b.link(ct.Category.Key, nodeHousehold, ct.Total, ct.Category.Color)
	}

	// Household fans out to the non-zero charge hubs and their leaves.
	for _, ht := range hubs {
		if !ht.total.IsPositive() {
			continue
		}
		b.node(ht.hub.Key, ht.hub.Label, ht.hub.Color, ht.total)
		b.link(nodeHousehold, ht.hub.Key, ht.total, colorHouseholdLink)
		for _, ct := range ht.cats {
			if !ct.Total.IsPositive() {
				continue
			}
			b.node(ct.Category.Key, ct.Category.Label, ct.Category.Color, ct.Total)
			b.link(ht.hub.Key, ct.Category.Key, ct.Total, ht.hub.LinkColor)
		}
	}

	residual := totalRevenue.Sub(totalOut)
	if residual.Abs().GreaterThan(o.tolerance) {
		b.node(nodeResult, labelResult, colorResult, residual.Abs())
		if residual.IsPositive() {
			b.link(nodeHousehold, nodeResult, residual, colorHouseholdLink)
		} else {
			b.link(nodeResult, nodeHousehold, residual.Abs(), colorHouseholdLink)
		}

		if o.breakdown != nil {
			for _, slice := range o.breakdown(residual) {
				b.node(slice.Key, slice.Label, colorResult, slice.Value)
				b.link(nodeResult, slice.Key, slice.Value, colorResult)
			}
		}
	}

	return b.graph
}
