// Package report builds the nested meta-group / super-group / account-group
// report tree over reconciled accounts, with running totals at every level.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/reconcile"
)

// Totals carries the decimal sums attached to every tree level.
type Totals struct {
	Charges        decimal.Decimal `json:"charges"`
	Revenues       decimal.Decimal `json:"revenues"`
	BudgetCharges  decimal.Decimal `json:"budget_charges"`
	BudgetRevenues decimal.Decimal `json:"budget_revenues"`
}

func (t *Totals) add(ra reconcile.Account) {
	t.Charges = t.Charges.Add(ra.Charges)
	t.Revenues = t.Revenues.Add(ra.Revenues)
	t.BudgetCharges = t.BudgetCharges.Add(ra.BudgetCharges)
	t.BudgetRevenues = t.BudgetRevenues.Add(ra.BudgetRevenues)
}

// GroupNode is one level of the report tree. The root owns the meta-groups,
// each node exclusively owns its children, and leaf nodes (account-groups)
// carry the accounts themselves. A node's totals equal the sum of the
// totals of all accounts beneath it.
type GroupNode struct {
	Code     string              `json:"code"`
	Label    string              `json:"label"`
	Totals   Totals              `json:"totals"`
	Children []*GroupNode        `json:"children,omitempty"`
	Accounts []reconcile.Account `json:"accounts,omitempty"`
}

func (n *GroupNode) child(code, label string) *GroupNode {
	for _, c := range n.Children {
		if c.Code == code {
			return c
		}
	}
	c := &GroupNode{Code: code, Label: label}
	n.Children = append(n.Children, c)
	return c
}

// BuildTree groups reconciled accounts into the four-level tree. Accounts
// whose group / super-group / meta-group chain is incomplete are skipped
// here; they remain visible to other consumers. Totals accumulate while
// visiting, and the finished tree is sorted once: siblings by code
// ascending, leaf accounts by (function, nature, sub-account) with the
// absent sub-account first.
func BuildTree(accounts []reconcile.Account) *GroupNode {
	root := &GroupNode{}

	for _, ra := range accounts {
		group := ra.Group
		if group == nil || group.Parent == nil || group.Parent.Parent == nil {
			continue
		}
		super := group.Parent
		meta := super.Parent

		mg := root.child(meta.Code, meta.Label)
		sg := mg.child(super.Code, super.Label)
		ag := sg.child(group.Code, group.Label)

		ag.Accounts = append(ag.Accounts, ra)

		root.Totals.add(ra)
		mg.Totals.add(ra)
		sg.Totals.add(ra)
		ag.Totals.add(ra)
	}

	sortNode(root)
	return root
}

func sortNode(n *GroupNode) {
	sort.Slice(n.Children, func(i, j int) bool {
		return n.Children[i].Code < n.Children[j].Code
	})
	sort.Slice(n.Accounts, func(i, j int) bool {
		return reconcile.KeyOf(n.Accounts[i].Account).Less(reconcile.KeyOf(n.Accounts[j].Account))
	})
	for _, c := range n.Children {
		sortNode(c)
	}
}
