package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Group is one level of the organizational chain above an account.
// Parent points at the next level up: account-group -> super-group ->
// meta-group. A nil Parent means the chain is not fully configured.
type Group struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Parent *Group `json:"parent,omitempty"`
}

// Account is one already-parsed account record for a year, either an actual
// figure (IsBudget false) or its budget counterpart. At most one account
// exists per (year, function, nature, sub-account, is_budget); that
// uniqueness is enforced upstream.
type Account struct {
	Year       int             `json:"year"`
	Function   int             `json:"function"`
	Nature     int             `json:"nature"`
	SubAccount int             `json:"sub_account,omitempty"` // 0 = none; sorts before any real sub-account
	Label      string          `json:"label"`
	Group      *Group          `json:"group,omitempty"` // account-group, or nil
	IsBudget   bool            `json:"is_budget"`
	Charges    decimal.Decimal `json:"charges"`
	Revenues   decimal.Decimal `json:"revenues"`

	CommentCount int `json:"comment_count"`
}

// FullCode returns the dotted "function.nature[.subaccount]" code.
func (a Account) FullCode() string {
	if a.SubAccount == 0 {
		return fmt.Sprintf("%d.%d", a.Function, a.Nature)
	}
	return fmt.Sprintf("%d.%d.%d", a.Function, a.Nature, a.SubAccount)
}

// Field selects which monetary column an aggregation reads.
type Field string

const (
	FieldCharges  Field = "charges"
	FieldRevenues Field = "revenues"
)

// Amount returns the requested monetary field.
func (a Account) Amount(f Field) decimal.Decimal {
	if f == FieldRevenues {
		return a.Revenues
	}
	return a.Charges
}
