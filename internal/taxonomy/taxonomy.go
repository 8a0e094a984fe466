// Package taxonomy holds the static classification tables that map account
// natures and explicit codes into the fixed financial taxonomy: revenue
// buckets on one axis, canton / intercommunal / commune charge buckets on
// the other. The tables are immutable, loaded once, and validated at
// startup.
package taxonomy

import (
	"strconv"

	"github.com/budgetis-dev/budgetis/internal/code"
	"github.com/budgetis-dev/budgetis/internal/model"
)

// Range is an inclusive nature-code range.
type Range struct {
	Lo, Hi int
}

func (r Range) contains(n int) bool {
	return n >= r.Lo && n <= r.Hi
}

// Category is one bucket of the taxonomy. It matches an account by a
// nature range, an explicit nature set, or an explicit dotted-code set,
// minus optional exclusions. Categories on the same axis are mutually
// exclusive by construction (checked by Validate).
type Category struct {
	Key   string
	Label string
	Color string

	natures        *Range
	natureIn       []int
	codes          []code.Code
	excludeNatures []int
	excludeRanges  []Range
	excludeCodes   []code.Code
}

// codeMatches reports whether an explicit code covers the account.
// A code without a sub-account segment covers every sub-account of its
// function.nature pair.
func codeMatches(c code.Code, a model.Account) bool {
	if c.Function != a.Function || c.Nature != a.Nature {
		return false
	}
	if c.SubAccount == "" {
		return true
	}
	return a.SubAccount != 0 && c.SubAccount == strconv.Itoa(a.SubAccount)
}

// Matches reports whether the account belongs to this category.
func (c *Category) Matches(a model.Account) bool {
	if !c.baseMatch(a) {
		return false
	}
	for _, n := range c.excludeNatures {
		if a.Nature == n {
			return false
		}
	}
	for _, r := range c.excludeRanges {
		if r.contains(a.Nature) {
			return false
		}
	}
	for _, ec := range c.excludeCodes {
		if codeMatches(ec, a) {
			return false
		}
	}
	return true
}

func (c *Category) baseMatch(a model.Account) bool {
	if len(c.codes) > 0 {
		for _, cc := range c.codes {
			if codeMatches(cc, a) {
				return true
			}
		}
		return false
	}
	if c.natures != nil && c.natures.contains(a.Nature) {
		return true
	}
	for _, n := range c.natureIn {
		if a.Nature == n {
			return true
		}
	}
	return false
}

// Hub is a top-level charge destination in the flow graph, owning the leaf
// categories beneath it.
type Hub struct {
	Key        string
	Label      string
	Color      string
	LinkColor  string
	Categories []*Category
}

func mustCodes(ss ...string) []code.Code {
	out := make([]code.Code, len(ss))
	for i, s := range ss {
		out[i] = code.MustParse(s)
	}
	return out
}

// Explicit canton transfer codes. These natures sit inside the
// intercommunal 350-359 range and are excluded from it below.
var (
	socialSecurityCode = "720.351"
	equalizationCode   = "220.352"
	policeCode         = "600.351"
)

var aisgeCodes = []string{
	"500.352",
	"510.352",
	"510.366",
	"520.352",
	"520.366",
	"530.351",
	"530.451",
	"550.352",
	"560.352",
	"570.352",
}

var apecCodes = []string{"460.352", "460.352.1"}

var transportsCodes = []string{"180.351"}

var associationCodes = []string{
	"160.352",
	"310.351",
	"320.352",
	"320.352.1",
	"440.352",
	"540.352",
	"580.352",
	"650.352",
	"660.352",
	"710.352",
	"720.352",
	"810.352",
	"810.352.1",
}

// aisgeCodesWithNature returns the AISGE member codes carrying the given
// nature. Used to keep AISGE variants out of the commune aid bucket.
func aisgeCodesWithNature(nature int) []string {
	var out []string
	for _, s := range aisgeCodes {
		if code.MustParse(s).Nature == nature {
			out = append(out, s)
		}
	}
	return out
}

// Revenue axis, in precedence order. All buckets live inside the overall
// 400-499 revenue nature range.
var (
	GeneralTax = &Category{
		Key:            "taxes_general",
		Label:          "Taxes (general)",
		Color:          "#2066CF",
		natures:        &Range{400, 409},
		excludeNatures: []int{402, 404, 405},
	}
	RandomTaxes = &Category{
		Key:      "random_taxes",
		Label:    "Random taxes",
		Color:    "#5B8DEF",
		natureIn: []int{402, 404, 405},
	}
	UsageLevies = &Category{
		Key:     "levies_usage",
		Label:   "Levies (usage-based)",
		Color:   "#F59E0B",
		natures: &Range{430, 439},
	}
	Rentals = &Category{
		Key:      "rentals",
		Label:    "Rentals",
		Color:    "#2BB673",
		natureIn: []int{423, 425, 427},
	}
	InterestRevenues = &Category{
		Key:      "interests_revenues",
		Label:    "Interests",
		Color:    "#6B7280",
		natureIn: []int{422, 424},
	}
	OtherRevenues = &Category{
		Key:            "other_revenues",
		Label:          "Other revenues",
		Color:          "#6B7280",
		natures:        &Range{400, 499},
		excludeRanges:  []Range{{400, 409}, {430, 439}},
		excludeNatures: []int{422, 423, 424, 425, 427},
	}
)

// RevenueCategories is the revenue axis in evaluation order.
var RevenueCategories = []*Category{
	GeneralTax,
	RandomTaxes,
	UsageLevies,
	Rentals,
	InterestRevenues,
	OtherRevenues,
}

// Charge axis: canton leaves.
var (
	SocialSecurity = &Category{
		Key:   "social",
		Label: "Social security",
		Color: "#86EFAC",
		codes: mustCodes(socialSecurityCode),
	}
	Equalization = &Category{
		Key:   "equalization",
		Label: "Equalization",
		Color: "#4ADE80",
		codes: mustCodes(equalizationCode),
	}
	Police = &Category{
		Key:   "police",
		Label: "Police",
		Color: "#22C55E",
		codes: mustCodes(policeCode),
	}
)

// Charge axis: intercommunal leaves. The explicit member lists take
// precedence over the 350-359 range bucket.
var (
	AISGE = &Category{
		Key:   "aisge",
		Label: "AISGE",
		Color: "#A78BFA",
		codes: mustCodes(aisgeCodes...),
	}
	APEC = &Category{
		Key:   "apec",
		Label: "APEC",
		Color: "#C4B5FD",
		codes: mustCodes(apecCodes...),
	}
	RegionalTransports = &Category{
		Key:   "transports_region",
		Label: "Regional transports",
		Color: "#DDD6FE",
		codes: mustCodes(transportsCodes...),
	}
	Associations = &Category{
		Key:   "associations",
		Label: "Associations",
		Color: "#E9D5FF",
		codes: mustCodes(associationCodes...),
	}
	OtherIntercommunal = &Category{
		Key:     "other_intercommunalities",
		Label:   "Other intercommunalities",
		Color:   "#EDE9FE",
		natures: &Range{350, 359},
		excludeCodes: mustCodes(concat(
			aisgeCodes,
			apecCodes,
			transportsCodes,
			associationCodes,
			[]string{socialSecurityCode, equalizationCode, policeCode},
		)...),
	}
)

// Charge axis: commune-internal leaves, by nature range.
var (
	Wages = &Category{
		Key:     "wages",
		Label:   "Wages",
		Color:   "#FDE68A",
		natures: &Range{301, 309},
	}
	GoodsServices = &Category{
		Key:     "goods_services",
		Label:   "Goods and services",
		Color:   "#FCD34D",
		natures: &Range{310, 319},
	}
	InterestCharges = &Category{
		Key:     "interests",
		Label:   "Interests",
		Color:   "#FBBF24",
		natures: &Range{320, 329},
	}
	AidsSubsidies = &Category{
		Key:          "aids",
		Label:        "Aids and subsidies",
		Color:        "#F59E0B",
		natures:      &Range{360, 369},
		excludeCodes: mustCodes(aisgeCodesWithNature(366)...),
	}
)

// The three charge hubs, in flow-graph order.
var (
	CantonHub = &Hub{
		Key:        "canton",
		Label:      "Canton",
		Color:      "#15803D",
		LinkColor:  "#4ADE80",
		Categories: []*Category{SocialSecurity, Equalization, Police},
	}
	IntercommunalHub = &Hub{
		Key:        "intercommunities",
		Label:      "Intercommunalities",
		Color:      "#6D28D9",
		LinkColor:  "#C4B5FD",
		Categories: []*Category{AISGE, APEC, RegionalTransports, Associations, OtherIntercommunal},
	}
	CommuneHub = &Hub{
		Key:        "commune",
		Label:      "Commune",
		Color:      "#D97706",
		LinkColor:  "#FCD34D",
		Categories: []*Category{Wages, GoodsServices, InterestCharges, AidsSubsidies},
	}
)

// ChargeHubs is the charge axis in evaluation order: explicit canton codes
// first, then the intercommunal member lists and range, then the commune
// nature ranges.
var ChargeHubs = []*Hub{CantonHub, IntercommunalHub, CommuneHub}

// ClassifyRevenue returns the revenue-axis category for the account, or nil
// when its nature falls outside every revenue bucket.
func ClassifyRevenue(a model.Account) *Category {
	for _, c := range RevenueCategories {
		if c.Matches(a) {
			return c
		}
	}
	return nil
}

// ClassifyCharge returns the charge-axis category for the account, or nil
// when it is unclassified. Unclassified accounts are excluded from flow
// totals but still count toward hierarchy totals.
func ClassifyCharge(a model.Account) *Category {
	for _, h := range ChargeHubs {
		for _, c := range h.Categories {
			if c.Matches(a) {
				return c
			}
		}
	}
	return nil
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
