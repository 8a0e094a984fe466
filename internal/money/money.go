package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const thinSpace = "\u202f" // narrow no-break space

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// RoundCents rounds to two decimal places, ties away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Float converts an exact decimal amount to a float64 for charting,
// rounding to cents first. All intermediate arithmetic stays decimal;
// this is the only place amounts leave exact representation.
func Float(d decimal.Decimal) float64 {
	f, _ := RoundCents(d).Float64()
	return f
}

// FormatShort renders an absolute CHF amount with a K or M suffix,
// e.g. "CHF1.20M" or "CHF850.00K".
func FormatShort(d decimal.Decimal) string {
	v := d.Abs()
	if v.GreaterThanOrEqual(million) {
		return "CHF" + v.Div(million).Round(2).StringFixed(2) + "M"
	}
	return "CHF" + v.Div(thousand).Round(2).StringFixed(2) + "K"
}

// Format renders an amount with thin non-breaking spaces as thousand
// separators and a dot decimal separator. The fractional part is omitted
// when zero, otherwise always two digits.
func Format(d decimal.Decimal) string {
	r := RoundCents(d)
	s := r.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot+1:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, thinSpace)
	if fracPart != "00" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
