package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, "10.01", RoundCents(dec("10.005")).StringFixed(2))
	assert.Equal(t, "10.00", RoundCents(dec("10.004")).StringFixed(2))
	assert.Equal(t, "-10.01", RoundCents(dec("-10.005")).StringFixed(2))
}

func TestFloat(t *testing.T) {
	assert.InDelta(t, 1234.57, Float(dec("1234.567")), 0.0001)
	assert.Zero(t, Float(decimal.Zero))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "CHF1.20M", FormatShort(dec("1200000")))
	assert.Equal(t, "CHF850.00K", FormatShort(dec("850000")))
	assert.Equal(t, "CHF0.50K", FormatShort(dec("500")))
	assert.Equal(t, "CHF1.20M", FormatShort(dec("-1200000")))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1"+thinSpace+"234"+thinSpace+"567", Format(dec("1234567.00")))
	assert.Equal(t, "1"+thinSpace+"234.50", Format(dec("1234.5")))
	assert.Equal(t, "999", Format(dec("999")))
	assert.Equal(t, "-12"+thinSpace+"000.25", Format(dec("-12000.25")))
	assert.Equal(t, "0", Format(decimal.Zero))
}
