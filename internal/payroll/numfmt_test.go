package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", ""},
		{"5.00", "5"},
		{"5.5", "5.5"},
		{"5.567", "5.57"},
		{"37.5", "37.5"},
		{"0.004", ""}, // rounds to 0.00
		{"1234.10", "1234.1"},
		{"34", "34"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(dec(tc.in)), "FormatAmount(%s)", tc.in)
	}
}
