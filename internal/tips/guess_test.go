package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessNameColumn(t *testing.T) {
	cases := []struct {
		headers []string
		want    int
	}{
		{[]string{"Date", "Name", "Tips"}, 1},
		{[]string{"Date", "Employee Name", "Tips"}, 1},
		{[]string{"Date", "Full name of employee", "Tips"}, 1},
		{[]string{"A", "B", "C"}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GuessNameColumn(tc.headers), "headers %v", tc.headers)
	}
}

func TestGuessAmountColumn(t *testing.T) {
	cases := []struct {
		headers []string
		want    int
	}{
		{[]string{"Name", "Total Tips", "Notes"}, 1},
		{[]string{"Name", "Total", "Tip share"}, 1},
		{[]string{"Name", "Weekly tip total", "Notes"}, 1},
		{[]string{"Name", "Tips"}, 1},
		{[]string{"Name", "Tip out", "Notes"}, 1},
		{[]string{"Name", "Amount"}, 1},
		{[]string{"Name", "Dollars", "Cash"}, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GuessAmountColumn(tc.headers), "headers %v", tc.headers)
	}
}
