package payroll

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpgen-dev/adpgen/internal/adp"
	"github.com/adpgen-dev/adpgen/internal/model"
	"github.com/adpgen-dev/adpgen/internal/timesheet"
	"github.com/adpgen-dev/adpgen/internal/tips"
)

func sampleInput() RunInput {
	return RunInput{
		Shifts: []timesheet.ShiftRecord{
			{
				EmployeeNumber: "123",
				FirstName:      "Jane",
				LastName:       "Doe",
				RegularHours:   dec("20"),
				SpreadCredits:  dec("2"),
			},
			{
				EmployeeNumber: "123",
				FirstName:      "Jane",
				LastName:       "Doe",
				RegularHours:   dec("17.5"),
			},
			{
				FirstName:     "Bob",
				LastName:      "Ray",
				RegularHours:  dec("12"),
				OvertimeHours: dec("1.5"),
			},
		},
		Tips: &tips.Table{
			Headers: []string{"Name", "Total Tips"},
			Rows: [][]string{
				{"Doe, Jane", "$45.00"},
				{"Stranger, Total", "$10.00"},
			},
		},
		NameCol:   0,
		AmountCol: 1,
		Config:    testConfig(),
	}
}

func TestProcessEndToEnd(t *testing.T) {
	out := Process(sampleInput())

	// Jane's two shifts fold into one accumulator.
	assert.Equal(t, 2, out.Employees.Len())
	jane := out.Employees.Get("123")
	require.NotNil(t, jane)
	assert.True(t, jane.RegularHours.Equal(dec("37.5")))

	var codes []string
	for _, row := range out.Rows {
		codes = append(codes, row.Code)
	}
	assert.Equal(t, []string{
		model.CodeRegular, model.CodeTipCredit, model.CodeSpread, // Jane
		model.CodeRegular, model.CodeOvertime, // Bob
	}, codes)

	assert.Equal(t, "37.5", out.Rows[0].Hours)
	assert.Equal(t, "45", out.Rows[1].Dollars)
	assert.Equal(t, "34", out.Rows[2].Dollars)

	// Ledger total counts every included row, matched or not.
	assert.True(t, out.TipsTotal.Equal(dec("55")))
	assert.True(t, out.Stats.TipDollars.Equal(dec("45")))
	assert.True(t, out.Stats.SpreadDollars.Equal(dec("34")))
	assert.True(t, out.Stats.RegularHours.Equal(dec("49.5")))
	assert.Equal(t, 2, out.Stats.Employees)

	// "Stranger, Total" matched nobody; Bob has no employee number.
	require.Len(t, out.Validation.Warnings, 2)
	assert.Contains(t, out.Validation.Warnings[0].Detail, "Bob Ray")
	assert.Contains(t, out.Validation.Warnings[1].Detail, "stranger, total")
}

func TestProcessWithoutTips(t *testing.T) {
	in := sampleInput()
	in.Tips = nil

	out := Process(in)
	for _, row := range out.Rows {
		assert.NotEqual(t, model.CodeTipCredit, row.Code)
	}
	assert.True(t, out.TipsTotal.IsZero())
	for _, info := range out.Validation.Infos {
		assert.NotContains(t, info, "CREDTIPP")
	}
}

func TestProcessIdempotent(t *testing.T) {
	encode := func() []byte {
		out := Process(sampleInput())
		var buf bytes.Buffer
		require.NoError(t, adp.Encode(&buf, out.Rows))
		return buf.Bytes()
	}

	first := encode()
	second := encode()
	assert.Equal(t, first, second, "identical inputs must produce byte-identical output")
}
