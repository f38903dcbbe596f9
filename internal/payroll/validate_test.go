package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpgen-dev/adpgen/internal/model"
)

func TestValidateMissingEmployeeIDs(t *testing.T) {
	set := model.NewEmployeeSet()
	set.Add("1", &model.Employee{EmployeeNumber: "1", FirstName: "Has", LastName: "Number"})
	set.Add("jane doe", &model.Employee{FirstName: "Jane", LastName: "Doe"})
	set.Add("bob ray", &model.Employee{FirstName: "Bob", LastName: "Ray"})

	rep := Validate(set, model.NewTipsMap(), model.NewTipsMap(), nil, decimal.NewFromInt(17))
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0].Text, "2 employee(s)")
	assert.Equal(t, "Jane Doe, Bob Ray", rep.Warnings[0].Detail)
	assert.Empty(t, rep.Infos)
}

func TestValidateTipsSummaryAndUnmatched(t *testing.T) {
	set := model.NewEmployeeSet()
	set.Add("1", &model.Employee{EmployeeNumber: "1", FirstName: "Jane", LastName: "Doe"})

	ledger := model.NewTipsMap()
	ledger.Add("jane doe", dec("45.5"))
	ledger.Add("total", dec("95"))

	matched := model.NewTipsMap()
	matched.Add("jane doe", dec("45.5"))

	rep := Validate(set, ledger, matched, []string{"total"}, decimal.NewFromInt(17))

	require.Len(t, rep.Infos, 1)
	assert.Equal(t, "CREDTIPP total: $45.50 across 1 recognized employee(s)", rep.Infos[0])

	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0].Text, "could not be matched")
	assert.Equal(t, "total", rep.Warnings[0].Detail)
}

func TestValidateSpreadSummary(t *testing.T) {
	set := model.NewEmployeeSet()
	set.Add("1", &model.Employee{EmployeeNumber: "1", SpreadCredits: dec("2")})
	set.Add("2", &model.Employee{EmployeeNumber: "2", SpreadCredits: dec("1.5")})
	set.Add("3", &model.Employee{EmployeeNumber: "3"})

	rep := Validate(set, model.NewTipsMap(), model.NewTipsMap(), nil, decimal.NewFromInt(17))
	require.Len(t, rep.Infos, 1)
	assert.Equal(t, "Spread hours (OTH2): 3.5 credit(s) across 2 employee(s) = $59.50", rep.Infos[0])
}

func TestValidateCleanRun(t *testing.T) {
	set := model.NewEmployeeSet()
	set.Add("1", &model.Employee{EmployeeNumber: "1", RegularHours: dec("40")})

	rep := Validate(set, model.NewTipsMap(), model.NewTipsMap(), nil, decimal.NewFromInt(17))
	assert.Empty(t, rep.Warnings)
	assert.Empty(t, rep.Infos)
}
