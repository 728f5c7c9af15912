package engine

import (
	"testing"

	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayTotals(values ...string) []models.DayTotal {
	totals := make([]models.DayTotal, 0, len(values))
	for i, v := range values {
		totals = append(totals, models.DayTotal{Day: models.Day(i), Base: dec(v), Total: dec(v)})
	}
	return totals
}

func TestWeeklySumMatchesDailyTotals(t *testing.T) {
	base := dec("3.6")
	week := models.Week{}.
		With(models.Monday, models.DailyUsage{ApplianceAC: 1}).
		With(models.Wednesday, models.DailyUsage{ApplianceFridge: 2, ApplianceWashingMachine: 1}).
		With(models.Sunday, models.DailyUsage{ApplianceAC: 3})

	want := dec("0")
	for _, d := range models.Days() {
		total, err := ComputeDailyTotal(base, week[d], CountCatalog())
		require.NoError(t, err)
		want = want.Add(total)
	}

	totals, err := ComputeWeek(base, week, CountCatalog())
	require.NoError(t, err)
	report, err := ComputeWeeklyReport(totals, dec("5"))
	require.NoError(t, err)

	assert.True(t, want.Equal(report.Sum), "want %s got %s", want, report.Sum)
	assertDecimal(t, "48.2", report.Sum)
}

func TestAverageIsSumOverSeven(t *testing.T) {
	report, err := ComputeWeeklyReport(dayTotals("10", "20", "30", "40", "50", "60", "70"), dec("1"))
	require.NoError(t, err)
	assertDecimal(t, "280", report.Sum)
	assertDecimal(t, "40", report.Average)

	report, err = ComputeWeeklyReport(dayTotals("1", "1", "1", "1", "1", "1", "4"), dec("1"))
	require.NoError(t, err)
	assert.True(t, report.Average.Equal(report.Sum.Div(dec("7"))))
}

func TestPartialWeekAverage(t *testing.T) {
	report, err := ComputeWeeklyReport(dayTotals("30", "36", "42"), dec("1"))
	require.NoError(t, err)
	assertDecimal(t, "108", report.Sum)
	assertDecimal(t, "36", report.Average)
}

func TestWeeklyReportRejects(t *testing.T) {
	eight := append(dayTotals("1", "1", "1", "1", "1", "1", "1"), models.DayTotal{Day: models.Monday})
	duplicate := []models.DayTotal{{Day: models.Monday}, {Day: models.Monday}}
	badDay := []models.DayTotal{{Day: models.Day(9)}}
	negative := []models.DayTotal{{Day: models.Friday, Total: dec("-2")}}

	tests := []struct {
		name   string
		totals []models.DayTotal
		rate   string
	}{
		{"no days", nil, "6"},
		{"eight days", eight, "6"},
		{"duplicate day", duplicate, "6"},
		{"invalid day", badDay, "6"},
		{"negative total", negative, "6"},
		{"zero rate", dayTotals("1"), "0"},
		{"negative rate", dayTotals("1"), "-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeWeeklyReport(tt.totals, dec(tt.rate))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMaxMinTieBreakEarliestDay(t *testing.T) {
	totals := dayTotals("36", "39", "39", "36", "36", "37", "36")

	report, err := ComputeWeeklyReport(totals, dec("6"))
	require.NoError(t, err)
	assert.Equal(t, models.Tuesday, report.Max.Day)
	assert.Equal(t, models.Monday, report.Min.Day)

	// Same totals supplied Sunday first must resolve to the same days.
	reversed := make([]models.DayTotal, len(totals))
	for i, d := range totals {
		reversed[len(totals)-1-i] = d
	}
	report, err = ComputeWeeklyReport(reversed, dec("6"))
	require.NoError(t, err)
	assert.Equal(t, models.Tuesday, report.Max.Day)
	assert.Equal(t, models.Monday, report.Min.Day)
	assert.Equal(t, models.Sunday, report.Days[0].Day)
}

func TestAllEqualResolvesToMonday(t *testing.T) {
	report, err := ComputeWeeklyReport(dayTotals("36", "36", "36", "36", "36", "36", "36"), dec("6"))
	require.NoError(t, err)
	assert.Equal(t, models.Monday, report.Max.Day)
	assert.Equal(t, models.Monday, report.Min.Day)
}

func TestProjectCostScenario(t *testing.T) {
	p, err := ProjectCost(dec("100"), dec("6.0"))
	require.NoError(t, err)
	assertDecimal(t, "600.00", p.Weekly)
	assertDecimal(t, "2598.00", p.Monthly)
	assertDecimal(t, "31200", p.Annual)
	assert.Equal(t, "2598.00", p.Monthly.StringFixed(2))
}

func TestCostLinearInRate(t *testing.T) {
	sum := dec("252")
	for _, rate := range []string{"0.5", "3", "6", "7.25"} {
		single, err := ProjectCost(sum, dec(rate))
		require.NoError(t, err)
		double, err := ProjectCost(sum, dec(rate).Mul(dec("2")))
		require.NoError(t, err)

		assert.True(t, single.Weekly.Equal(sum.Mul(dec(rate))))
		assert.True(t, double.Weekly.Equal(single.Weekly.Mul(dec("2"))))
		assert.True(t, double.Monthly.Equal(single.Monthly.Mul(dec("2"))))
	}
}

func TestProjectCostRejectsNegativeSum(t *testing.T) {
	_, err := ProjectCost(dec("-1"), dec("6"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompareRates(t *testing.T) {
	got, err := CompareRates(dec("252"), DefaultComparisonRates())
	require.NoError(t, err)
	require.Len(t, got, 6)

	assertDecimal(t, "3", got[0].Rate)
	assertDecimal(t, "756", got[0].Weekly)
	assertDecimal(t, "8", got[5].Rate)
	assertDecimal(t, "2016", got[5].Weekly)
	assertDecimal(t, "8729.28", got[5].Monthly)

	_, err = CompareRates(dec("252"), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CompareRates(dec("252"), []decimal.Decimal{dec("3"), dec("0")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeBreakdown(t *testing.T) {
	totals, err := ComputeWeek(dec("36"), models.Week{}.With(models.Monday, models.DailyUsage{ApplianceAC: 1}), FlagCatalog())
	require.NoError(t, err)

	b := ComputeBreakdown(totals)
	assertDecimal(t, "252", b.Base)
	assertDecimal(t, "3", b.Appliances)
	assertDecimal(t, "98.8", b.BaseShare)
	assertDecimal(t, "1.2", b.ApplianceShare)
}

func TestComputeBreakdownZeroTotal(t *testing.T) {
	b := ComputeBreakdown(dayTotals("0", "0"))
	assert.True(t, b.BaseShare.IsZero())
	assert.True(t, b.ApplianceShare.IsZero())
}

func TestClassifyDay(t *testing.T) {
	avg := dec("20")
	tests := []struct {
		total string
		want  DayClass
	}{
		{"21", DayAbove},
		{"20", DayTypical},
		{"16", DayTypical},
		{"15.9", DayLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyDay(dec(tt.total), avg), tt.total)
	}
}

func TestReportDayCost(t *testing.T) {
	report, err := ComputeWeeklyReport(dayTotals("36", "39"), dec("6"))
	require.NoError(t, err)
	assertDecimal(t, "234", report.DayCost(report.Days[1]))
	assertDecimal(t, "225", report.AverageCost())
}
