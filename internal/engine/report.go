package engine

import (
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	// WeeksPerMonth is the calendar-average used for monthly extrapolation
	WeeksPerMonth = decimal.RequireFromString("4.33")
	// WeeksPerYear is used for annual extrapolation
	WeeksPerYear = decimal.NewFromInt(52)

	hundred = decimal.NewFromInt(100)
)

// DefaultComparisonRates are the rates shown when none are configured
func DefaultComparisonRates() []decimal.Decimal {
	rates := make([]decimal.Decimal, 0, 6)
	for r := int64(3); r <= 8; r++ {
		rates = append(rates, decimal.NewFromInt(r))
	}
	return rates
}

// ComputeWeeklyReport aggregates day totals. Partial weeks are allowed:
// the average divides by the number of supplied days. Ties for max and min
// go to the earliest day in Monday→Sunday order regardless of slice order.
func ComputeWeeklyReport(totals []models.DayTotal, rate decimal.Decimal) (models.WeeklyReport, error) {
	if len(totals) == 0 {
		return models.WeeklyReport{}, invalid("days", 0, "at least one day is required")
	}
	if len(totals) > models.DaysPerWeek {
		return models.WeeklyReport{}, invalid("days", len(totals), "a week has %d days", models.DaysPerWeek)
	}

	var seen [models.DaysPerWeek]bool
	for _, t := range totals {
		if !t.Day.Valid() {
			return models.WeeklyReport{}, invalid("day", int(t.Day), "must be Monday..Sunday")
		}
		if seen[t.Day] {
			return models.WeeklyReport{}, invalid("day", t.Day, "supplied more than once")
		}
		seen[t.Day] = true
		if t.Total.IsNegative() {
			return models.WeeklyReport{}, invalid(t.Day.String()+" total", t.Total, "must be non-negative")
		}
	}

	days := make([]models.DayTotal, len(totals))
	copy(days, totals)

	sum := Sum(days)
	cost, err := ProjectCost(sum, rate)
	if err != nil {
		return models.WeeklyReport{}, err
	}

	maxDay, minDay := days[0], days[0]
	for _, t := range days[1:] {
		if t.Total.GreaterThan(maxDay.Total) || (t.Total.Equal(maxDay.Total) && t.Day < maxDay.Day) {
			maxDay = t
		}
		if t.Total.LessThan(minDay.Total) || (t.Total.Equal(minDay.Total) && t.Day < minDay.Day) {
			minDay = t
		}
	}

	return models.WeeklyReport{
		Days:      days,
		Sum:       sum,
		Average:   sum.Div(decimal.NewFromInt(int64(len(days)))),
		Max:       maxDay,
		Min:       minDay,
		Cost:      cost,
		Breakdown: ComputeBreakdown(days),
	}, nil
}

// Sum adds the totals of the given days
func Sum(totals []models.DayTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	return sum
}

// ProjectCost prices a weekly sum and extrapolates it to a month and a year
func ProjectCost(weeklySum, rate decimal.Decimal) (models.CostProjection, error) {
	if err := validateRate(rate); err != nil {
		return models.CostProjection{}, err
	}
	if weeklySum.IsNegative() {
		return models.CostProjection{}, invalid("weekly sum", weeklySum, "must be non-negative")
	}
	weekly := weeklySum.Mul(rate)
	return models.CostProjection{
		Rate:    rate,
		Weekly:  weekly,
		Monthly: weekly.Mul(WeeksPerMonth),
		Annual:  weekly.Mul(WeeksPerYear),
	}, nil
}

// CompareRates projects the same weekly sum at each rate, in the order given
func CompareRates(weeklySum decimal.Decimal, rates []decimal.Decimal) ([]models.CostProjection, error) {
	if len(rates) == 0 {
		return nil, invalid("rates", 0, "at least one rate is required")
	}
	out := make([]models.CostProjection, 0, len(rates))
	for _, rate := range rates {
		p, err := ProjectCost(weeklySum, rate)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ComputeBreakdown splits the energy of the given days into base and
// appliance load. Shares are percentages rounded to one decimal place and
// are zero when the total is zero.
func ComputeBreakdown(totals []models.DayTotal) models.Breakdown {
	var b models.Breakdown
	for _, t := range totals {
		b.Base = b.Base.Add(t.Base)
		b.Appliances = b.Appliances.Add(t.Appliances)
	}
	total := b.Base.Add(b.Appliances)
	if total.IsZero() {
		return b
	}
	b.BaseShare = b.Base.Div(total).Mul(hundred).Round(1)
	b.ApplianceShare = b.Appliances.Div(total).Mul(hundred).Round(1)
	return b
}

// DayClass labels a day relative to the weekly average
type DayClass string

const (
	DayAbove   DayClass = "above"
	DayTypical DayClass = "typical"
	DayLow     DayClass = "low"
)

var lowFraction = decimal.RequireFromString("0.8")

// ClassifyDay returns DayAbove when total exceeds average, DayLow when it is
// under 80% of average, DayTypical otherwise
func ClassifyDay(total, average decimal.Decimal) DayClass {
	switch {
	case total.GreaterThan(average):
		return DayAbove
	case total.LessThan(average.Mul(lowFraction)):
		return DayLow
	default:
		return DayTypical
	}
}
