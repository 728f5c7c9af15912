package engine

import (
	"maps"
	"math"
	"slices"

	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
)

// ValidateHousehold checks the room count and rate invariants
func ValidateHousehold(h models.HouseholdConfig) error {
	if h.Rooms < MinRooms {
		return invalid("rooms", h.Rooms, "must be at least %d", MinRooms)
	}
	return validateRate(h.RatePerUnit)
}

// RateFromFloat converts a configured rate to a decimal. NaN and ±Inf have
// no decimal form and are rejected; range checks are left to the caller.
func RateFromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, invalid("rate", v, "must be a finite number")
	}
	return decimal.NewFromFloat(v), nil
}

func validateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return invalid("rate", rate, "must be greater than zero")
	}
	return nil
}

// ComputeDailyTotal adds each appliance's quantity times its increment to base.
// Keys absent from usage count as zero; keys absent from the catalog are rejected.
func ComputeDailyTotal(base decimal.Decimal, usage models.DailyUsage, catalog models.Catalog) (decimal.Decimal, error) {
	if base.IsNegative() {
		return decimal.Zero, invalid("base load", base, "must be non-negative")
	}

	total := base
	// Sorted so the first offending key is reported deterministically.
	for _, key := range slices.Sorted(maps.Keys(usage)) {
		qty := usage[key]
		appliance, ok := catalog.Lookup(key)
		if !ok {
			return decimal.Zero, invalid("appliance", key, "not in %q catalog (available: %v)", catalog.Name, catalog.Keys())
		}
		if err := validateQuantity(catalog, key, qty); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(appliance.Increment.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total, nil
}

func validateQuantity(catalog models.Catalog, key string, qty int) error {
	if qty < 0 {
		return invalid(key+" quantity", qty, "must be non-negative")
	}
	if limit := catalog.MaxQuantity(); limit > 0 && qty > limit {
		return invalid(key+" quantity", qty, "must be at most %d in the %q catalog", limit, catalog.Name)
	}
	return nil
}

// ComputeDay builds the DayTotal for one slot
func ComputeDay(day models.Day, base decimal.Decimal, usage models.DailyUsage, catalog models.Catalog) (models.DayTotal, error) {
	if !day.Valid() {
		return models.DayTotal{}, invalid("day", int(day), "must be Monday..Sunday")
	}
	total, err := ComputeDailyTotal(base, usage, catalog)
	if err != nil {
		return models.DayTotal{}, err
	}
	return models.DayTotal{
		Day:        day,
		Base:       base,
		Appliances: total.Sub(base),
		Total:      total,
	}, nil
}

// ComputeWeek returns the seven day totals in Monday→Sunday order
func ComputeWeek(base decimal.Decimal, week models.Week, catalog models.Catalog) ([]models.DayTotal, error) {
	totals := make([]models.DayTotal, 0, models.DaysPerWeek)
	for _, day := range models.Days() {
		t, err := ComputeDay(day, base, week[day], catalog)
		if err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, nil
}

// Estimate runs the full pipeline for a household and a week of usage
func Estimate(h models.HouseholdConfig, f Formula, catalog models.Catalog, week models.Week) (models.WeeklyReport, error) {
	if err := ValidateHousehold(h); err != nil {
		return models.WeeklyReport{}, err
	}
	base, err := ComputeBaseLoad(f, h.Rooms)
	if err != nil {
		return models.WeeklyReport{}, err
	}
	totals, err := ComputeWeek(base, week, catalog)
	if err != nil {
		return models.WeeklyReport{}, err
	}
	return ComputeWeeklyReport(totals, h.RatePerUnit)
}
