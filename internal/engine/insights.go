package engine

import (
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
)

// Band summarises how heavy consumption is
type Band string

const (
	BandHigh      Band = "high"
	BandModerate  Band = "moderate"
	BandEfficient Band = "efficient"
)

var (
	highFactor      = decimal.RequireFromString("1.5")
	efficientFactor = decimal.RequireFromString("1.2")

	dayHighThreshold     = decimal.NewFromInt(10)
	dayModerateThreshold = decimal.NewFromInt(5)
)

// Assess compares the daily average with the base load: above 1.5× base is
// high, below 1.2× base is efficient
func Assess(average, base decimal.Decimal) Band {
	switch {
	case average.GreaterThan(base.Mul(highFactor)):
		return BandHigh
	case average.LessThan(base.Mul(efficientFactor)):
		return BandEfficient
	default:
		return BandModerate
	}
}

// AssessDay bands a single day's total on absolute thresholds (10 and 5 kWh)
func AssessDay(total decimal.Decimal) Band {
	switch {
	case total.GreaterThan(dayHighThreshold):
		return BandHigh
	case total.GreaterThan(dayModerateThreshold):
		return BandModerate
	default:
		return BandEfficient
	}
}

// Recommendation is advice tied to an appliance's weekly usage
type Recommendation struct {
	Appliance string // empty for the general message
	DaysUsed  int
	Message   string
}

type usageRule struct {
	key     string
	trigger func(daysUsed int) bool
	message string
}

var usageRules = []usageRule{
	{
		key:     ApplianceAC,
		trigger: func(n int) bool { return n > 5 },
		message: "Use the AC more efficiently: set it to 24°C or higher, use timers and check the insulation.",
	},
	{
		key:     ApplianceFridge,
		trigger: func(n int) bool { return n == models.DaysPerWeek },
		message: "Keep the fridge organised, avoid opening it often and hold it at 37-40°F.",
	},
	{
		key:     ApplianceWashingMachine,
		trigger: func(n int) bool { return n > 4 },
		message: "Run the washing machine with full loads and cold water, and clean the filter regularly.",
	},
}

// OnTrackMessage is returned when no usage rule fires
const OnTrackMessage = "You're doing great! Keep monitoring your usage patterns."

// Recommend inspects how many days each catalog appliance was used.
// It always returns at least one recommendation.
func Recommend(week models.Week, catalog models.Catalog) []Recommendation {
	var recs []Recommendation
	for _, rule := range usageRules {
		if _, ok := catalog.Lookup(rule.key); !ok {
			continue
		}
		n := week.DaysUsed(rule.key)
		if rule.trigger(n) {
			recs = append(recs, Recommendation{Appliance: rule.key, DaysUsed: n, Message: rule.message})
		}
	}
	if len(recs) == 0 {
		recs = append(recs, Recommendation{Message: OnTrackMessage})
	}
	return recs
}

// Saving is the weekly amount that optimising one appliance could save
type Saving struct {
	Appliance string
	Energy    decimal.Decimal // kWh per week
	Amount    decimal.Decimal // currency per week
}

var savingFractions = []struct {
	key      string
	fraction decimal.Decimal
}{
	{ApplianceAC, decimal.RequireFromString("0.2")},
	{ApplianceFridge, decimal.RequireFromString("0.1")},
}

// EstimateSavings assumes 20% of AC energy and 10% of fridge energy can be
// saved. Appliances that were not used are omitted.
func EstimateSavings(week models.Week, catalog models.Catalog, rate decimal.Decimal) ([]Saving, error) {
	if err := validateRate(rate); err != nil {
		return nil, err
	}
	var out []Saving
	for _, sf := range savingFractions {
		appliance, ok := catalog.Lookup(sf.key)
		if !ok {
			continue
		}
		for _, d := range models.Days() {
			if err := validateQuantity(catalog, sf.key, week.Quantity(d, sf.key)); err != nil {
				return nil, err
			}
		}
		qty := week.TotalQuantity(sf.key)
		if qty == 0 {
			continue
		}
		energy := appliance.Increment.Mul(decimal.NewFromInt(int64(qty))).Mul(sf.fraction)
		out = append(out, Saving{Appliance: sf.key, Energy: energy, Amount: energy.Mul(rate)})
	}
	return out, nil
}
