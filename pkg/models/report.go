package models

import "github.com/shopspring/decimal"

// DayTotal is the energy estimate for one day
type DayTotal struct {
	Day        Day             `json:"day"`
	Base       decimal.Decimal `json:"base_kwh"`
	Appliances decimal.Decimal `json:"appliance_kwh"`
	Total      decimal.Decimal `json:"total_kwh"`
}

// CostProjection prices a weekly energy sum at a single rate
type CostProjection struct {
	Rate    decimal.Decimal `json:"rate"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"` // Weekly × 4.33
	Annual  decimal.Decimal `json:"annual"`  // Weekly × 52
}

// Breakdown splits weekly energy into base load and appliance load
type Breakdown struct {
	Base           decimal.Decimal `json:"base_kwh"`
	Appliances     decimal.Decimal `json:"appliance_kwh"`
	BaseShare      decimal.Decimal `json:"base_pct"`
	ApplianceShare decimal.Decimal `json:"appliance_pct"`
}

// WeeklyReport is derived from a set of day totals and never stored
type WeeklyReport struct {
	Days      []DayTotal      `json:"days"`
	Sum       decimal.Decimal `json:"sum_kwh"`
	Average   decimal.Decimal `json:"average_kwh"`
	Max       DayTotal        `json:"max"`
	Min       DayTotal        `json:"min"`
	Cost      CostProjection  `json:"cost"`
	Breakdown Breakdown       `json:"breakdown"`
}

// DayCost returns the cost of a single day at the report's rate
func (r WeeklyReport) DayCost(t DayTotal) decimal.Decimal {
	return t.Total.Mul(r.Cost.Rate)
}

// AverageCost returns the mean daily cost at the report's rate
func (r WeeklyReport) AverageCost() decimal.Decimal {
	return r.Average.Mul(r.Cost.Rate)
}
