package engine

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// MinRooms is the smallest dwelling the formulas accept
const MinRooms = 1

// Formula maps a room count to a base load in kWh per day
type Formula interface {
	BaseLoad(rooms int) (decimal.Decimal, error)
	Name() string
}

// Linear computes (rooms+1)*CoefficientA + (rooms+1)*CoefficientB
type Linear struct {
	Label        string
	CoefficientA decimal.Decimal
	CoefficientB decimal.Decimal
}

// Name returns the preset label
func (l Linear) Name() string {
	return l.Label
}

// BaseLoad applies the two-term linear formula
func (l Linear) BaseLoad(rooms int) (decimal.Decimal, error) {
	if rooms < MinRooms {
		return decimal.Zero, invalid("rooms", rooms, "must be at least %d", MinRooms)
	}
	if l.CoefficientA.IsNegative() || l.CoefficientB.IsNegative() {
		return decimal.Zero, invalid("coefficients", fmt.Sprintf("%s/%s", l.CoefficientA, l.CoefficientB), "must be non-negative")
	}
	n := decimal.NewFromInt(int64(rooms) + 1)
	return n.Mul(l.CoefficientA).Add(n.Mul(l.CoefficientB)), nil
}

// Tiered looks the base load up in a fixed table
type Tiered struct {
	Label string
	Table map[int]decimal.Decimal
}

// Name returns the preset label
func (t Tiered) Name() string {
	return t.Label
}

// BaseLoad returns the table entry for rooms; counts without a tier are rejected
func (t Tiered) BaseLoad(rooms int) (decimal.Decimal, error) {
	if rooms < MinRooms {
		return decimal.Zero, invalid("rooms", rooms, "must be at least %d", MinRooms)
	}
	v, ok := t.Table[rooms]
	if !ok {
		return decimal.Zero, invalid("rooms", rooms, "no tier defined (supported: %v)", t.Rooms())
	}
	return v, nil
}

// Rooms returns the supported room counts in ascending order
func (t Tiered) Rooms() []int {
	rooms := make([]int, 0, len(t.Table))
	for r := range t.Table {
		rooms = append(rooms, r)
	}
	slices.Sort(rooms)
	return rooms
}

// Formula preset names
const (
	FormulaStandard = "standard"
	FormulaCompact  = "compact"
	FormulaTiered   = "tiered"
)

// DefaultFormula is used when no formula is configured
const DefaultFormula = FormulaStandard

// Presets returns the names of the built-in formulas
func Presets() []string {
	return []string{FormulaStandard, FormulaCompact, FormulaTiered}
}

// Preset returns a fresh copy of a built-in formula
func Preset(name string) (Formula, error) {
	switch name {
	case FormulaStandard:
		return Linear{
			Label:        FormulaStandard,
			CoefficientA: decimal.NewFromInt(4),
			CoefficientB: decimal.NewFromInt(8),
		}, nil
	case FormulaCompact:
		return Linear{
			Label:        FormulaCompact,
			CoefficientA: decimal.RequireFromString("0.4"),
			CoefficientB: decimal.RequireFromString("0.8"),
		}, nil
	case FormulaTiered:
		return Tiered{
			Label: FormulaTiered,
			Table: map[int]decimal.Decimal{
				1: decimal.RequireFromString("2.4"),
				2: decimal.RequireFromString("3.6"),
				3: decimal.RequireFromString("4.8"),
			},
		}, nil
	default:
		return nil, invalid("formula", name, "unknown formula (available: %v)", Presets())
	}
}

// ComputeBaseLoad returns the base load for rooms under formula f
func ComputeBaseLoad(f Formula, rooms int) (decimal.Decimal, error) {
	if f == nil {
		return decimal.Zero, invalid("formula", nil, "no formula given")
	}
	return f.BaseLoad(rooms)
}
