package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Day is a slot in the fixed Monday-first week
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of slots in a Week
const DaysPerWeek = 7

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Days returns every day in Monday→Sunday order
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// String returns the English day name
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Valid reports whether d is one of the seven week slots
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay accepts a full day name or its three-letter prefix, case-insensitive
func ParseDay(s string) (Day, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for i, full := range dayNames {
			lower := strings.ToLower(full)
			if name == lower || name == lower[:3] {
				return Day(i), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day: %q", s)
}

// HouseholdConfig describes the dwelling being estimated
type HouseholdConfig struct {
	Rooms       int             `json:"rooms" yaml:"rooms"` // BHK count
	RatePerUnit decimal.Decimal `json:"rate" yaml:"rate"`   // Currency per kWh
}

// Appliance is a catalog entry with a fixed per-use-day increment
type Appliance struct {
	Key       string          `json:"key"`  // e.g. "ac", "washing_machine"
	Name      string          `json:"name"` // e.g. "Washing Machine"
	Increment decimal.Decimal `json:"increment"`
}

// Catalog is an ordered, read-only set of appliances
type Catalog struct {
	Name        string
	appliances  []Appliance
	maxQuantity int
}

// NewCatalog builds a catalog; the appliance slice is copied
func NewCatalog(name string, appliances ...Appliance) Catalog {
	list := make([]Appliance, len(appliances))
	copy(list, appliances)
	return Catalog{Name: name, appliances: list}
}

// WithMaxQuantity returns a copy of c that allows at most n units of an
// appliance per day. Flag catalogs use 1 so usage stays used/not used.
func (c Catalog) WithMaxQuantity(n int) Catalog {
	c.appliances = c.Appliances()
	c.maxQuantity = n
	return c
}

// MaxQuantity is the per-day ceiling for any appliance; 0 means no ceiling
func (c Catalog) MaxQuantity() int {
	return c.maxQuantity
}

// Appliances returns a copy of the catalog entries in display order
func (c Catalog) Appliances() []Appliance {
	list := make([]Appliance, len(c.appliances))
	copy(list, c.appliances)
	return list
}

// Lookup finds an appliance by key
func (c Catalog) Lookup(key string) (Appliance, bool) {
	for _, a := range c.appliances {
		if a.Key == key {
			return a, true
		}
	}
	return Appliance{}, false
}

// Keys returns the appliance keys in display order
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c.appliances))
	for _, a := range c.appliances {
		keys = append(keys, a.Key)
	}
	return keys
}

// DailyUsage maps appliance key to quantity used that day.
// Flag-style usage stores 0 or 1; missing keys mean zero.
type DailyUsage map[string]int

// Clone returns an independent copy
func (u DailyUsage) Clone() DailyUsage {
	out := make(DailyUsage, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Week holds one DailyUsage per day slot
type Week [DaysPerWeek]DailyUsage

// With returns a copy of w with usage replaced for day d
func (w Week) With(d Day, usage DailyUsage) Week {
	out := w.Clone()
	out[d] = usage.Clone()
	return out
}

// Clone returns a deep copy of the week
func (w Week) Clone() Week {
	var out Week
	for i, u := range w {
		if u != nil {
			out[i] = u.Clone()
		}
	}
	return out
}

// Quantity returns the usage of key on day d, zero if unset
func (w Week) Quantity(d Day, key string) int {
	if !d.Valid() || w[d] == nil {
		return 0
	}
	return w[d][key]
}

// DaysUsed counts the days on which key has a positive quantity
func (w Week) DaysUsed(key string) int {
	n := 0
	for _, u := range w {
		if u[key] > 0 {
			n++
		}
	}
	return n
}

// TotalQuantity sums the quantity of key across the week
func (w Week) TotalQuantity(key string) int {
	n := 0
	for _, u := range w {
		n += u[key]
	}
	return n
}
