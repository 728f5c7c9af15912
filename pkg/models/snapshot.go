package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a one-shot export of a computed report and the usage behind it
type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Household HouseholdConfig `json:"household"`
	Formula   string          `json:"formula"`
	Catalog   Catalog         `json:"-"`
	Week      Week            `json:"week"`
	Report    WeeklyReport    `json:"report"`
}

// NewSnapshot stamps a report with a fresh id and the current time
func NewSnapshot(h HouseholdConfig, formula string, catalog Catalog, week Week, report WeeklyReport) *Snapshot {
	return &Snapshot{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Household: h,
		Formula:   formula,
		Catalog:   catalog,
		Week:      week.Clone(),
		Report:    report,
	}
}
