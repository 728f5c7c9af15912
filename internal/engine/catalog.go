package engine

import (
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
)

// Appliance keys shared by the built-in catalogs
const (
	ApplianceAC             = "ac"
	ApplianceFridge         = "fridge"
	ApplianceWashingMachine = "washing_machine"
)

// Catalog names
const (
	CatalogFlag  = "flag"
	CatalogCount = "count"
)

// DefaultCatalog is used when no catalog is configured
const DefaultCatalog = CatalogFlag

// FlagCatalog charges 3 kWh for each appliance used on a day.
// Usage is a flag, so a quantity above 1 is rejected.
func FlagCatalog() models.Catalog {
	return models.NewCatalog(CatalogFlag,
		models.Appliance{Key: ApplianceAC, Name: "AC", Increment: decimal.NewFromInt(3)},
		models.Appliance{Key: ApplianceFridge, Name: "Fridge", Increment: decimal.NewFromInt(3)},
		models.Appliance{Key: ApplianceWashingMachine, Name: "Washing Machine", Increment: decimal.NewFromInt(3)},
	).WithMaxQuantity(1)
}

// CountCatalog charges per unit owned: 3 per AC, 4 per fridge, 3 per washer
func CountCatalog() models.Catalog {
	return models.NewCatalog(CatalogCount,
		models.Appliance{Key: ApplianceAC, Name: "AC", Increment: decimal.NewFromInt(3)},
		models.Appliance{Key: ApplianceFridge, Name: "Fridge", Increment: decimal.NewFromInt(4)},
		models.Appliance{Key: ApplianceWashingMachine, Name: "Washing Machine", Increment: decimal.NewFromInt(3)},
	)
}

// CatalogByName returns a built-in catalog
func CatalogByName(name string) (models.Catalog, error) {
	switch name {
	case CatalogFlag:
		return FlagCatalog(), nil
	case CatalogCount:
		return CountCatalog(), nil
	default:
		return models.Catalog{}, invalid("catalog", name, "unknown catalog (available: %s, %s)", CatalogFlag, CatalogCount)
	}
}
