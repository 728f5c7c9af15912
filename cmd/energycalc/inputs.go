package main

import (
	"fmt"
	"math"

	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/internal/usage"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/spf13/cobra"
)

// householdFlags are the input overrides shared by the report commands
type householdFlags struct {
	rooms     int
	rate      float64
	formula   string
	catalog   string
	usageFile string
	use       []string
}

func (f *householdFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rooms, "rooms", 0, "number of rooms (BHK), overrides config")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "electricity rate per kWh, overrides config")
	cmd.Flags().StringVar(&f.formula, "formula", "", "base load formula (standard, compact, tiered)")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "appliance catalog (flag, count)")
	cmd.Flags().StringVar(&f.usageFile, "usage", "", "weekly usage YAML file")
	cmd.Flags().StringArrayVar(&f.use, "use", nil, "usage entry day=appliance[:qty],... (repeatable, 'all' for every day)")
}

// apply copies the flags the user actually set onto cfg. Zero means "unset"
// in the config, so explicit out-of-range values are rejected here.
func (f *householdFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rooms") {
		if f.rooms < engine.MinRooms {
			return &engine.InputError{Field: "rooms", Value: f.rooms, Reason: fmt.Sprintf("must be at least %d", engine.MinRooms)}
		}
		cfg.Rooms = f.rooms
	}
	if flags.Changed("rate") {
		if math.IsNaN(f.rate) || math.IsInf(f.rate, 0) || f.rate <= 0 {
			return &engine.InputError{Field: "rate", Value: f.rate, Reason: "must be a finite number greater than zero"}
		}
		cfg.Rate = f.rate
	}
	if flags.Changed("formula") {
		cfg.Formula = f.formula
	}
	if flags.Changed("catalog") {
		cfg.Catalog = f.catalog
	}
	if flags.Changed("usage") {
		cfg.UsageFile = f.usageFile
	}
	return nil
}

// inputs is everything a report needs, resolved from config, env and flags
type inputs struct {
	cfg       *config.Config
	household models.HouseholdConfig
	formula   engine.Formula
	catalog   models.Catalog
	week      models.Week
}

func resolveInputs(cmd *cobra.Command, f *householdFlags) (*inputs, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := f.apply(cmd, cfg); err != nil {
		return nil, err
	}

	formula, err := cfg.GetFormula()
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.GetCatalog()
	if err != nil {
		return nil, err
	}

	var week models.Week
	if cfg.UsageFile != "" {
		week, err = usage.Load(cfg.UsageFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("usage file loaded", "path", cfg.UsageFile)
	}
	week, err = usage.ApplySpecs(week, f.use)
	if err != nil {
		return nil, err
	}

	household, err := cfg.Household()
	if err != nil {
		return nil, err
	}
	if err := engine.ValidateHousehold(household); err != nil {
		return nil, err
	}

	logger.Debug("inputs resolved",
		"rooms", household.Rooms,
		"rate", household.RatePerUnit.String(),
		"formula", formula.Name(),
		"catalog", catalog.Name,
	)

	return &inputs{
		cfg:       cfg,
		household: household,
		formula:   formula,
		catalog:   catalog,
		week:      week,
	}, nil
}

// estimate computes the weekly report for the resolved inputs
func (in *inputs) estimate() (models.WeeklyReport, error) {
	report, err := engine.Estimate(in.household, in.formula, in.catalog, in.week)
	if err != nil {
		return models.WeeklyReport{}, fmt.Errorf("computing report: %w", err)
	}
	return report, nil
}
