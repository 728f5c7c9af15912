package main

import (
	"fmt"

	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/internal/flavor"
	"github.com/jgoulah/energycalc/internal/usage"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/spf13/cobra"
)

var dayFlags householdFlags

var dayCmd = &cobra.Command{
	Use:   "day [appliance[:qty]...]",
	Short: "Estimate a single day's consumption",
	Long: `Computes one day's energy from the base load and the listed appliances.
Quantities default to 1, e.g.
  energycalc day --catalog count --formula tiered ac:2 fridge`,
	RunE: runDay,
}

func init() {
	dayFlags.register(dayCmd)
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd, &dayFlags)
	if err != nil {
		return err
	}

	daily, err := usage.ParseDaily(args)
	if err != nil {
		return err
	}

	base, err := engine.ComputeBaseLoad(in.formula, in.household.Rooms)
	if err != nil {
		return err
	}
	total, err := engine.ComputeDay(models.Monday, base, daily, in.catalog)
	if err != nil {
		return fmt.Errorf("computing day: %w", err)
	}

	r := newRenderer(cmd, in.cfg)
	r.Line(flavor.Choose(selector, flavor.Success))
	r.Day(total, daily, in.catalog, in.household.RatePerUnit)
	r.Note(flavor.Choose(selector, flavor.Facts))
	return nil
}
