package main

import (
	"github.com/jgoulah/energycalc/internal/flavor"
	"github.com/spf13/cobra"
)

var estimateFlags householdFlags

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate weekly energy consumption and cost",
	Long: `Computes per-day energy totals for a week of appliance usage, then prints
weekly statistics, cost projections, a base/appliance breakdown and tips.

Usage comes from --usage (a YAML file) and/or repeated --use specs, e.g.
  energycalc estimate --use all=fridge --use mon=ac,wm`,
	RunE: runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd, &estimateFlags)
	if err != nil {
		return err
	}

	report, err := in.estimate()
	if err != nil {
		return err
	}

	r := newRenderer(cmd, in.cfg)
	if err := r.Report(in.household, in.formula, in.catalog, in.week, report); err != nil {
		return err
	}

	r.Title("Energy Saving Tip")
	r.Line(flavor.Choose(selector, flavor.Tips))
	r.Note(flavor.Choose(selector, flavor.Motivation))
	return nil
}
