package main

import (
	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/spf13/cobra"
)

var (
	ratesFlags householdFlags
	ratesList  []float64
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Compare weekly, monthly and annual cost across rates",
	RunE:  runRates,
}

func init() {
	ratesFlags.register(ratesCmd)
	ratesCmd.Flags().Float64SliceVar(&ratesList, "rates", nil, "rates to compare (default from config, or 3..8)")
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd, &ratesFlags)
	if err != nil {
		return err
	}

	report, err := in.estimate()
	if err != nil {
		return err
	}

	rates, err := in.cfg.GetCompareRates()
	if cmd.Flags().Changed("rates") {
		rates, err = config.RatesFromFloats(ratesList)
	}
	if err != nil {
		return err
	}

	projections, err := engine.CompareRates(report.Sum, rates)
	if err != nil {
		return err
	}

	r := newRenderer(cmd, in.cfg)
	r.Note("Weekly consumption: " + report.Sum.StringFixed(1) + " kWh")
	r.Rates(projections)
	return nil
}
