package main

import (
	"fmt"

	"github.com/jgoulah/energycalc/internal/database"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [snapshot.db]",
	Short: "List the contents of an exported snapshot",
	Long:  `Displays the summary and day totals stored in a SQLite snapshot written by 'energycalc export --format sqlite'.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := database.Open(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := db.ListSnapshots()
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(snapshots) == 0 {
		fmt.Fprintf(out, "No snapshots found in %s\n", args[0])
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(out, "\nSnapshot %s (%s)\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(out, "%d BHK, rate %s, formula %s, catalog %s\n", s.Rooms, s.Rate, s.Formula, s.Catalog)
		fmt.Fprintln(out, "----------------------------------------")
		fmt.Fprintf(out, "%-12s  %10s\n", "Day", "kWh")
		fmt.Fprintln(out, "----------------------------------------")

		days, err := db.ListDays(s.ID)
		if err != nil {
			return fmt.Errorf("listing days for %s: %w", s.ID, err)
		}
		for _, d := range days {
			fmt.Fprintf(out, "%-12s  %10s\n", d.Day, d.Total.StringFixed(2))
		}

		fmt.Fprintln(out, "----------------------------------------")
		fmt.Fprintf(out, "Total: %s kWh, average %s kWh (%d days)\n", s.Sum.StringFixed(2), s.Average.StringFixed(2), len(days))
		fmt.Fprintf(out, "Highest: %s, lowest: %s\n", s.MaxDay, s.MinDay)
		fmt.Fprintf(out, "Cost: %s weekly, %s monthly, %s annual\n",
			s.Cost.Weekly.StringFixed(2), s.Cost.Monthly.StringFixed(2), s.Cost.Annual.StringFixed(2))
	}

	return nil
}
