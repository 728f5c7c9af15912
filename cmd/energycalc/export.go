package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jgoulah/energycalc/internal/database"
	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/internal/export"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/spf13/cobra"
)

const (
	formatCSV    = "csv"
	formatSQLite = "sqlite"
)

var (
	exportFlags  householdFlags
	exportFormat string
	exportOut    string
	exportForce  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weekly report to CSV or a SQLite snapshot",
	Long: `Writes the weekly report and the raw usage table to a file.

csv:    one row per day plus a TOTAL/AVERAGE row (default name
        electricity_consumption_report_YYYYMMDD.csv, "-" for stdout)
sqlite: a one-shot snapshot database with the summary, day totals and usage`,
	RunE: runExport,
}

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", formatCSV, "export format (csv or sqlite)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "overwrite an existing output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd, &exportFlags)
	if err != nil {
		return err
	}

	report, err := in.estimate()
	if err != nil {
		return err
	}

	switch exportFormat {
	case formatCSV:
		return exportCSV(cmd, in, report)
	case formatSQLite:
		return exportSQLite(cmd, in, report)
	default:
		return fmt.Errorf("unknown export format: %s (available: %s, %s)", exportFormat, formatCSV, formatSQLite)
	}
}

func exportCSV(cmd *cobra.Command, in *inputs, report models.WeeklyReport) error {
	opts := export.Options{Flags: in.catalog.Name == engine.CatalogFlag}

	if exportOut == "-" {
		return export.WriteCSV(cmd.OutOrStdout(), report, in.week, in.catalog, opts)
	}

	path := exportOut
	if path == "" {
		path = export.DefaultFileName(time.Now())
	}
	if _, err := os.Stat(path); err == nil && !exportForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, report, in.week, in.catalog, opts); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	logger.Info("csv export written", "path", path, "days", len(report.Days))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Report written to %s\n", path)
	return nil
}

func exportSQLite(cmd *cobra.Command, in *inputs, report models.WeeklyReport) error {
	path := exportOut
	if path == "" || path == "-" {
		return fmt.Errorf("--out is required for the %s format", formatSQLite)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	db, err := database.Create(path, exportForce)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer db.Close()

	snap := models.NewSnapshot(in.household, in.formula.Name(), in.catalog, in.week, report)
	if err := db.WriteSnapshot(snap); err != nil {
		return err
	}

	logger.Info("snapshot written", "path", path, "id", snap.ID.String())
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Snapshot %s written to %s\n", snap.ID, path)
	return nil
}
