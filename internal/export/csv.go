package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/energycalc/pkg/models"
)

// SummaryLabel names the trailing row of the CSV export
const SummaryLabel = "TOTAL/AVERAGE"

// Options controls CSV formatting
type Options struct {
	// Flags writes appliance columns as true/false instead of counts
	Flags bool
}

// DefaultFileName returns the conventional export name for the given date
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("electricity_consumption_report_%s.csv", now.Format("20060102"))
}

// Header returns the CSV column names for a catalog
func Header(catalog models.Catalog) []string {
	header := []string{"Day", "Consumption_kWh", "Cost"}
	for _, a := range catalog.Appliances() {
		header = append(header, columnName(a.Name))
	}
	return header
}

func columnName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_") + "_Used"
}

// WriteCSV writes one row per day followed by a summary row carrying the
// weekly energy, weekly cost and the per-appliance totals
func WriteCSV(w io.Writer, report models.WeeklyReport, week models.Week, catalog models.Catalog, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(catalog)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	appliances := catalog.Appliances()
	for _, d := range report.Days {
		row := []string{
			d.Day.String(),
			d.Total.StringFixed(2),
			report.DayCost(d).StringFixed(2),
		}
		for _, a := range appliances {
			qty := week.Quantity(d.Day, a.Key)
			if opts.Flags {
				row = append(row, strconv.FormatBool(qty > 0))
			} else {
				row = append(row, strconv.Itoa(qty))
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s row: %w", d.Day, err)
		}
	}

	summary := []string{SummaryLabel, report.Sum.StringFixed(2), report.Cost.Weekly.StringFixed(2)}
	for _, a := range appliances {
		if opts.Flags {
			summary = append(summary, strconv.Itoa(week.DaysUsed(a.Key)))
		} else {
			summary = append(summary, strconv.Itoa(week.TotalQuantity(a.Key)))
		}
	}
	if err := cw.Write(summary); err != nil {
		return fmt.Errorf("writing summary row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
