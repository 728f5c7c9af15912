package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReport(t *testing.T, catalog models.Catalog, week models.Week) models.WeeklyReport {
	t.Helper()
	f, err := engine.Preset(engine.FormulaStandard)
	require.NoError(t, err)
	h := models.HouseholdConfig{Rooms: 2, RatePerUnit: decimal.NewFromInt(6)}
	report, err := engine.Estimate(h, f, catalog, week)
	require.NoError(t, err)
	return report
}

func TestWriteCSVFlags(t *testing.T) {
	week := models.Week{}.
		With(models.Monday, models.DailyUsage{engine.ApplianceAC: 1, engine.ApplianceFridge: 1}).
		With(models.Friday, models.DailyUsage{engine.ApplianceFridge: 1})
	report := buildReport(t, engine.FlagCatalog(), week)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report, week, engine.FlagCatalog(), Options{Flags: true}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+models.DaysPerWeek+1)

	assert.Equal(t, []string{"Day", "Consumption_kWh", "Cost", "AC_Used", "Fridge_Used", "Washing_Machine_Used"}, records[0])
	assert.Equal(t, []string{"Monday", "42.00", "252.00", "true", "true", "false"}, records[1])
	assert.Equal(t, []string{"Tuesday", "36.00", "216.00", "false", "false", "false"}, records[2])
	assert.Equal(t, []string{"Friday", "39.00", "234.00", "false", "true", "false"}, records[5])
	assert.Equal(t, []string{SummaryLabel, "261.00", "1566.00", "1", "2", "0"}, records[8])
}

func TestWriteCSVCounts(t *testing.T) {
	week := models.Week{}.With(models.Sunday, models.DailyUsage{engine.ApplianceFridge: 2, engine.ApplianceAC: 1})
	report := buildReport(t, engine.CountCatalog(), week)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report, week, engine.CountCatalog(), Options{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunday", "47.00", "282.00", "1", "2", "0"}, records[7])
	assert.Equal(t, []string{SummaryLabel, "263.00", "1578.00", "1", "2", "0"}, records[8])
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "electricity_consumption_report_20261014.csv", DefaultFileName(now))
}
