package database

import (
	"path/filepath"
	"testing"

	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	h := models.HouseholdConfig{Rooms: 2, RatePerUnit: decimal.RequireFromString("6.5")}
	f, err := engine.Preset(engine.FormulaCompact)
	require.NoError(t, err)
	week := models.Week{}.
		With(models.Monday, models.DailyUsage{engine.ApplianceAC: 1}).
		With(models.Thursday, models.DailyUsage{engine.ApplianceFridge: 1, engine.ApplianceWashingMachine: 1})

	report, err := engine.Estimate(h, f, engine.FlagCatalog(), week)
	require.NoError(t, err)
	return models.NewSnapshot(h, f.Name(), engine.FlagCatalog(), week, report)
}

func TestWriteAndReadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	snap := testSnapshot(t)

	db, err := Create(path, false)
	require.NoError(t, err)
	require.NoError(t, db.WriteSnapshot(snap))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	summaries, err := db.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, snap.ID, s.ID)
	assert.Equal(t, 2, s.Rooms)
	assert.Equal(t, engine.FormulaCompact, s.Formula)
	assert.Equal(t, engine.CatalogFlag, s.Catalog)
	assert.True(t, snap.Report.Sum.Equal(s.Sum))
	assert.True(t, snap.Report.Cost.Monthly.Equal(s.Cost.Monthly))
	assert.Equal(t, "Thursday", s.MaxDay)
	assert.Equal(t, "Tuesday", s.MinDay)

	days, err := db.ListDays(snap.ID)
	require.NoError(t, err)
	require.Len(t, days, models.DaysPerWeek)
	for i, d := range days {
		assert.Equal(t, snap.Report.Days[i].Day, d.Day)
		assert.True(t, snap.Report.Days[i].Total.Equal(d.Total), "%s", d.Day)
	}

	week, err := db.ListUsage(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, week.Quantity(models.Monday, engine.ApplianceAC))
	assert.Equal(t, 1, week.Quantity(models.Thursday, engine.ApplianceWashingMachine))
	assert.Equal(t, 0, week.Quantity(models.Sunday, engine.ApplianceFridge))
}

func TestCreateRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")

	db, err := Create(path, false)
	require.NoError(t, err)
	require.NoError(t, db.WriteSnapshot(testSnapshot(t)))
	require.NoError(t, db.Close())

	_, err = Create(path, false)
	assert.ErrorIs(t, err, ErrExists)

	db, err = Create(path, true)
	require.NoError(t, err)
	defer db.Close()

	summaries, err := db.ListSnapshots()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
