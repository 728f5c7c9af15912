package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `rooms: 3
rate: 5.5
formula: tiered
catalog: count
compare_rates: [4, 4.5]
currency: "$"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.GetRooms())
	rate, err := cfg.GetRate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("5.5")))
	assert.Equal(t, "$", cfg.GetCurrency())

	f, err := cfg.GetFormula()
	require.NoError(t, err)
	assert.Equal(t, engine.FormulaTiered, f.Name())

	c, err := cfg.GetCatalog()
	require.NoError(t, err)
	assert.Equal(t, engine.CatalogCount, c.Name)

	rates, err := cfg.GetCompareRates()
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "4.5", rates[1].String())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms: [oops"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, Save(path, Default()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultRooms, cfg.GetRooms())
	rate, err := cfg.GetRate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, DefaultCurrency, cfg.GetCurrency())
	rates, err := cfg.GetCompareRates()
	require.NoError(t, err)
	assert.Len(t, rates, 6)

	f, err := cfg.GetFormula()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultFormula, f.Name())

	c, err := cfg.GetCatalog()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultCatalog, c.Name)
}

func TestNegativeValuesAreNotClamped(t *testing.T) {
	cfg := &Config{Rooms: -1, Rate: -2}
	h, err := cfg.Household()
	require.NoError(t, err)
	assert.Equal(t, -1, h.Rooms)
	assert.True(t, h.RatePerUnit.IsNegative())
	assert.ErrorIs(t, engine.ValidateHousehold(h), engine.ErrInvalidInput)
}

func TestUnknownFormulaAndCatalog(t *testing.T) {
	cfg := &Config{Formula: "cubic", Catalog: "deluxe"}
	_, err := cfg.GetFormula()
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	_, err = cfg.GetCatalog()
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{Rooms: 1, Rate: 4}
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		EnvRooms:   "3",
		EnvRate:    "7.5",
		EnvFormula: "compact",
		EnvCatalog: "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rooms)
	assert.Equal(t, 7.5, cfg.Rate)
	assert.Equal(t, "compact", cfg.Formula)
	assert.Empty(t, cfg.Catalog)
}

func TestApplyEnvInvalid(t *testing.T) {
	for key, value := range map[string]string{EnvRooms: "two", EnvRate: "cheap"} {
		cfg := &Config{}
		err := cfg.ApplyEnv(mapLookup(map[string]string{key: value}))
		assert.ErrorContains(t, err, key)
	}
}

func TestApplyEnvOutOfRange(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvRooms: "0"},
		{EnvRate: "-3"},
		{EnvRate: "NaN"},
		{EnvRate: "Inf"},
		{EnvRate: "-Inf"},
	} {
		cfg := &Config{}
		err := cfg.ApplyEnv(mapLookup(env))
		assert.ErrorIs(t, err, engine.ErrInvalidInput, "%v", env)
	}
}

func TestNonFiniteRatesInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rate: .nan\ncompare_rates: [3, .inf]\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.GetRate()
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	_, err = cfg.Household()
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
	_, err = cfg.GetCompareRates()
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENERGYCALC_DOTENV_TEST=9\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("ENERGYCALC_DOTENV_TEST") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "9", os.Getenv("ENERGYCALC_DOTENV_TEST"))
}
