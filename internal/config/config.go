package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults used when a field is unset
const (
	DefaultRooms    = 2
	DefaultRate     = 6.0
	DefaultCurrency = "₹"
)

// Environment variables that override the config file
const (
	EnvRooms   = "ENERGYCALC_ROOMS"
	EnvRate    = "ENERGYCALC_RATE"
	EnvFormula = "ENERGYCALC_FORMULA"
	EnvCatalog = "ENERGYCALC_CATALOG"
)

// Config holds the application configuration
type Config struct {
	Rooms        int       `yaml:"rooms,omitempty"`         // BHK count (fallback: 2)
	Rate         float64   `yaml:"rate,omitempty"`          // Cost per kWh (fallback: 6.0)
	Formula      string    `yaml:"formula,omitempty"`       // standard, compact or tiered
	Catalog      string    `yaml:"catalog,omitempty"`       // flag or count
	CompareRates []float64 `yaml:"compare_rates,omitempty"` // Rates for the comparison table
	Currency     string    `yaml:"currency,omitempty"`
	UsageFile    string    `yaml:"usage_file,omitempty"` // Default weekly usage file
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// Default returns a config with every field filled in
func Default() *Config {
	rates := make([]float64, 0, 6)
	for _, r := range engine.DefaultComparisonRates() {
		rates = append(rates, r.InexactFloat64())
	}
	return &Config{
		Rooms:        DefaultRooms,
		Rate:         DefaultRate,
		Formula:      engine.DefaultFormula,
		Catalog:      engine.DefaultCatalog,
		CompareRates: rates,
		Currency:     DefaultCurrency,
	}
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides fields from environment variables found by lookup.
// Zero means "unset" in the file, so out-of-range env values are errors
// rather than falling back to defaults.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRooms); ok && v != "" {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvRooms, err)
		}
		if rooms < engine.MinRooms {
			return fmt.Errorf("%s: %w", EnvRooms, &engine.InputError{Field: "rooms", Value: rooms, Reason: "must be at least 1"})
		}
		c.Rooms = rooms
	}
	if v, ok := lookup(EnvRate); ok && v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvRate, err)
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return fmt.Errorf("%s: %w", EnvRate, &engine.InputError{Field: "rate", Value: rate, Reason: "must be a finite number greater than zero"})
		}
		c.Rate = rate
	}
	if v, ok := lookup(EnvFormula); ok && v != "" {
		c.Formula = v
	}
	if v, ok := lookup(EnvCatalog); ok && v != "" {
		c.Catalog = v
	}
	return nil
}

// GetRooms returns the room count with a default of 2
func (c *Config) GetRooms() int {
	if c.Rooms == 0 {
		return DefaultRooms
	}
	return c.Rooms
}

// GetRate returns the cost per kWh with a default of 6.0.
// Negative values are passed through so the engine can reject them.
func (c *Config) GetRate() (decimal.Decimal, error) {
	if c.Rate == 0 {
		return decimal.NewFromFloat(DefaultRate), nil
	}
	return engine.RateFromFloat(c.Rate)
}

// GetFormula returns the configured base-load formula
func (c *Config) GetFormula() (engine.Formula, error) {
	name := c.Formula
	if name == "" {
		name = engine.DefaultFormula
	}
	return engine.Preset(name)
}

// GetCatalog returns the configured appliance catalog
func (c *Config) GetCatalog() (models.Catalog, error) {
	name := c.Catalog
	if name == "" {
		name = engine.DefaultCatalog
	}
	return engine.CatalogByName(name)
}

// GetCompareRates returns the rates for the comparison table, falling back to 3..8
func (c *Config) GetCompareRates() ([]decimal.Decimal, error) {
	if len(c.CompareRates) == 0 {
		return engine.DefaultComparisonRates(), nil
	}
	return RatesFromFloats(c.CompareRates)
}

// RatesFromFloats converts a list of rates, rejecting non-finite entries
func RatesFromFloats(values []float64) ([]decimal.Decimal, error) {
	rates := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		r, err := engine.RateFromFloat(v)
		if err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	return rates, nil
}

// GetCurrency returns the currency symbol used in output
func (c *Config) GetCurrency() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// Household returns the household described by the config
func (c *Config) Household() (models.HouseholdConfig, error) {
	rate, err := c.GetRate()
	if err != nil {
		return models.HouseholdConfig{}, err
	}
	return models.HouseholdConfig{Rooms: c.GetRooms(), RatePerUnit: rate}, nil
}
