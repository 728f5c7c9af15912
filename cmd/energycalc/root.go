package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/flavor"
	"github.com/jgoulah/energycalc/internal/render"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	verbose bool
	noColor bool

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	// selector picks cosmetic messages; tests pin it with flavor.Fixed
	selector = flavor.Random()
)

var rootCmd = &cobra.Command{
	Use:   "energycalc",
	Short: "Estimate household electricity consumption and cost",
	Long: `energycalc estimates a household's weekly electricity use from its room count
and the appliances used each day, then prices it at a per-kWh rate.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with ENERGYCALC_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file, then applies .env and environment overrides
func loadConfig() (*config.Config, error) {
	path := getConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path, "rooms", cfg.GetRooms(), "rate", cfg.Rate)
	return cfg, nil
}

// saveConfig saves the configuration file
func saveConfig(cfg *config.Config) error {
	return config.Save(getConfigPath(), cfg)
}

// newRenderer returns a renderer on the command's output
func newRenderer(cmd *cobra.Command, cfg *config.Config) *render.Renderer {
	return render.New(cmd.OutOrStdout(), cfg.GetCurrency(), !noColor)
}
