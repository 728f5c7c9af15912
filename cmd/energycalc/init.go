package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/internal/usage"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/spf13/cobra"
)

var (
	initUsagePath string
	initForce     bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and a sample usage file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initUsagePath, "usage", "usage.yaml", "sample usage file to write")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfgPath := getConfigPath()
	for _, path := range []string{cfgPath, initUsagePath} {
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg := config.Default()
	cfg.UsageFile = initUsagePath
	if err := saveConfig(cfg); err != nil {
		return err
	}

	catalog, err := cfg.GetCatalog()
	if err != nil {
		return err
	}
	var week models.Week
	for _, d := range models.Days() {
		week[d] = models.DailyUsage{engine.ApplianceFridge: 1}
	}
	if err := usage.Save(initUsagePath, week, catalog); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Config written to %s\n", cfgPath)
	fmt.Fprintf(out, "✓ Sample usage written to %s\n", initUsagePath)
	return nil
}
