package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jgoulah/energycalc/internal/flavor"
	"github.com/spf13/cobra"
)

var (
	tipsSet   string
	tipsIndex int
	tipsAll   bool
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Print an energy saving tip",
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().StringVar(&tipsSet, "set", "tips", "message set (tips, facts, motivation, success)")
	tipsCmd.Flags().IntVar(&tipsIndex, "index", -1, "pick a specific message instead of a random one")
	tipsCmd.Flags().BoolVar(&tipsAll, "all", false, "print every message in the set")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, args []string) error {
	set, ok := flavor.Sets[tipsSet]
	if !ok {
		return fmt.Errorf("unknown message set: %s (available: %v)", tipsSet, slices.Sorted(maps.Keys(flavor.Sets)))
	}

	out := cmd.OutOrStdout()
	if tipsAll {
		for _, msg := range set {
			fmt.Fprintf(out, "• %s\n", msg)
		}
		return nil
	}

	sel := selector
	if tipsIndex >= 0 {
		sel = flavor.Fixed(tipsIndex)
	}
	fmt.Fprintln(out, flavor.Choose(sel, set))
	return nil
}
