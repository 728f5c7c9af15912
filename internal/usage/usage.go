// Package usage reads a week of appliance usage from YAML files and from
// command-line specs such as "mon=ac,fridge" or "all=fridge:2".
package usage

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jgoulah/energycalc/pkg/models"
	"gopkg.in/yaml.v3"
)

// AllDays is the entry target that applies to every day of the week
const AllDays = "all"

var aliases = map[string]string{
	"wm":      "washing_machine",
	"washer":  "washing_machine",
	"aircon":  "ac",
	"cooler":  "ac",
	"freezer": "fridge",
}

// NormalizeKey lowercases an appliance name and maps known aliases
func NormalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

// Quantity accepts either a YAML bool (used / not used) or an integer count
type Quantity int

// UnmarshalYAML implements yaml.Unmarshaler
func (q *Quantity) UnmarshalYAML(value *yaml.Node) error {
	switch value.ShortTag() {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			*q = 1
		} else {
			*q = 0
		}
		return nil
	case "!!int":
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		*q = Quantity(n)
		return nil
	default:
		return fmt.Errorf("line %d: quantity must be a bool or an integer, got %q", value.Line, value.Value)
	}
}

// File is the on-disk layout of a usage file
type File struct {
	Days map[string]map[string]Quantity `yaml:"days"`
}

// Parse decodes a usage document into a Week. Negative quantities are kept
// so the engine can reject them.
func Parse(data []byte) (models.Week, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Week{}, fmt.Errorf("parsing usage file: %w", err)
	}

	// "all" is applied first so that named days override it.
	names := slices.Sorted(maps.Keys(f.Days))
	slices.SortStableFunc(names, func(a, b string) int {
		return boolRank(isAllDays(b)) - boolRank(isAllDays(a))
	})

	var week models.Week
	for _, name := range names {
		targets, err := resolveDays(name)
		if err != nil {
			return models.Week{}, err
		}
		entries := make(models.DailyUsage, len(f.Days[name]))
		for _, appliance := range slices.Sorted(maps.Keys(f.Days[name])) {
			key := NormalizeKey(appliance)
			if _, dup := entries[key]; dup {
				return models.Week{}, fmt.Errorf("day %q lists %s more than once", name, key)
			}
			entries[key] = int(f.Days[name][appliance])
		}
		for _, d := range targets {
			if week[d] == nil {
				week[d] = models.DailyUsage{}
			}
			maps.Copy(week[d], entries)
		}
	}
	return week, nil
}

// Load reads a usage file from disk
func Load(path string) (models.Week, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Week{}, fmt.Errorf("reading usage file: %w", err)
	}
	return Parse(data)
}

// Save writes week as a usage file listing every catalog appliance per day
func Save(path string, week models.Week, catalog models.Catalog) error {
	f := File{Days: make(map[string]map[string]Quantity, models.DaysPerWeek)}
	for _, d := range models.Days() {
		day := make(map[string]Quantity)
		for _, key := range catalog.Keys() {
			day[key] = Quantity(week.Quantity(d, key))
		}
		f.Days[strings.ToLower(d.String())] = day
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling usage file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating usage directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing usage file: %w", err)
	}
	return nil
}

// ApplySpecs layers "day=appliance[:qty],..." specs over week, in order.
// An empty appliance list clears the day.
func ApplySpecs(week models.Week, specs []string) (models.Week, error) {
	out := week.Clone()
	for _, entry := range specs {
		dayPart, list, ok := strings.Cut(entry, "=")
		if !ok {
			return models.Week{}, fmt.Errorf("invalid usage entry %q (want day=appliance[:qty],...)", entry)
		}
		targets, err := resolveDays(dayPart)
		if err != nil {
			return models.Week{}, err
		}

		entries, err := parseList(list)
		if err != nil {
			return models.Week{}, fmt.Errorf("usage entry %q: %w", entry, err)
		}

		for _, d := range targets {
			if len(entries) == 0 {
				out[d] = models.DailyUsage{}
				continue
			}
			if out[d] == nil {
				out[d] = models.DailyUsage{}
			}
			for key, qty := range entries {
				out[d][key] = qty
			}
		}
	}
	return out, nil
}

// ParseDaily reads a single day's usage from "appliance[:qty],..." items
func ParseDaily(items []string) (models.DailyUsage, error) {
	return parseList(strings.Join(items, ","))
}

func parseList(list string) (models.DailyUsage, error) {
	entries := models.DailyUsage{}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, qtyStr, hasQty := strings.Cut(item, ":")
		qty := 1
		if hasQty {
			n, err := strconv.Atoi(strings.TrimSpace(qtyStr))
			if err != nil {
				return nil, fmt.Errorf("invalid quantity for %s: %w", name, err)
			}
			qty = n
		}
		key := NormalizeKey(name)
		if key == "" {
			return nil, fmt.Errorf("empty appliance name in %q", item)
		}
		entries[key] = qty
	}
	return entries, nil
}

func isAllDays(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), AllDays)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func resolveDays(name string) ([]models.Day, error) {
	if isAllDays(name) {
		return models.Days(), nil
	}
	d, err := models.ParseDay(name)
	if err != nil {
		return nil, err
	}
	return []models.Day{d}, nil
}
