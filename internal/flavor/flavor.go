// Package flavor holds the cosmetic messages shown around a report. The
// choice of message goes through a Selector so output can be pinned in tests.
package flavor

import "math/rand/v2"

// Selector picks an index in [0, n)
type Selector interface {
	Pick(n int) int
}

// SelectorFunc adapts a plain function to the Selector interface
type SelectorFunc func(n int) int

// Pick calls the underlying function
func (f SelectorFunc) Pick(n int) int {
	return f(n)
}

// Random selects uniformly using the global math/rand source
func Random() Selector {
	return SelectorFunc(func(n int) int {
		return rand.IntN(n)
	})
}

// Fixed always selects index i, wrapped into range
func Fixed(i int) Selector {
	return SelectorFunc(func(n int) int {
		return ((i % n) + n) % n
	})
}

// Choose returns one message from set, or "" if set is empty
func Choose(sel Selector, set []string) string {
	if len(set) == 0 {
		return ""
	}
	idx := sel.Pick(len(set))
	if idx < 0 || idx >= len(set) {
		idx = 0
	}
	return set[idx]
}

var (
	// Tips are general energy-saving advice
	Tips = []string{
		"Set the AC to 24°C or higher to save up to 20% energy.",
		"Keep the fridge between 37-40°F for optimal efficiency.",
		"Run the washing machine with full loads.",
		"Replace traditional bulbs with LED lights.",
		"Unplug electronics when not in use to avoid phantom loads.",
		"Use natural light during the day instead of artificial lighting.",
	}

	// Success messages are shown after a completed calculation
	Success = []string{
		"Calculation complete!",
		"Your results are ready!",
		"We got your numbers!",
		"Here's your energy report!",
	}

	// Motivation closes a report
	Motivation = []string{
		"Keep those energy bills in check!",
		"Every kWh counts.",
		"Small habits add up to big savings.",
		"Energy efficiency starts at home.",
	}

	// Facts are trivia about the catalog appliances
	Facts = []string{
		"AC units are usually the biggest consumers in a home.",
		"Fridges run around the clock, so efficiency matters.",
		"Washing machines only draw real power while running a cycle.",
		"Every kWh counts toward a lower bill.",
	}
)

// Sets maps names accepted by the CLI to message sets
var Sets = map[string][]string{
	"tips":       Tips,
	"success":    Success,
	"motivation": Motivation,
	"facts":      Facts,
}
