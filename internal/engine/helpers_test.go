package engine

import (
	"testing"

	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func everyDay(u models.DailyUsage) models.Week {
	var w models.Week
	for _, d := range models.Days() {
		w[d] = u.Clone()
	}
	return w
}

func mustPreset(t *testing.T, name string) Formula {
	t.Helper()
	f, err := Preset(name)
	if err != nil {
		t.Fatalf("preset %s: %v", name, err)
	}
	return f
}
