// Package render prints reports to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jgoulah/energycalc/internal/engine"
	"github.com/jgoulah/energycalc/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	separator = "----------------------------------------------------"
	barWidth  = 30
)

var (
	colorAccent  = lipgloss.Color("#0969da")
	colorMuted   = lipgloss.Color("#656d76")
	colorGood    = lipgloss.Color("#1a7f37")
	colorWarning = lipgloss.Color("#9a6700")
	colorBad     = lipgloss.Color("#cf222e")
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	warning lipgloss.Style
	bad     lipgloss.Style
}

// Renderer writes human-readable output
type Renderer struct {
	w        io.Writer
	currency string
	color    bool
	st       styles
}

// New returns a renderer writing to w. With color off no escape codes are emitted.
func New(w io.Writer, currency string, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:        w,
		currency: currency,
		color:    color,
		st: styles{
			title:   r.NewStyle().Bold(true).Foreground(colorAccent),
			muted:   r.NewStyle().Foreground(colorMuted),
			good:    r.NewStyle().Foreground(colorGood),
			warning: r.NewStyle().Foreground(colorWarning),
			bad:     r.NewStyle().Bold(true).Foreground(colorBad),
		},
	}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) money(d decimal.Decimal) string {
	return r.currency + d.StringFixed(2)
}

func kwh(d decimal.Decimal) string {
	return d.StringFixed(1) + " kWh"
}

// Title prints a section heading
func (r *Renderer) Title(text string) {
	r.printf("\n%s\n%s\n", r.paint(r.st.title, text), separator)
}

// Line prints a plain line
func (r *Renderer) Line(text string) {
	r.printf("%s\n", text)
}

// Note prints a muted line
func (r *Renderer) Note(text string) {
	r.printf("%s\n", r.paint(r.st.muted, text))
}

// Household prints the inputs the report was computed from
func (r *Renderer) Household(h models.HouseholdConfig, formula engine.Formula, base decimal.Decimal) {
	r.Title("Home Configuration")
	r.printf("%-16s %d BHK\n", "Rooms:", h.Rooms)
	r.printf("%-16s %s/kWh\n", "Rate:", r.money(h.RatePerUnit))
	r.printf("%-16s %s (%s)\n", "Base load:", kwh(base), formula.Name())
	if l, ok := formula.(engine.Linear); ok {
		r.Note(fmt.Sprintf("(%d+1) × %s + (%d+1) × %s = %s", h.Rooms, l.CoefficientA, h.Rooms, l.CoefficientB, kwh(base)))
	}
}

// Days prints the per-day table with each day's class against the average
func (r *Renderer) Days(report models.WeeklyReport) {
	r.Title("Weekly Energy Consumption")
	r.printf("%-10s  %10s  %12s  %s\n", "Day", "kWh", "Cost", "Level")
	r.Line(separator)
	for _, d := range report.Days {
		class := engine.ClassifyDay(d.Total, report.Average)
		r.printf("%-10s  %10s  %12s  %s\n", d.Day, d.Total.StringFixed(1), r.money(report.DayCost(d)), r.classLabel(class))
	}
	r.Line(separator)
	r.printf("%-10s  %10s  %12s\n", "Total", report.Sum.StringFixed(1), r.money(report.Cost.Weekly))
}

func (r *Renderer) classLabel(c engine.DayClass) string {
	switch c {
	case engine.DayAbove:
		return r.paint(r.st.bad, "above average")
	case engine.DayLow:
		return r.paint(r.st.good, "low")
	default:
		return r.paint(r.st.warning, "typical")
	}
}

// Stats prints sum, average and the extreme days
func (r *Renderer) Stats(report models.WeeklyReport) {
	r.Title("Quick Stats")
	r.printf("%-16s %s\n", "Total weekly:", kwh(report.Sum))
	r.printf("%-16s %s\n", "Average daily:", kwh(report.Average))
	r.printf("%-16s %s (%s)\n", "Highest day:", report.Max.Day, kwh(report.Max.Total))
	r.printf("%-16s %s (%s)\n", "Lowest day:", report.Min.Day, kwh(report.Min.Total))
}

// Cost prints the weekly, monthly and annual projection
func (r *Renderer) Cost(p models.CostProjection) {
	r.Title("Cost Estimation")
	r.printf("%-16s %s\n", "Weekly cost:", r.money(p.Weekly))
	r.printf("%-16s %s\n", "Monthly cost:", r.money(p.Monthly))
	r.printf("%-16s %s\n", "Annual cost:", r.money(p.Annual))
}

// Breakdown prints the base versus appliance split
func (r *Renderer) Breakdown(b models.Breakdown) {
	r.Title("Energy Breakdown")
	r.printf("%-12s %12s  %5s%%  %s\n", "Base", kwh(b.Base), b.BaseShare.StringFixed(1), bar(b.BaseShare, decimal.NewFromInt(100)))
	r.printf("%-12s %12s  %5s%%  %s\n", "Appliances", kwh(b.Appliances), b.ApplianceShare.StringFixed(1), bar(b.ApplianceShare, decimal.NewFromInt(100)))
}

// Chart prints a horizontal bar per day scaled to the highest day
func (r *Renderer) Chart(report models.WeeklyReport) {
	r.Title("Daily Energy Consumption")
	for _, d := range report.Days {
		r.printf("%-10s %s %s\n", d.Day, r.paint(r.st.title, bar(d.Total, report.Max.Total)), d.Total.StringFixed(1))
	}
}

func bar(value, limit decimal.Decimal) string {
	if !limit.IsPositive() || !value.IsPositive() {
		return ""
	}
	n := value.Div(limit).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart()
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", int(n))
}

// Band prints the consumption band message
func (r *Renderer) Band(b engine.Band) {
	r.Title("Insights")
	switch b {
	case engine.BandHigh:
		r.Line(r.paint(r.st.bad, "High consumption: your usage is well above the base load. Consider optimizing appliance usage."))
	case engine.BandEfficient:
		r.Line(r.paint(r.st.good, "Excellent efficiency: minimal consumption beyond the base load."))
	default:
		r.Line(r.paint(r.st.warning, "Moderate consumption: there's room for improvement with smart energy practices."))
	}
}

// Recommendations prints personalised advice
func (r *Renderer) Recommendations(recs []engine.Recommendation) {
	r.Title("Recommendations")
	for _, rec := range recs {
		r.printf("• %s\n", rec.Message)
	}
}

// Savings prints the potential weekly savings
func (r *Renderer) Savings(savings []engine.Saving, catalog models.Catalog) {
	if len(savings) == 0 {
		return
	}
	r.Title("Potential Savings")
	total := decimal.Zero
	for _, s := range savings {
		name := s.Appliance
		if a, ok := catalog.Lookup(s.Appliance); ok {
			name = a.Name
		}
		r.printf("%-16s %s/week (%s)\n", name+":", r.money(s.Amount), kwh(s.Energy))
		total = total.Add(s.Amount)
	}
	r.printf("%-16s %s/week\n", "Total:", r.money(total))
}

// Rates prints a rate comparison table
func (r *Renderer) Rates(projections []models.CostProjection) {
	r.Title("Rate Comparison")
	r.printf("%-10s  %14s  %14s  %14s\n", "Rate/kWh", "Weekly", "Monthly", "Annual")
	r.Line(separator)
	for _, p := range projections {
		r.printf("%-10s  %14s  %14s  %14s\n", r.money(p.Rate), r.money(p.Weekly), r.money(p.Monthly), r.money(p.Annual))
	}
}

// Day prints a single-day estimate with its per-appliance contribution
func (r *Renderer) Day(total models.DayTotal, usage models.DailyUsage, catalog models.Catalog, rate decimal.Decimal) {
	r.Title("Energy Consumption")
	r.printf("%-18s %s\n", "Base energy:", kwh(total.Base))
	for _, a := range catalog.Appliances() {
		qty := usage[a.Key]
		r.printf("%-18s %s\n", a.Name+":", kwh(a.Increment.Mul(decimal.NewFromInt(int64(qty)))))
	}
	r.Line(separator)
	r.printf("%-18s %s (+%s from appliances)\n", "Total:", kwh(total.Total), kwh(total.Appliances))
	r.printf("%-18s %s\n", "Cost:", r.money(total.Total.Mul(rate)))

	switch engine.AssessDay(total.Total) {
	case engine.BandHigh:
		r.Line(r.paint(r.st.bad, "You're using a lot of energy. Look for appliances to cut back on."))
	case engine.BandModerate:
		r.Line(r.paint(r.st.warning, "Your consumption is balanced."))
	default:
		r.Line(r.paint(r.st.good, "Your consumption is eco-friendly!"))
	}
}

// Report prints every section of a weekly report
func (r *Renderer) Report(h models.HouseholdConfig, formula engine.Formula, catalog models.Catalog, week models.Week, report models.WeeklyReport) error {
	base, err := engine.ComputeBaseLoad(formula, h.Rooms)
	if err != nil {
		return err
	}
	savings, err := engine.EstimateSavings(week, catalog, h.RatePerUnit)
	if err != nil {
		return err
	}

	r.Household(h, formula, base)
	r.Days(report)
	r.Chart(report)
	r.Stats(report)
	r.Cost(report.Cost)
	r.Breakdown(report.Breakdown)
	r.Band(engine.Assess(report.Average, base))
	r.Recommendations(engine.Recommend(week, catalog))
	r.Savings(savings, catalog)
	return nil
}
