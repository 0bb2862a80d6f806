package pocketbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightKind tags an insight statement so the presentation layer can render
// it without re-deriving the numbers.
type InsightKind string

const (
	InsightSurge           InsightKind = "surge"
	InsightImprovement     InsightKind = "improvement"
	InsightStable          InsightKind = "stable"
	InsightTopCategory     InsightKind = "top-category"
	InsightForecastSavings InsightKind = "forecast-savings"
	InsightForecastDeficit InsightKind = "forecast-deficit"
)

// Insight is a single derived statement about spending behaviour. Which of
// the payload fields are meaningful depends on the kind: trend kinds carry
// Pct, top-category carries Tag and Amount, forecast kinds carry Amount.
type Insight struct {
	Kind   InsightKind
	Pct    Percent
	Tag    string
	Amount Amount
}

// trendThreshold is the month-over-month change, in percent, beyond which
// spending is called a surge or an improvement.
const trendThreshold = 10

// Insights compares the current calendar month against the previous one and
// produces trend, top-category and forecast statements, in that order.
func Insights(l *Ledger, now time.Time) []Insight {
	current := NewTotals(FilterByPeriod(l, Monthly, now))
	last := NewTotals(FilterByPeriod(l, Monthly, monthBefore(now)))

	statements := make([]Insight, 0, 3)

	// Month-over-month expense trend. A zero last month would divide by
	// zero, so it is substituted with 1.
	divisor := last.Expense.value
	if divisor.IsZero() {
		divisor = decimal.NewFromInt(1)
	}
	trend := Percent(current.Expense.value.Sub(last.Expense.value).
		Div(divisor).Mul(decimal.NewFromInt(100)).InexactFloat64())
	switch {
	case trend > trendThreshold:
		statements = append(statements, Insight{Kind: InsightSurge, Pct: trend})
	case trend < -trendThreshold:
		statements = append(statements, Insight{Kind: InsightImprovement, Pct: trend.Abs()})
	default:
		statements = append(statements, Insight{Kind: InsightStable, Pct: trend})
	}

	// Top expense category of the current month, if there were any expenses.
	if tag, amount, ok := topCategory(current); ok {
		statements = append(statements, Insight{Kind: InsightTopCategory, Tag: tag, Amount: amount})
	}

	// Two-month average forecast.
	avgExpense := current.Expense.Add(last.Expense).Half()
	avgIncome := current.Income.Add(last.Income).Half()
	forecast := avgIncome.Sub(avgExpense)
	if forecast.IsPositive() {
		statements = append(statements, Insight{Kind: InsightForecastSavings, Amount: forecast})
	} else {
		statements = append(statements, Insight{Kind: InsightForecastDeficit, Amount: forecast.Neg()})
	}

	return statements
}

// topCategory returns the tag with the largest summed expense. Ties break
// lexicographically so the result is deterministic.
func topCategory(totals Totals) (tag string, amount Amount, ok bool) {
	for t, a := range totals.ExpensesByTag {
		if !ok || a.GreaterThan(amount) || (a.Equal(amount) && t < tag) {
			tag, amount, ok = t, a, true
		}
	}
	return tag, amount, ok
}
