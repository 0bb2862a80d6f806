package renderer

import (
	"fmt"

	"github.com/mrtz/pocketbook"
)

// Transaction renders a transaction to a one-line string, used for
// confirmations and command output.
func Transaction(tx pocketbook.Transaction) string {
	var s string
	switch tx.Type {
	case pocketbook.Income:
		s = fmt.Sprintf("Income of %s tagged %q on %s", tx.Amount, tx.Tag, tx.Date.UTC().Format("2006-01-02"))
	case pocketbook.Expense:
		s = fmt.Sprintf("Expense of %s tagged %q on %s", tx.Amount, tx.Tag, tx.Date.UTC().Format("2006-01-02"))
	default:
		s = fmt.Sprintf("%s of %s tagged %q", tx.Type, tx.Amount, tx.Tag)
	}
	if tx.Description != "" {
		s += fmt.Sprintf(" (%s)", tx.Description)
	}
	if tx.IsReversal {
		s += " [reversal]"
	} else if tx.PendingDelete {
		s += " [pending removal]"
	}
	return s
}

// Insight phrases a derived statement.
func Insight(i pocketbook.Insight) string {
	switch i.Kind {
	case pocketbook.InsightSurge:
		return fmt.Sprintf("Spending is up %s compared to last month.", i.Pct)
	case pocketbook.InsightImprovement:
		return fmt.Sprintf("Spending is down %s compared to last month.", i.Pct)
	case pocketbook.InsightStable:
		return fmt.Sprintf("Spending is stable compared to last month (%s).", i.Pct.SignedString())
	case pocketbook.InsightTopCategory:
		return fmt.Sprintf("Top spending category this month: %s (%s).", i.Tag, i.Amount)
	case pocketbook.InsightForecastSavings:
		return fmt.Sprintf("On the current trend you should save about %s next month.", i.Amount)
	case pocketbook.InsightForecastDeficit:
		return fmt.Sprintf("On the current trend you risk overspending by about %s next month.", i.Amount)
	default:
		return string(i.Kind)
	}
}
