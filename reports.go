package pocketbook

import "time"

// Dashboard provides an at-a-glance overview of the book on a given date:
// overall balance, the current month's totals, goal progress and the insight
// statements.
type Dashboard struct {
	Date     time.Time
	Balance  Amount
	Month    Totals
	Goals    []GoalProgress
	Insights []Insight
}

// NewDashboard derives a dashboard from the snapshot.
func NewDashboard(l *Ledger, now time.Time) *Dashboard {
	return &Dashboard{
		Date:     now,
		Balance:  Balance(l),
		Month:    NewTotals(FilterByPeriod(l, Monthly, now)),
		Goals:    AllProgress(l),
		Insights: Insights(l, now),
	}
}

// Report lists the active transactions of a period window together with
// their totals.
type Report struct {
	Period       Period
	Date         time.Time
	Transactions []Transaction
	Totals       Totals
}

// NewReport derives a period report from the snapshot.
func NewReport(l *Ledger, p Period, now time.Time) *Report {
	transactions := FilterByPeriod(l, p, now)
	return &Report{
		Period:       p,
		Date:         now,
		Transactions: transactions,
		Totals:       NewTotals(transactions),
	}
}
