package pocketbook

import (
	"slices"
	"strings"
	"time"
)

// This file holds the pure aggregation functions. None of them mutate the
// snapshot or perform I/O; every report is derived from scratch on demand.

// ActiveTransactions returns the transactions that are not retired, most
// recent first. All reporting is based on this sequence.
func ActiveTransactions(l *Ledger) []Transaction {
	var active []Transaction
	for _, t := range l.transactions {
		if t.Active() {
			active = append(active, t)
		}
	}
	slices.SortStableFunc(active, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return active
}

// Balance sums active income minus active expense. Retired transactions
// never affect it.
func Balance(l *Ledger) Amount {
	var balance Amount
	for _, t := range l.transactions {
		if t.Active() {
			balance = balance.Add(t.Signed())
		}
	}
	return balance
}

// Totals aggregates a transaction sequence into income and expense sums plus
// a per-tag breakdown of expenses. Tags are lower-cased for aggregation;
// income never contributes to the tag map.
type Totals struct {
	Income        Amount
	Expense       Amount
	ExpensesByTag map[string]Amount
}

// NewTotals computes the totals over the given transactions.
func NewTotals(transactions []Transaction) Totals {
	totals := Totals{ExpensesByTag: make(map[string]Amount)}
	for _, t := range transactions {
		switch t.Type {
		case Income:
			totals.Income = totals.Income.Add(t.Amount)
		case Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
			tag := strings.ToLower(t.Tag)
			totals.ExpensesByTag[tag] = totals.ExpensesByTag[tag].Add(t.Amount)
		}
	}
	return totals
}

// FilterByPeriod returns the active transactions whose date falls in the
// period window anchored on now, most recent first.
func FilterByPeriod(l *Ledger, p Period, now time.Time) []Transaction {
	var filtered []Transaction
	for _, t := range ActiveTransactions(l) {
		if p.Contains(now, t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Progress computes how much has been saved toward a goal: the sum of all
// active transactions tagged with the goal's name, counted as positive
// contributions regardless of their type. The percentage is clamped at 100.
func Progress(l *Ledger, goal Goal) GoalProgress {
	var saved Amount
	for _, t := range l.transactions {
		if t.Active() && strings.EqualFold(t.Tag, goal.Name) {
			saved = saved.Add(t.Amount)
		}
	}
	return GoalProgress{
		Goal:    goal,
		Saved:   saved,
		Percent: saved.PercentOf(goal.Target),
	}
}

// AllProgress computes the progress of every goal in the snapshot.
func AllProgress(l *Ledger) []GoalProgress {
	var all []GoalProgress
	for _, g := range l.goals {
		all = append(all, Progress(l, g))
	}
	return all
}
