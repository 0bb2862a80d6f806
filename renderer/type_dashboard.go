package renderer

import (
	"sort"

	"github.com/mrtz/pocketbook"
)

// DashboardView is the view rendered by the dashboard template. Amounts keep
// their exact decimal type so the template can use their string renderers.
type DashboardView struct {
	// Date of the dashboard, formatted.
	Date string `json:"date"`
	// Balance is the all-time balance of the book.
	Balance pocketbook.Amount `json:"balance"`
	// Income and Expense are the current calendar month's totals.
	Income  pocketbook.Amount `json:"income"`
	Expense pocketbook.Amount `json:"expense"`
	// Categories breaks the month's expenses down by tag, largest first.
	Categories []CategoryRow `json:"categories"`
	// Goals is the progress towards each savings goal.
	Goals []GoalRow `json:"goals"`
	// Insights are the derived statements, already phrased.
	Insights []string `json:"insights"`
}

// CategoryRow is a single expense category of the month.
type CategoryRow struct {
	Tag    string            `json:"tag"`
	Amount pocketbook.Amount `json:"amount"`
}

// GoalRow is the progress of a single goal.
type GoalRow struct {
	Name    string             `json:"name"`
	Saved   pocketbook.Amount  `json:"saved"`
	Target  pocketbook.Amount  `json:"target"`
	Monthly pocketbook.Amount  `json:"monthlyTarget"`
	Percent pocketbook.Percent `json:"percent"`
}

func NewGoalRow(p pocketbook.GoalProgress) GoalRow {
	return GoalRow{
		Name:    p.Goal.Name,
		Saved:   p.Saved,
		Target:  p.Goal.Target,
		Monthly: p.Goal.MonthlyTarget,
		Percent: p.Percent,
	}
}

// NewDashboard builds the dashboard view from the derived report.
func NewDashboard(d *pocketbook.Dashboard) *DashboardView {
	view := &DashboardView{
		Date:       d.Date.UTC().Format("2006-01-02"),
		Balance:    d.Balance,
		Income:     d.Month.Income,
		Expense:    d.Month.Expense,
		Categories: categoryRows(d.Month),
		Goals:      make([]GoalRow, 0, len(d.Goals)),
		Insights:   make([]string, 0, len(d.Insights)),
	}
	for _, p := range d.Goals {
		view.Goals = append(view.Goals, NewGoalRow(p))
	}
	for _, i := range d.Insights {
		view.Insights = append(view.Insights, Insight(i))
	}
	return view
}

// categoryRows orders the expense breakdown largest first, ties by tag.
func categoryRows(totals pocketbook.Totals) []CategoryRow {
	rows := make([]CategoryRow, 0, len(totals.ExpensesByTag))
	for tag, amount := range totals.ExpensesByTag {
		rows = append(rows, CategoryRow{Tag: tag, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}
