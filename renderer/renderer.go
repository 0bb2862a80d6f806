// Package renderer turns the derived views of a book into markdown. It holds
// no business logic: every number it prints was computed by the pocketbook
// package, here it is only laid out.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/mrtz/pocketbook"
)

//go:embed templates/*.md
var templates embed.FS

// Dashboard renders the dashboard to a markdown string.
func Dashboard(d *pocketbook.Dashboard) string {
	partials := map[string]string{
		"dashboard_totals":   "templates/dashboard_totals.md",
		"dashboard_goals":    "templates/dashboard_goals.md",
		"dashboard_insights": "templates/dashboard_insights.md",
	}
	return renderTemplate("dashboard", "templates/dashboard.md", partials, NewDashboard(d))
}

// Report renders a period report to a markdown string.
func Report(r *pocketbook.Report) string {
	partials := map[string]string{
		"report_transactions": "templates/report_transactions.md",
		"report_totals":       "templates/report_totals.md",
	}
	return renderTemplate("report", "templates/report.md", partials, NewReport(r))
}

// Transactions renders a plain transaction listing, one table row per
// transaction, to a markdown string.
func Transactions(transactions []pocketbook.Transaction) string {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, NewTransactionRow(tx))
	}
	return renderTemplate("transactions", "templates/transactions.md", nil, rows)
}

// Goals renders goal progress to a markdown string.
func Goals(progress []pocketbook.GoalProgress) string {
	rows := make([]GoalRow, 0, len(progress))
	for _, p := range progress {
		rows = append(rows, NewGoalRow(p))
	}
	return renderTemplate("goals", "templates/goals.md", nil, rows)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
