package renderer

import (
	"github.com/mrtz/pocketbook"
)

// ReportView is the view rendered by the period report template.
type ReportView struct {
	// Heading names the period, e.g. "Weekly".
	Heading string `json:"heading"`
	// Title anchors the report, e.g. "2025-W11".
	Title string `json:"title"`
	// Transactions lists the period's active transactions, newest first.
	Transactions []TransactionRow `json:"transactions"`
	// Income, Expense and Net are the period totals.
	Income  pocketbook.Amount `json:"income"`
	Expense pocketbook.Amount `json:"expense"`
	Net     pocketbook.Amount `json:"net"`
	// Categories breaks the period's expenses down by tag, largest first.
	Categories []CategoryRow `json:"categories"`
}

// TransactionRow is a single transaction of the listing.
type TransactionRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Tag         string `json:"tag"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

func NewTransactionRow(tx pocketbook.Transaction) TransactionRow {
	row := TransactionRow{
		ID:          tx.ID,
		Date:        tx.Date.UTC().Format("2006-01-02"),
		Kind:        string(tx.Type),
		Amount:      tx.Signed().SignedString(),
		Tag:         tx.Tag,
		Description: tx.Description,
	}
	switch {
	case tx.IsReversal:
		row.Status = "reversal"
	case tx.PendingDelete:
		row.Status = "pending removal"
	}
	return row
}

// NewReport builds the report view from the derived report.
func NewReport(r *pocketbook.Report) *ReportView {
	view := &ReportView{
		Heading:      title(r.Period.String()),
		Title:        r.Period.Title(r.Date),
		Transactions: make([]TransactionRow, 0, len(r.Transactions)),
		Income:       r.Totals.Income,
		Expense:      r.Totals.Expense,
		Net:          r.Totals.Income.Sub(r.Totals.Expense),
		Categories:   categoryRows(r.Totals),
	}
	for _, tx := range r.Transactions {
		view.Transactions = append(view.Transactions, NewTransactionRow(tx))
	}
	return view
}

// title upper-cases the first byte of an ascii word.
func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
