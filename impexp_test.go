package pocketbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	ledger, _, _ := NewLedger().SetGoal("vacation", A(500), A(100), testNow)
	ledger, _, _ = ledger.Record(Income, A(1000), "salary", "march pay", testNow)
	ledger, tx, _ := ledger.Record(Expense, A(50), "rent", "", testNow)
	ledger, _, _ = ledger.Reverse(tx.ID, testNow)

	var buf bytes.Buffer
	if err := Export(&buf, ledger); err != nil {
		t.Fatalf("Export() returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("export has %d lines, want 4 (1 goal + 3 transactions)", len(lines))
	}
	if !strings.HasPrefix(lines[0], `{"goal":`) {
		t.Errorf("first line is %q, want a goal: goals must come first", lines[0])
	}

	merged, added, err := Import(NewLedger(), &buf)
	if err != nil {
		t.Fatalf("Import() returned error: %v", err)
	}
	if added != 4 {
		t.Errorf("Import() added %d records, want 4", added)
	}
	if merged.NumTransactions() != 3 || merged.NumGoals() != 1 {
		t.Errorf("imported book has %d transactions and %d goals, want 3 and 1",
			merged.NumTransactions(), merged.NumGoals())
	}

	// reversal state must survive the round trip
	got, ok := merged.Transaction(tx.ID)
	if !ok {
		t.Fatal("reversed transaction missing after import")
	}
	if !got.PendingDelete || got.DeleteAfter == nil {
		t.Error("imported transaction lost its retirement state")
	}
}

func TestImport_Idempotent(t *testing.T) {
	ledger, _, _ := NewLedger().Record(Income, A(10), "salary", "", testNow)
	ledger, _, _ = ledger.SetGoal("bike", A(300), A(50), testNow)

	var buf bytes.Buffer
	if err := Export(&buf, ledger); err != nil {
		t.Fatal(err)
	}
	export := buf.String()

	merged, added, err := Import(ledger, strings.NewReader(export))
	if err != nil {
		t.Fatal(err)
	}
	if added != 0 {
		t.Errorf("importing a book into itself added %d records, want 0", added)
	}
	if merged.NumTransactions() != 1 || merged.NumGoals() != 1 {
		t.Error("re-import must not duplicate records")
	}
}

func TestImport_BadLine(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "not json\n"},
		{name: "neither goal nor tx", in: `{"note":{}}` + "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Import(NewLedger(), strings.NewReader(tc.in)); err == nil {
				t.Error("Import() must fail")
			}
		})
	}
}

func TestImportStatement(t *testing.T) {
	statement := `[
		{"amount": -45.20, "date": "2025-03-10", "category": "Food", "description": "groceries"},
		{"amount": 2500, "date": "2025-03-01T09:00:00Z", "category": "Salary"},
		{"amount": "-12.50", "date": "2025-03-12"}
	]`

	next, imported, err := ImportStatement(NewLedger(), strings.NewReader(statement), DefaultStatementMapping())
	if err != nil {
		t.Fatalf("ImportStatement() returned error: %v", err)
	}
	if len(imported) != 3 {
		t.Fatalf("imported %d transactions, want 3", len(imported))
	}

	if imported[0].Type != Expense || !imported[0].Amount.Equal(A(45.20)) {
		t.Errorf("row 0 imported as %v %v, want an expense of 45.20", imported[0].Type, imported[0].Amount)
	}
	if imported[0].Tag != "Food" || imported[0].Description != "groceries" {
		t.Errorf("row 0 tag/description = %q/%q", imported[0].Tag, imported[0].Description)
	}
	if imported[1].Type != Income || !imported[1].Amount.Equal(A(2500)) {
		t.Errorf("row 1 imported as %v %v, want an income of 2500", imported[1].Type, imported[1].Amount)
	}
	if imported[2].Tag != "imported" {
		t.Errorf("row 2 tag = %q, want the %q fallback", imported[2].Tag, "imported")
	}
	if got := imported[0].Date.Format("2006-01-02"); got != "2025-03-10" {
		t.Errorf("row 0 dated %s, want the row's own date", got)
	}

	if got := Balance(next); !got.Equal(A(2500).Sub(A(45.20)).Sub(A(12.50))) {
		t.Errorf("balance after import is %v", got)
	}
}

func TestImportStatement_NestedRows(t *testing.T) {
	statement := `{"result": {"entries": [
		{"value": "100.00", "booked": "2025-03-05", "kind": "income", "label": "refund"}
	]}}`
	mapping := StatementMapping{
		Rows:   "$.result.entries",
		Amount: "$.value",
		Date:   "$.booked",
		Tag:    "$.label",
		Type:   "$.kind",
	}

	_, imported, err := ImportStatement(NewLedger(), strings.NewReader(statement), mapping)
	if err != nil {
		t.Fatalf("ImportStatement() returned error: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("imported %d transactions, want 1", len(imported))
	}
	if imported[0].Type != Income || imported[0].Tag != "refund" {
		t.Errorf("imported %v tagged %q, want income tagged refund", imported[0].Type, imported[0].Tag)
	}
}

func TestImportStatement_BadRows(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "rows not an array", in: `{"amount": 1}`},
		{name: "missing amount", in: `[{"date": "2025-03-10"}]`},
		{name: "bad date", in: `[{"amount": 1, "date": "10/03/2025"}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := ImportStatement(NewLedger(), strings.NewReader(tc.in), DefaultStatementMapping()); err == nil {
				t.Error("ImportStatement() must fail")
			}
		})
	}
}
