package pocketbook

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestLedger_Record(t *testing.T) {
	ledger := NewLedger()

	next, tx, err := ledger.Record(Income, A(1000), "salary", "march pay", testNow)
	if err != nil {
		t.Fatalf("Record() returned error: %v", err)
	}
	if next == ledger {
		t.Error("Record() must return a new snapshot, not the receiver")
	}
	if ledger.NumTransactions() != 0 {
		t.Errorf("Record() mutated the original snapshot: %d transactions", ledger.NumTransactions())
	}
	if next.NumTransactions() != 1 {
		t.Fatalf("new snapshot has %d transactions, want 1", next.NumTransactions())
	}
	if tx.ID == "" {
		t.Error("new transaction has no id")
	}
	if tx.PendingDelete || tx.DeleteAfter != nil {
		t.Error("new transaction must be fully active")
	}
	if tx.IsReversal || tx.ReversalID != "" {
		t.Error("new transaction must not be marked as a reversal")
	}
	if !tx.Date.Equal(testNow) {
		t.Errorf("transaction date = %s, want %s", tx.Date, testNow)
	}

	got, ok := next.Transaction(tx.ID)
	if !ok || !got.Equal(tx) {
		t.Errorf("Transaction(%q) = %+v, %v", tx.ID, got, ok)
	}
}

func TestLedger_Record_Validation(t *testing.T) {
	ledger := NewLedger()

	testCases := []struct {
		name   string
		typ    TxType
		amount Amount
		tag    string
	}{
		{name: "negative amount", typ: Expense, amount: A(-5), tag: "food"},
		{name: "empty tag", typ: Income, amount: A(10), tag: "   "},
		{name: "unknown type", typ: TxType("transfer"), amount: A(10), tag: "food"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ledger.Record(tc.typ, tc.amount, tc.tag, "", testNow)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Record() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12.50", want: "12.50"},
		{in: "0", want: "0.00"},
		{in: "1000", want: "1000.00"},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("ParseAmount(%q) error = %v, want ValidationError", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned error: %v", tc.in, err)
			}
			if got.StringFixed() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got.StringFixed(), tc.want)
			}
		})
	}
}

func TestLedger_SetGoal(t *testing.T) {
	ledger := NewLedger()

	next, goal, err := ledger.SetGoal("Trip", A(500), A(50), testNow)
	if err != nil {
		t.Fatalf("SetGoal() returned error: %v", err)
	}
	if goal.ID == "" || goal.Name != "Trip" {
		t.Errorf("unexpected goal: %+v", goal)
	}
	if ledger.NumGoals() != 0 || next.NumGoals() != 1 {
		t.Error("SetGoal() must append to a new snapshot only")
	}

	t.Run("duplicate name", func(t *testing.T) {
		_, _, err := next.SetGoal("trip", A(100), A(10), testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("SetGoal(duplicate) error = %v, want ValidationError", err)
		}
	})
	t.Run("empty name", func(t *testing.T) {
		_, _, err := next.SetGoal("  ", A(100), A(10), testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("SetGoal(empty) error = %v, want ValidationError", err)
		}
	})
	t.Run("non-positive target", func(t *testing.T) {
		_, _, err := next.SetGoal("Car", A(0), A(10), testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("SetGoal(target=0) error = %v, want ValidationError", err)
		}
	})
	t.Run("non-positive monthly", func(t *testing.T) {
		_, _, err := next.SetGoal("Car", A(100), A(0), testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("SetGoal(monthly=0) error = %v, want ValidationError", err)
		}
	})
}

func TestLedger_Contribute(t *testing.T) {
	ledger, _, err := NewLedger().SetGoal("Trip", A(500), A(50), testNow)
	if err != nil {
		t.Fatal(err)
	}

	next, tx, err := ledger.Contribute("Trip", A(120), testNow)
	if err != nil {
		t.Fatalf("Contribute() returned error: %v", err)
	}
	if tx.Type != Expense {
		t.Errorf("contribution type = %s, want expense", tx.Type)
	}
	if tx.Tag != "Trip" {
		t.Errorf("contribution tag = %q, want the goal name", tx.Tag)
	}

	goal, _ := next.Goal("Trip")
	progress := Progress(next, goal)
	if !progress.Saved.Equal(A(120)) {
		t.Errorf("goal progress = %s, want 120.00", progress.Saved.StringFixed())
	}
	if !progress.Percent.Equal(24) {
		t.Errorf("percent complete = %s, want 24.00%%", progress.Percent)
	}

	// funding a goal sets money aside: the balance drops.
	if !Balance(next).Equal(A(-120)) {
		t.Errorf("balance after contribution = %s, want -120.00", Balance(next).StringFixed())
	}

	t.Run("unknown goal", func(t *testing.T) {
		_, _, err := ledger.Contribute("Boat", A(10), testNow)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Errorf("Contribute(unknown) error = %v, want NotFoundError", err)
		}
	})
}

func TestLedger_Reverse(t *testing.T) {
	ledger, original, err := NewLedger().Record(Expense, A(50), "rent", "", testNow)
	if err != nil {
		t.Fatal(err)
	}

	next, reversal, err := ledger.Reverse(original.ID, testNow)
	if err != nil {
		t.Fatalf("Reverse() returned error: %v", err)
	}

	if !reversal.Amount.Equal(original.Amount) {
		t.Errorf("reversal amount = %s, want %s", reversal.Amount.StringFixed(), original.Amount.StringFixed())
	}
	if reversal.Type != Income {
		t.Errorf("reversal type = %s, want the opposite of %s", reversal.Type, original.Type)
	}
	if !reversal.IsReversal || reversal.ReversalID != original.ID {
		t.Errorf("reversal must reference the original: %+v", reversal)
	}
	if reversal.Tag != "reversal: rent" {
		t.Errorf("reversal tag = %q", reversal.Tag)
	}

	wantAfter := testNow.Add(GracePeriod)
	retired, _ := next.Transaction(original.ID)
	for _, tx := range []Transaction{retired, reversal} {
		if !tx.PendingDelete {
			t.Errorf("transaction %q must be retired", tx.ID)
		}
		if tx.DeleteAfter == nil || !tx.DeleteAfter.Equal(wantAfter) {
			t.Errorf("transaction %q deleteAfter = %v, want %s", tx.ID, tx.DeleteAfter, wantAfter)
		}
	}

	// Both records exist in the raw store, none is active.
	if next.NumTransactions() != 2 {
		t.Errorf("raw transaction count = %d, want 2", next.NumTransactions())
	}
	if active := ActiveTransactions(next); len(active) != 0 {
		t.Errorf("active transactions = %d, want 0", len(active))
	}
	if !Balance(next).IsZero() {
		t.Errorf("post-reversal balance = %s, want 0", Balance(next).StringFixed())
	}

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := ledger.Reverse("nope", testNow)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Errorf("Reverse(unknown) error = %v, want NotFoundError", err)
		}
	})
	t.Run("already retired", func(t *testing.T) {
		_, _, err := next.Reverse(original.ID, testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Reverse(retired) error = %v, want ValidationError", err)
		}
	})
}

func TestLedger_Reverse_UndoesBalance(t *testing.T) {
	ledger, _, _ := NewLedger().Record(Income, A(1000), "salary", "", testNow)
	ledger, food, _ := ledger.Record(Expense, A(200), "food", "", testNow)

	before := Balance(ledger)
	if !before.Equal(A(800)) {
		t.Fatalf("balance = %s, want 800.00", before.StringFixed())
	}

	next, _, err := ledger.Reverse(food.ID, testNow)
	if err != nil {
		t.Fatal(err)
	}
	// As if the expense had never existed.
	if !Balance(next).Equal(A(1000)) {
		t.Errorf("post-reversal balance = %s, want 1000.00", Balance(next).StringFixed())
	}
}
