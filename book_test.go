package pocketbook

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// memStore keeps the snapshot in memory and counts saves. failSave makes
// every Save fail, to exercise the degraded persistence path.
type memStore struct {
	ledger   *Ledger
	saves    int
	failSave bool
}

func (s *memStore) Load() (*Ledger, error) {
	if s.ledger == nil {
		return NewLedger(), nil
	}
	return s.ledger, nil
}

func (s *memStore) Save(l *Ledger) error {
	if s.failSave {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("disk full")}
	}
	s.ledger = l
	s.saves++
	return nil
}

func TestOpen_SweepsAndWritesBack(t *testing.T) {
	ledger, tx, _ := NewLedger().Record(Expense, A(50), "rent", "", testNow)
	ledger, _, _ = ledger.Record(Income, A(1000), "salary", "", testNow)
	ledger, _, _ = ledger.Reverse(tx.ID, testNow)

	store := &memStore{ledger: ledger}
	book := Open(store, testNow.Add(GracePeriod+time.Minute))

	if got := book.Ledger().NumTransactions(); got != 1 {
		t.Errorf("opened with %d transactions, want 1: expired pair must be purged", got)
	}
	if store.saves != 1 {
		t.Errorf("store saw %d saves, want 1: the reduced snapshot must be written back", store.saves)
	}
}

func TestOpen_NoSweepNoWrite(t *testing.T) {
	ledger, _, _ := NewLedger().Record(Income, A(10), "salary", "", testNow)
	store := &memStore{ledger: ledger}

	Open(store, testNow)
	if store.saves != 0 {
		t.Errorf("store saw %d saves, want 0: nothing expired", store.saves)
	}
}

func TestBook_RecordPersists(t *testing.T) {
	store := &memStore{}
	book := Open(store, testNow)

	if _, err := book.Record(Income, A(100), "salary", "", testNow); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 {
		t.Errorf("store saw %d saves, want 1", store.saves)
	}
	if store.ledger.NumTransactions() != 1 {
		t.Error("the persisted snapshot must contain the new transaction")
	}

	// a rejected mutation must not persist
	if _, err := book.Record(Income, A(-1), "salary", "", testNow); err == nil {
		t.Fatal("Record() with a negative amount must fail")
	}
	if store.saves != 1 {
		t.Errorf("store saw %d saves after a rejected mutation, want still 1", store.saves)
	}
}

func TestBook_ReverseDeclined(t *testing.T) {
	store := &memStore{}
	book := Open(store, testNow)
	tx, err := book.Record(Expense, A(50), "rent", "", testNow)
	if err != nil {
		t.Fatal(err)
	}
	saves := store.saves

	decline := func(Transaction) bool { return false }
	if _, err := book.Reverse(tx.ID, decline, testNow); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Reverse() with a declining confirmer returned %v, want ErrCancelled", err)
	}
	if got, _ := book.Ledger().Transaction(tx.ID); got.PendingDelete {
		t.Error("a declined reversal must leave the transaction active")
	}
	if store.saves != saves {
		t.Error("a declined reversal must not persist")
	}
}

func TestBook_ReverseConfirmed(t *testing.T) {
	book := Open(&memStore{}, testNow)
	tx, err := book.Record(Expense, A(50), "rent", "", testNow)
	if err != nil {
		t.Fatal(err)
	}

	var asked Transaction
	confirm := func(orig Transaction) bool { asked = orig; return true }
	reversal, err := book.Reverse(tx.ID, confirm, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if asked.ID != tx.ID {
		t.Error("the confirmer must be shown the original transaction")
	}
	if reversal.Type != Income {
		t.Errorf("reversal type is %v, want %v", reversal.Type, Income)
	}
	if !Balance(book.Ledger()).IsZero() {
		t.Errorf("balance after reversal is %v, want zero", Balance(book.Ledger()))
	}
}

func TestBook_ReverseUnknown(t *testing.T) {
	book := Open(&memStore{}, testNow)
	_, err := book.Reverse("nope", nil, testNow)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Reverse() of an unknown id returned %v, want a NotFoundError", err)
	}
}

func TestBook_SaveFailureKeepsState(t *testing.T) {
	store := &memStore{failSave: true}
	book := Open(store, testNow)

	tx, err := book.Record(Income, A(100), "salary", "", testNow)
	if err != nil {
		t.Fatalf("Record() must succeed even when the store cannot save: %v", err)
	}
	if _, ok := book.Ledger().Transaction(tx.ID); !ok {
		t.Error("the in-memory snapshot must keep the transaction")
	}
}
