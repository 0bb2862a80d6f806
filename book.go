package pocketbook

import (
	"io"
	"log"
	"time"
)

// Book is the thin stateful wrapper around the functional core: it owns the
// current snapshot, runs the retention sweep on open, and persists after
// every successful mutation. The snapshot is exclusively owned by the single
// running process; there are no concurrent writers.
type Book struct {
	store  Store
	ledger *Ledger
}

// Confirmer decides whether a reversal may proceed, typically by asking the
// user. A nil Confirmer means yes.
type Confirmer func(Transaction) bool

// Open loads the book from the store and sweeps expired retired
// transactions. If the sweep removed anything the reduced snapshot is
// written back immediately. A load failure is logged; the book starts empty
// rather than failing.
func Open(store Store, now time.Time) *Book {
	ledger, err := store.Load()
	if err != nil {
		log.Printf("warning: %v, starting empty", err)
		ledger = NewLedger()
	}

	ledger, removed := Sweep(ledger, now)
	book := &Book{store: store, ledger: ledger}
	if removed > 0 {
		log.Printf("purged %d expired transactions", removed)
		book.persist()
	}
	return book
}

// Ledger returns the current snapshot. It is a value the caller may hold on
// to; later mutations produce new snapshots and never touch it.
func (b *Book) Ledger() *Ledger { return b.ledger }

// persist saves the current snapshot. A failure is logged, not returned: the
// in-memory state stays valid and the next successful save catches up.
func (b *Book) persist() {
	if err := b.store.Save(b.ledger); err != nil {
		log.Printf("warning: %v, ledger kept in memory only", err)
	}
}

// Record validates and appends a transaction, then persists.
func (b *Book) Record(typ TxType, amount Amount, tag, description string, now time.Time) (Transaction, error) {
	next, tx, err := b.ledger.Record(typ, amount, tag, description, now)
	if err != nil {
		return Transaction{}, err
	}
	b.ledger = next
	b.persist()
	return tx, nil
}

// SetGoal appends a goal, then persists.
func (b *Book) SetGoal(name string, target, monthly Amount, now time.Time) (Goal, error) {
	next, goal, err := b.ledger.SetGoal(name, target, monthly, now)
	if err != nil {
		return Goal{}, err
	}
	b.ledger = next
	b.persist()
	return goal, nil
}

// Contribute funds a goal, then persists.
func (b *Book) Contribute(goalName string, amount Amount, now time.Time) (Transaction, error) {
	next, tx, err := b.ledger.Contribute(goalName, amount, now)
	if err != nil {
		return Transaction{}, err
	}
	b.ledger = next
	b.persist()
	return tx, nil
}

// Reverse looks up the transaction, asks the confirmer, and on approval
// retires the original and appends the opposite-typed reversal, then
// persists. A declined confirmation returns ErrCancelled with no state
// change; it is a no-op, not a failure.
func (b *Book) Reverse(id string, confirm Confirmer, now time.Time) (Transaction, error) {
	original, ok := b.ledger.Transaction(id)
	if !ok {
		return Transaction{}, &NotFoundError{Kind: "transaction", Key: id}
	}
	if confirm != nil && !confirm(original) {
		return Transaction{}, ErrCancelled
	}

	next, reversal, err := b.ledger.Reverse(id, now)
	if err != nil {
		return Transaction{}, err
	}
	b.ledger = next
	b.persist()
	return reversal, nil
}

// Import merges an export stream into the book, then persists. It returns
// the number of records added.
func (b *Book) Import(r io.Reader) (int, error) {
	next, added, err := Import(b.ledger, r)
	if err != nil {
		return 0, err
	}
	b.ledger = next
	b.persist()
	return added, nil
}

// ImportStatement records one transaction per statement row, then persists.
func (b *Book) ImportStatement(r io.Reader, m StatementMapping) ([]Transaction, error) {
	next, imported, err := ImportStatement(b.ledger, r, m)
	if err != nil {
		return nil, err
	}
	b.ledger = next
	b.persist()
	return imported, nil
}

// Dashboard derives the dashboard from the current snapshot.
func (b *Book) Dashboard(now time.Time) *Dashboard { return NewDashboard(b.ledger, now) }

// Report derives a period report from the current snapshot.
func (b *Book) Report(p Period, now time.Time) *Report { return NewReport(b.ledger, p, now) }
