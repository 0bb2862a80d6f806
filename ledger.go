package pocketbook

import (
	"iter"
	"slices"
	"strings"
	"time"
)

// Ledger is an immutable snapshot of the full book: every transaction ever
// recorded (active or retired) plus the goal set. Mutating operations return
// a new snapshot and never touch the receiver, so a caller can keep older
// snapshots around safely. The stateful convenience wrapper is [Book].
type Ledger struct {
	transactions []Transaction
	goals        []Goal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		goals:        make([]Goal, 0),
	}
}

// Transactions yields every transaction in the snapshot, retired ones
// included, in recording order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return slices.Values(l.transactions)
}

// Goals yields every goal in the snapshot, in creation order.
func (l *Ledger) Goals() iter.Seq[Goal] {
	return slices.Values(l.goals)
}

// NumTransactions returns the raw count, retired transactions included.
func (l *Ledger) NumTransactions() int { return len(l.transactions) }

// NumGoals returns the number of goals.
func (l *Ledger) NumGoals() int { return len(l.goals) }

// Transaction returns the transaction with the given id, active or retired.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Goal returns the goal with the given name. The match is case-insensitive,
// consistent with tag aggregation.
func (l *Ledger) Goal(name string) (Goal, bool) {
	for _, g := range l.goals {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Goal{}, false
}

// clone copies the snapshot so a mutation can build a new one.
func (l *Ledger) clone() *Ledger {
	return &Ledger{
		transactions: slices.Clone(l.transactions),
		goals:        slices.Clone(l.goals),
	}
}

// Record appends a new active transaction and returns the updated snapshot
// along with the new record. The amount must be non-negative and the tag
// non-empty.
func (l *Ledger) Record(typ TxType, amount Amount, tag, description string, now time.Time) (*Ledger, Transaction, error) {
	if typ != Income && typ != Expense {
		return nil, Transaction{}, &ValidationError{Field: "type", Reason: string("unknown type " + typ)}
	}
	if amount.IsNegative() {
		return nil, Transaction{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if strings.TrimSpace(tag) == "" {
		return nil, Transaction{}, &ValidationError{Field: "tag", Reason: "must not be empty"}
	}

	tx := Transaction{
		ID:          newID(),
		Type:        typ,
		Amount:      amount,
		Tag:         strings.TrimSpace(tag),
		Description: strings.TrimSpace(description),
		Date:        now.UTC(),
	}

	next := l.clone()
	next.transactions = append(next.transactions, tx)
	return next, tx, nil
}

// SetGoal appends a new goal. Names are unique (case-insensitively): a
// duplicate would make contribution attribution ambiguous.
func (l *Ledger) SetGoal(name string, target, monthly Amount, now time.Time) (*Ledger, Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Goal{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, exists := l.Goal(name); exists {
		return nil, Goal{}, &ValidationError{Field: "name", Reason: "goal " + name + " already exists"}
	}
	if !target.IsPositive() {
		return nil, Goal{}, &ValidationError{Field: "targetAmount", Reason: "must be positive"}
	}
	if !monthly.IsPositive() {
		return nil, Goal{}, &ValidationError{Field: "monthlyTarget", Reason: "must be positive"}
	}

	goal := Goal{
		ID:            newID(),
		Name:          name,
		Target:        target,
		MonthlyTarget: monthly,
		DateSet:       now.UTC(),
	}

	next := l.clone()
	next.goals = append(next.goals, goal)
	return next, goal, nil
}

// Contribute funds a goal: it appends an expense tagged with the goal's
// name, which is what moves the computed balance down by the contributed
// amount. The goal must exist.
func (l *Ledger) Contribute(goalName string, amount Amount, now time.Time) (*Ledger, Transaction, error) {
	goal, ok := l.Goal(goalName)
	if !ok {
		return nil, Transaction{}, &NotFoundError{Kind: "goal", Key: goalName}
	}
	return l.Record(Expense, amount, goal.Name, "contribution to "+goal.Name, now)
}

// Reverse undoes the monetary effect of a transaction. It appends an
// opposite-typed clone of the original and retires both records, each with a
// deleteAfter of now plus the grace period. The pair stays inspectable until
// the sweeper purges it; neither record counts toward the balance anymore.
//
// Reversing an unknown id fails with NotFoundError; reversing a transaction
// that is already retired fails with ValidationError, since re-pairing it
// would corrupt the reversal semantics.
func (l *Ledger) Reverse(id string, now time.Time) (*Ledger, Transaction, error) {
	idx := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if idx < 0 {
		return nil, Transaction{}, &NotFoundError{Kind: "transaction", Key: id}
	}
	original := l.transactions[idx]
	if original.PendingDelete {
		return nil, Transaction{}, &ValidationError{Field: "transaction", Reason: "already retired: " + id}
	}

	after := now.UTC().Add(GracePeriod)
	reversal := Transaction{
		ID:            newID(),
		Type:          original.Type.Opposite(),
		Amount:        original.Amount,
		Tag:           reversalTagPrefix + original.Tag,
		Description:   original.Description,
		Date:          now.UTC(),
		IsReversal:    true,
		ReversalID:    original.ID,
		PendingDelete: true,
		DeleteAfter:   &after,
	}

	next := l.clone()
	next.transactions[idx].PendingDelete = true
	next.transactions[idx].DeleteAfter = &after
	next.transactions = append(next.transactions, reversal)
	return next, reversal, nil
}
