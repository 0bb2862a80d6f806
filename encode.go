package pocketbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted blob is a single JSON object:
//
//	{ "transactions": [ ... ], "goals": [ ... ] }
//
// Transactions carry their amount as a 2-decimal string and deleteAfter as
// epoch milliseconds; goal targets are plain numbers. The whole snapshot is
// rewritten on every save.

// MarshalJSON implements the blob form of a snapshot.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transactions", l.transactions)
	w.Append("goals", l.goals)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the blob form. Unknown fields are ignored.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var temp struct {
		Transactions []Transaction `json:"transactions"`
		Goals        []Goal        `json:"goals"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*l = Ledger{transactions: temp.Transactions, goals: temp.Goals}
	if l.transactions == nil {
		l.transactions = make([]Transaction, 0)
	}
	if l.goals == nil {
		l.goals = make([]Goal, 0)
	}
	return nil
}

// DecodeLedger decodes a snapshot blob from r.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	ledger := NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}
	return ledger, nil
}

// EncodeLedger writes the snapshot blob to w, indented for a readable diff.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
