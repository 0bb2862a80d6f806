package pocketbook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TxType is a typed string identifying the direction of a transaction.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// Opposite returns the other direction, used when building reversals.
func (t TxType) Opposite() TxType {
	if t == Income {
		return Expense
	}
	return Income
}

func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in":
		return Income, nil
	case "expense", "out":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// reversalTagPrefix derives the tag of a synthesized reversal from the
// original's tag.
const reversalTagPrefix = "reversal: "

// Transaction is a single money event in the ledger. Amount, type, tag and
// date are immutable after creation; only the retirement pair
// (PendingDelete, DeleteAfter) ever changes.
type Transaction struct {
	ID            string
	Type          TxType
	Amount        Amount
	Tag           string
	Description   string
	Date          time.Time
	IsReversal    bool
	ReversalID    string // id of the transaction this one reverses, empty otherwise
	PendingDelete bool
	DeleteAfter   *time.Time
}

// Active reports whether the transaction still participates in balances and
// reports. Retired transactions remain inspectable until swept.
func (t Transaction) Active() bool { return !t.PendingDelete }

// Signed returns the transaction's contribution to the balance: positive for
// income, negative for expense.
func (t Transaction) Signed() Amount {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

func (t Transaction) Equal(o Transaction) bool {
	if t.DeleteAfter == nil || o.DeleteAfter == nil {
		if t.DeleteAfter != o.DeleteAfter {
			return false
		}
	} else if !t.DeleteAfter.Equal(*o.DeleteAfter) {
		return false
	}
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Tag == o.Tag &&
		t.Description == o.Description &&
		t.Date.Equal(o.Date) &&
		t.IsReversal == o.IsReversal &&
		t.ReversalID == o.ReversalID &&
		t.PendingDelete == o.PendingDelete
}

// MarshalJSON implements the persisted form of a transaction: the amount as
// a 2-decimal string, the date as an ISO-8601 instant, deleteAfter as epoch
// milliseconds or null.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount.StringFixed())
	w.Append("tag", t.Tag)
	w.Optional("description", t.Description)
	w.Append("date", t.Date.UTC().Format(time.RFC3339Nano))
	w.Append("isReversal", t.IsReversal)
	if t.ReversalID == "" {
		w.Append("reversalId", nil)
	} else {
		w.Append("reversalId", t.ReversalID)
	}
	w.Append("pendingDelete", t.PendingDelete)
	if t.DeleteAfter == nil {
		w.Append("deleteAfter", nil)
	} else {
		w.Append("deleteAfter", t.DeleteAfter.UnixMilli())
	}
	return w.MarshalJSON()
}

// UnmarshalJSON accepts the persisted form. It is lenient about the amount,
// accepting either the canonical string or a bare number.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string          `json:"id"`
		Type          string          `json:"type"`
		Amount        json.RawMessage `json:"amount"`
		Tag           string          `json:"tag"`
		Description   string          `json:"description"`
		Date          string          `json:"date"`
		IsReversal    bool            `json:"isReversal"`
		ReversalID    *string         `json:"reversalId"`
		PendingDelete bool            `json:"pendingDelete"`
		DeleteAfter   *int64          `json:"deleteAfter"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	typ, err := ParseTxType(temp.Type)
	if err != nil {
		return err
	}

	amount, err := parseRawAmount(temp.Amount)
	if err != nil {
		return fmt.Errorf("transaction %q: %w", temp.ID, err)
	}

	date, err := time.Parse(time.RFC3339, temp.Date)
	if err != nil {
		return fmt.Errorf("transaction %q: invalid date %q: %w", temp.ID, temp.Date, err)
	}

	*t = Transaction{
		ID:            temp.ID,
		Type:          typ,
		Amount:        amount,
		Tag:           temp.Tag,
		Description:   temp.Description,
		Date:          date.UTC(),
		IsReversal:    temp.IsReversal,
		PendingDelete: temp.PendingDelete,
	}
	if temp.ReversalID != nil {
		t.ReversalID = *temp.ReversalID
	}
	if temp.DeleteAfter != nil {
		after := time.UnixMilli(*temp.DeleteAfter).UTC()
		t.DeleteAfter = &after
	}
	return nil
}

// parseRawAmount reads an amount that is either a JSON string ("12.50") or a
// bare JSON number (12.5).
func parseRawAmount(raw json.RawMessage) (Amount, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return Amount{}, fmt.Errorf("missing amount")
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return Amount{}, fmt.Errorf("invalid amount %s: %w", s, err)
		}
		s = unquoted
	}
	return ParseAmount(s)
}

// newID returns a fresh unique identifier for ledger records.
func newID() string { return uuid.NewString() }

var _ json.Marshaler = (*Transaction)(nil)
var _ json.Unmarshaler = (*Transaction)(nil)
