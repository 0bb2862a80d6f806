package pocketbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge.

// Export writes the book to 'w' in the import/export format: a JSONL stream
// where each line is a single json object with either a "goal" or a "tx"
// property. Goals come first so an import can resolve contributions.
func Export(w io.Writer, l *Ledger) error {
	write := func(key string, v any) error {
		var ow jsonObjectWriter
		ow.Append(key, v)
		data, err := ow.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal %s for export: %w", key, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write export line: %w", err)
		}
		return nil
	}

	for g := range l.Goals() {
		if err := write("goal", g); err != nil {
			return err
		}
	}
	for t := range l.Transactions() {
		if err := write("tx", t); err != nil {
			return err
		}
	}
	return nil
}

// Import merges an export stream into the snapshot. Records whose id is
// already present are skipped, so importing the same file twice is harmless.
// It returns the merged snapshot and the number of records added.
func Import(l *Ledger, r io.Reader) (*Ledger, int, error) {
	next := l.clone()
	added := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var record struct {
			Goal *Goal        `json:"goal"`
			Tx   *Transaction `json:"tx"`
		}
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, 0, fmt.Errorf("cannot parse export line %q: %w", string(line), err)
		}
		switch {
		case record.Goal != nil:
			if _, exists := next.Goal(record.Goal.Name); exists {
				continue
			}
			next.goals = append(next.goals, *record.Goal)
			added++
		case record.Tx != nil:
			if _, exists := next.Transaction(record.Tx.ID); exists {
				continue
			}
			next.transactions = append(next.transactions, *record.Tx)
			added++
		default:
			return nil, 0, fmt.Errorf("export line %q has neither goal nor tx", string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading export stream: %w", err)
	}
	return next, added, nil
}

// StatementMapping maps a bank-export JSON document onto transactions using
// JSONPath expressions. Rows selects the array of entries; the other paths
// are evaluated against each row.
type StatementMapping struct {
	Rows        string // e.g. "$.transactions"
	Amount      string // e.g. "$.amount"
	Date        string // e.g. "$.bookingDate"
	Tag         string // e.g. "$.category"
	Description string // optional
	Type        string // optional; when empty the amount's sign decides
}

// DefaultStatementMapping covers the common flat export shape: a top-level
// array of rows with amount/date/category properties.
func DefaultStatementMapping() StatementMapping {
	return StatementMapping{
		Rows:        "$",
		Amount:      "$.amount",
		Date:        "$.date",
		Tag:         "$.category",
		Description: "$.description",
	}
}

// statementDateFormats are tried in order when parsing a row date.
var statementDateFormats = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

// ImportStatement reads a bank-export JSON document from r and records one
// transaction per row. Rows with a negative amount become expenses of the
// absolute value; positive amounts become income, unless the Type path is
// set and resolves to an explicit type. Each transaction is dated with the
// row's own date.
func ImportStatement(l *Ledger, r io.Reader, m StatementMapping) (*Ledger, []Transaction, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("cannot parse statement: %w", err)
	}

	rowsVal, err := jsonpath.Get(m.Rows, doc)
	if err != nil {
		return nil, nil, fmt.Errorf("rows path %q: %w", m.Rows, err)
	}
	rows, ok := rowsVal.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("rows path %q: expected an array, got %T", m.Rows, rowsVal)
	}

	next := l
	var imported []Transaction
	for i, row := range rows {
		value, err := statementDecimal(row, m.Amount)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}

		date, err := statementDate(row, m.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}

		tag, _ := statementString(row, m.Tag)
		if tag == "" {
			tag = "imported"
		}
		description, _ := statementString(row, m.Description)

		typ := Income
		if value.IsNegative() {
			typ = Expense
			value = value.Neg()
		}
		if m.Type != "" {
			s, err := statementString(row, m.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", i, err)
			}
			if typ, err = ParseTxType(s); err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", i, err)
			}
		}

		var tx Transaction
		next, tx, err = next.Record(typ, Amount{value: value}, tag, description, date)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		imported = append(imported, tx)
	}
	return next, imported, nil
}

func statementDecimal(row any, path string) (decimal.Decimal, error) {
	v, err := jsonpath.Get(path, row)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount path %q: %w", path, err)
	}
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("amount path %q: not a number: %q", path, x)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("amount path %q: unexpected type %T", path, v)
	}
}

func statementDate(row any, path string) (time.Time, error) {
	s, err := statementString(row, path)
	if err != nil {
		return time.Time{}, err
	}
	for _, format := range statementDateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("date path %q: unsupported date %q", path, s)
}

func statementString(row any, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	v, err := jsonpath.Get(path, row)
	if err != nil {
		// a missing optional property is not an error
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("path %q: expected a string, got %T", path, v)
	}
	return s, nil
}
