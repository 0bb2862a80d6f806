package pocketbook

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot blob in a one-row key/value table. It is
// still a single slot rewritten wholesale, like the file store, but gets the
// write atomicity from the database instead of a rename.
type SQLiteStore struct {
	db *sql.DB
}

const ledgerSlot = "ledger"

// OpenSQLiteStore opens (and if needed creates) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (k TEXT PRIMARY KEY, v BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing sqlite store %q: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load reads the snapshot slot. An empty slot is a fresh book; a corrupt
// blob is logged and treated as empty.
func (s *SQLiteStore) Load() (*Ledger, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT v FROM slots WHERE k = ?`, ledgerSlot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), &PersistenceError{Op: "load", Err: err}
	}

	ledger, err := DecodeLedger(bytes.NewReader(blob))
	if err != nil {
		log.Printf("warning: ledger slot is corrupt, starting empty: %v", err)
		return NewLedger(), nil
	}
	return ledger, nil
}

// Save overwrites the snapshot slot.
func (s *SQLiteStore) Save(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	_, err := s.db.Exec(
		`INSERT INTO slots (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		ledgerSlot, buf.Bytes())
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
