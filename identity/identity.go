// Package identity persists proved q-series identities in SQLite. Each
// record captures what was proved and with which parameters, so a proof
// session can be replayed or audited later.
package identity

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gerardgarvan/qKangaroo-sub000/number"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("identity not found")

// Record is one proved identity.
type Record struct {
	ID           string
	Name         string
	Q            number.Rat
	NTest        int64
	Order        int
	Coefficients []number.Rat
	ProvedAt     time.Time
}

// Store handles SQLite operations for proved identities.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path. Use ":memory:" for an
// ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The modernc driver opens one connection per database handle; an
	// in-memory path would otherwise get a fresh empty database per
	// connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS identities (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		q_value TEXT NOT NULL,
		n_test INTEGER NOT NULL,
		rec_order INTEGER NOT NULL,
		coefficients TEXT NOT NULL,
		proved_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_identities_name ON identities(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts a proved identity and returns the stored record with its
// generated id.
func (s *Store) Save(name string, q number.Rat, nTest int64, order int, coeffs []number.Rat) (Record, error) {
	rec := Record{
		ID:           uuid.New().String(),
		Name:         name,
		Q:            q,
		NTest:        nTest,
		Order:        order,
		Coefficients: coeffs,
		ProvedAt:     time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO identities (id, name, q_value, n_test, rec_order, coefficients, proved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Q.String(), rec.NTest, rec.Order,
		joinCoeffs(rec.Coefficients), rec.ProvedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert identity: %w", err)
	}
	return rec, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Record, error) {
	row := s.db.QueryRow(
		`SELECT id, name, q_value, n_test, rec_order, coefficients, proved_at
		 FROM identities WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

// List returns all records, most recently proved first.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, name, q_value, n_test, rec_order, coefficients, proved_at
		 FROM identities ORDER BY proved_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var qStr, coeffStr string
	err := row.Scan(&rec.ID, &rec.Name, &qStr, &rec.NTest, &rec.Order, &coeffStr, &rec.ProvedAt)
	if err != nil {
		return Record{}, err
	}
	q, ok := number.Parse(qStr)
	if !ok {
		return Record{}, fmt.Errorf("corrupt q value %q in record %s", qStr, rec.ID)
	}
	rec.Q = q
	rec.Coefficients, err = splitCoeffs(coeffStr)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}
	return rec, nil
}

func joinCoeffs(coeffs []number.Rat) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

func splitCoeffs(s string) ([]number.Rat, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]number.Rat, len(parts))
	for i, p := range parts {
		v, ok := number.Parse(p)
		if !ok {
			return nil, fmt.Errorf("corrupt coefficient %q", p)
		}
		out[i] = v
	}
	return out, nil
}
