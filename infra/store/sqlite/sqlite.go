// Package sqlite implements the record-store collaborator on an embedded
// SQLite database. The logical-field to column mapping lives entirely in
// this package; the core never addresses columns. A multi-patch commit runs
// in a single transaction, which provides the all-or-none guarantee the
// coordinator relies on.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skyops/fieldcoord/core/store"
)

// columns maps each collection to its logical fields, in schema order.
var columns = map[store.Collection][]string{
	store.Operators: {
		store.FieldID, store.FieldName, store.FieldSkills, store.FieldCerts,
		store.FieldLocation, store.FieldStatus, store.FieldCurrentMission,
		store.FieldAvailableFrom, store.FieldDailyRate,
	},
	store.Equipment: {
		store.FieldID, store.FieldModel, store.FieldCapabilities,
		store.FieldLocation, store.FieldStatus, store.FieldWeather,
		store.FieldCurrentMission, store.FieldUsageCycles,
		store.FieldLastService, store.FieldNextService, store.FieldDailyRate,
	},
	store.Missions: {
		store.FieldID, store.FieldClient, store.FieldLocation, store.FieldType,
		store.FieldReqSkills, store.FieldReqCerts, store.FieldReqCaps,
		store.FieldWeather, store.FieldStartDate, store.FieldEndDate,
		store.FieldBudget, store.FieldStatus, store.FieldAssignedOp,
		store.FieldAssignedEq,
	},
}

var columnTypes = map[string]string{
	store.FieldDailyRate:   "REAL",
	store.FieldBudget:      "REAL",
	store.FieldUsageCycles: "INTEGER",
}

// Store is a SQLite-backed record store.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) initSchema() error {
	for collection, cols := range columns {
		defs := make([]string, 0, len(cols))
		for _, col := range cols {
			typ := columnTypes[col]
			if typ == "" {
				typ = "TEXT"
			}
			def := fmt.Sprintf("%s %s", col, typ)
			if col == store.FieldID {
				def += " PRIMARY KEY"
			}
			defs = append(defs, def)
		}
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", collection, strings.Join(defs, ", "))
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create table %s: %w", collection, err)
		}
	}
	return nil
}

// Snapshot reads the whole collection ordered by identifier.
func (s *Store) Snapshot(c store.Collection) ([]store.Record, error) {
	cols, ok := columns[c]
	if !ok {
		return nil, fmt.Errorf("unknown collection %s", c)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(cols, ", "), c, store.FieldID)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", c, err)
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", c, err)
		}
		r := make(store.Record, len(cols))
		for i, col := range cols {
			switch v := values[i].(type) {
			case []byte:
				r[col] = string(v)
			case int64:
				r[col] = int(v)
			default:
				r[col] = v
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Commit applies all patches in one transaction. A patch targeting a
// missing record or an unknown field rolls the whole unit back.
func (s *Store) Commit(patches ...store.Patch) error {
	if len(patches) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin commit: %w", err)
	}
	for _, p := range patches {
		if err := applyPatch(tx, p); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func applyPatch(tx *sql.Tx, p store.Patch) error {
	cols, ok := columns[p.Collection]
	if !ok {
		return fmt.Errorf("unknown collection %s", p.Collection)
	}
	known := make(map[string]bool, len(cols))
	for _, col := range cols {
		known[col] = true
	}

	sets := make([]string, 0, len(p.Fields))
	args := make([]any, 0, len(p.Fields)+1)
	for field, value := range p.Fields {
		if !known[field] {
			return fmt.Errorf("unknown field %s in %s patch", field, p.Collection)
		}
		sets = append(sets, field+" = ?")
		args = append(args, value)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, p.RecordID)
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", p.Collection, strings.Join(sets, ", "), store.FieldID)
	res, err := tx.Exec(stmt, args...)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", p.Collection, p.RecordID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("record %s not found in %s", p.RecordID, p.Collection)
	}
	return nil
}

// Insert adds a record, used by the import command and tests.
func (s *Store) Insert(c store.Collection, r store.Record) error {
	cols, ok := columns[c]
	if !ok {
		return fmt.Errorf("unknown collection %s", c)
	}
	names := make([]string, 0, len(cols))
	marks := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		v, present := r[col]
		if !present {
			continue
		}
		names = append(names, col)
		marks = append(marks, "?")
		args = append(args, v)
	}
	if len(names) == 0 {
		return fmt.Errorf("empty record for %s", c)
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", c, strings.Join(names, ", "), strings.Join(marks, ", "))
	_, err := s.db.Exec(stmt, args...)
	return err
}
