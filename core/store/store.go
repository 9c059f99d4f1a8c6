// Package store defines the contract between the coordination core and the
// record-store collaborator. The collaborator owns the persistence format and
// the mapping from logical field names to physical columns; the core only
// ever sees records as logical-field mappings and proposes mutations as
// patches.
package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

// Collection names the three record collections.
type Collection string

const (
	Operators Collection = "operators"
	Equipment Collection = "equipment"
	Missions  Collection = "missions"
)

// Record is one row mapped to logical field names. Values arrive as whatever
// the backing store produced (string, float64, int, ...); the typed getters
// below normalise them.
type Record map[string]any

// Patch proposes field changes to a single record. Patches are never applied
// by the core itself; they are handed to the collaborator for commit.
type Patch struct {
	Collection Collection
	RecordID   string
	Fields     map[string]any
}

// Store is the record-store collaborator.
//
// Commit applies every patch or none: a multi-patch commit is a single
// atomic unit, which is what keeps the bidirectional resource/mission
// references consistent under partial failure.
type Store interface {
	Snapshot(c Collection) ([]Record, error)
	Commit(patches ...Patch) error
}

// Str returns a required string field.
func (r Record) Str(field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", faults.New(faults.MissingField, "field %q absent from record", field)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(s), nil
	}
	return "", faults.New(faults.MissingField, "field %q has unusable type %T", field, v)
}

// OptStr returns an optional string field, mapping the tabular null marker
// "-" to empty.
func (r Record) OptStr(field string) string {
	s, err := r.Str(field)
	if err != nil {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

// Float returns a required numeric field.
func (r Record) Float(field string) (float64, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, faults.New(faults.MissingField, "field %q absent from record", field)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, faults.New(faults.MissingField, "field %q is not numeric: %q", field, n)
		}
		return f, nil
	}
	return 0, faults.New(faults.MissingField, "field %q has unusable type %T", field, v)
}

// Int returns an optional integer field, zero when absent.
func (r Record) Int(field string) int {
	f, err := r.Float(field)
	if err != nil {
		return 0
	}
	return int(f)
}

// Date returns an optional date field in model.DateLayout format. Absent or
// malformed values yield the zero time.
func (r Record) Date(field string) time.Time {
	s := r.OptStr(field)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Tags returns an optional comma-separated tag set field.
func (r Record) Tags(field string) []string {
	return model.ParseTags(r.OptStr(field))
}
