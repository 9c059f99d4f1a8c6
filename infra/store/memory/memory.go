// Package memory implements the record-store collaborator in memory. It is
// the default backend for development and tests, seeded from a YAML or JSON
// fleet file.
package memory

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/skyops/fieldcoord/core/store"
)

// Store keeps the three collections in memory. Snapshots are deep copies,
// so callers can never mutate shared state, and a multi-patch commit is
// applied under one lock, all patches or none.
type Store struct {
	mu   sync.RWMutex
	data map[store.Collection][]store.Record
}

// New creates a store over the given collections. Missing collections are
// initialised empty.
func New(data map[store.Collection][]store.Record) *Store {
	s := &Store{data: make(map[store.Collection][]store.Record, 3)}
	for _, c := range []store.Collection{store.Operators, store.Equipment, store.Missions} {
		s.data[c] = append([]store.Record(nil), data[c]...)
	}
	return s
}

// NewFromFile loads a seed file with top-level operators, equipment and
// missions lists.
func NewFromFile(path string) (*Store, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported seed format: %s", path)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}

	data := make(map[store.Collection][]store.Record, 3)
	for _, c := range []store.Collection{store.Operators, store.Equipment, store.Missions} {
		raw, ok := k.Get(string(c)).([]any)
		if !ok {
			continue
		}
		records := make([]store.Record, 0, len(raw))
		for i, item := range raw {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("seed %s: %s[%d] is not a mapping", path, c, i)
			}
			records = append(records, store.Record(m))
		}
		data[c] = records
	}
	return New(data), nil
}

// Snapshot returns a deep copy of the collection.
func (s *Store) Snapshot(c store.Collection) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.data[c]
	if !ok {
		return nil, fmt.Errorf("unknown collection %s", c)
	}
	out := make([]store.Record, len(records))
	for i, r := range records {
		cp := make(store.Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, nil
}

// Commit applies every patch or none. All target records are located before
// any field is written.
func (s *Store) Commit(patches ...store.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets := make([]store.Record, len(patches))
	for i, p := range patches {
		records, ok := s.data[p.Collection]
		if !ok {
			return fmt.Errorf("unknown collection %s", p.Collection)
		}
		idx := indexOf(records, p.RecordID)
		if idx < 0 {
			return fmt.Errorf("record %s not found in %s", p.RecordID, p.Collection)
		}
		targets[i] = records[idx]
	}
	for i, p := range patches {
		for k, v := range p.Fields {
			targets[i][k] = v
		}
	}
	return nil
}

func indexOf(records []store.Record, id string) int {
	for i, r := range records {
		if got, err := r.Str(store.FieldID); err == nil && got == id {
			return i
		}
	}
	return -1
}
