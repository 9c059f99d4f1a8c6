package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/fieldcoord/core/store"
)

func seed() *Store {
	return New(map[store.Collection][]store.Record{
		store.Operators: {
			{"id": "P1", "status": "Available"},
			{"id": "P2", "status": "Available"},
		},
		store.Missions: {
			{"id": "M1", "status": "Planned"},
		},
	})
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := seed()
	first, err := s.Snapshot(store.Operators)
	require.NoError(t, err)
	first[0]["status"] = "mutated"

	second, err := s.Snapshot(store.Operators)
	require.NoError(t, err)
	assert.Equal(t, "Available", second[0]["status"], "snapshots must not share records")
}

func TestCommitAppliesAllPatches(t *testing.T) {
	s := seed()
	err := s.Commit(
		store.Patch{Collection: store.Operators, RecordID: "P1", Fields: map[string]any{"status": "Assigned", "current_mission": "M1"}},
		store.Patch{Collection: store.Missions, RecordID: "M1", Fields: map[string]any{"status": "InProgress", "assigned_operator": "P1"}},
	)
	require.NoError(t, err)

	ops, _ := s.Snapshot(store.Operators)
	missions, _ := s.Snapshot(store.Missions)
	assert.Equal(t, "Assigned", ops[0]["status"])
	assert.Equal(t, "P1", missions[0]["assigned_operator"])
}

func TestCommitIsAllOrNone(t *testing.T) {
	s := seed()
	err := s.Commit(
		store.Patch{Collection: store.Operators, RecordID: "P1", Fields: map[string]any{"status": "Assigned"}},
		store.Patch{Collection: store.Missions, RecordID: "ghost", Fields: map[string]any{"status": "InProgress"}},
	)
	require.Error(t, err)

	ops, _ := s.Snapshot(store.Operators)
	assert.Equal(t, "Available", ops[0]["status"], "a failed commit must write nothing")
}

func TestCommitUnknownCollection(t *testing.T) {
	err := seed().Commit(store.Patch{Collection: "pilots", RecordID: "P1", Fields: map[string]any{"status": "x"}})
	require.Error(t, err)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	doc := `operators:
  - id: P1
    name: Asha
    skills: "Mapping, Survey"
    status: Available
    daily_rate: 2000
equipment:
  - id: D1
    capabilities: Camera
    status: Available
missions:
  - id: M1
    required_skills: Mapping
    start_date: "2026-03-01"
    end_date: "2026-03-05"
    budget: 20000
    status: Planned
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := NewFromFile(path)
	require.NoError(t, err)

	ops, err := s.Snapshot(store.Operators)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	name, err := ops[0].Str(store.FieldName)
	require.NoError(t, err)
	assert.Equal(t, "Asha", name)

	rate, err := ops[0].Float(store.FieldDailyRate)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, rate)

	missions, err := s.Snapshot(store.Missions)
	require.NoError(t, err)
	require.Len(t, missions, 1)
}

func TestNewFromFileRejectsUnknownFormat(t *testing.T) {
	_, err := NewFromFile("fleet.toml")
	require.Error(t, err)
}
