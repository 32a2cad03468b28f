package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskbook/internal/core/domain"
)

func TestSnapshotStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "missing.yaml"))

	snapshot, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, snapshot.Persons)
	require.Empty(t, snapshot.Tasks)
}

func TestSnapshotStore_SaveThenLoadKeepsOrderAndSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taskbook.yaml")
	store := NewSnapshotStore(path)

	want := domain.Snapshot{
		Persons: []domain.Person{domain.NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6")},
		Tasks: []domain.TaskRecord{
			{Task: domain.NewDeadline("Alice Pauline", domain.AssignmentFrom, "Submit report", true, domain.NewDate(2026, time.October, 20)), Added: 3},
			{Task: domain.NewTodo("Alice Pauline", domain.AssignmentTo, "Buy milk", false), Added: 1},
			{Task: domain.NewEvent("Alice Pauline", domain.AssignmentTo, "Team dinner", false, domain.NewDate(2026, time.November, 2)), Added: 2},
		},
	}

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestSnapshotStore_LoadRejectsInvalidTask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tasks:
  - kind: deadline
    name: Alice
    assignment: TO
    description: Pay rent
    date: not-a-date
`), 0o644))

	_, err := NewSnapshotStore(path).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}
