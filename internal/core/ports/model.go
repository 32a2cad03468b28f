package ports

import (
	"context"

	"taskbook/internal/core/domain"
)

// Model is the registry contract commands execute against.
type Model interface {
	HasPersonNamed(name domain.Name) bool
	AddPerson(person domain.Person) error
	DeletePerson(target domain.Person) error
	FilteredPersons() []domain.Person
	UpdateFilteredPersonList(predicate domain.PersonPredicate)

	AddTask(task domain.Task) error
	SetTask(target, replacement domain.Task) error
	DeleteTask(target domain.Task) error
	FilteredTasks() []domain.Task
	UpdateFilteredTaskList(predicate domain.TaskPredicate)
	SortTasks(comparator domain.TaskComparator)

	Snapshot() domain.Snapshot
}

// SnapshotStore loads and saves the registry as a plain snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
}
