package service

import (
	"slices"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

// Registry owns the contacts and tasks of a task book. It is not safe for
// concurrent use; commands run one at a time.
type Registry struct {
	persons      []domain.Person
	tasks        []domain.TaskRecord
	nextAdded    uint64
	personFilter domain.PersonPredicate
	taskFilter   domain.TaskPredicate
}

var _ ports.Model = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		nextAdded:    1,
		personFilter: domain.ShowAllPersons,
		taskFilter:   domain.ShowAllTasks,
	}
}

// NewRegistryFromSnapshot restores a registry. Task order and added
// sequence numbers are taken as stored.
func NewRegistryFromSnapshot(snapshot domain.Snapshot) *Registry {
	r := NewRegistry()
	r.persons = slices.Clone(snapshot.Persons)
	r.tasks = slices.Clone(snapshot.Tasks)
	for _, record := range r.tasks {
		if record.Added >= r.nextAdded {
			r.nextAdded = record.Added + 1
		}
	}
	return r
}

func (r *Registry) HasPersonNamed(name domain.Name) bool {
	return slices.ContainsFunc(r.persons, func(p domain.Person) bool {
		return p.Name == name
	})
}

func (r *Registry) AddPerson(person domain.Person) error {
	if r.HasPersonNamed(person.Name) {
		return domain.ErrDuplicatePerson
	}
	r.persons = append(r.persons, person)
	return nil
}

// DeletePerson removes a contact. Tasks that reference it are kept.
func (r *Registry) DeletePerson(target domain.Person) error {
	i := slices.Index(r.persons, target)
	if i < 0 {
		return domain.ErrPersonNotFound
	}
	r.persons = slices.Delete(r.persons, i, i+1)
	return nil
}

func (r *Registry) FilteredPersons() []domain.Person {
	out := make([]domain.Person, 0, len(r.persons))
	for _, p := range r.persons {
		if r.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *Registry) UpdateFilteredPersonList(predicate domain.PersonPredicate) {
	if predicate == nil {
		predicate = domain.ShowAllPersons
	}
	r.personFilter = predicate
}

func (r *Registry) AddTask(task domain.Task) error {
	if r.indexOfTask(task) >= 0 {
		return domain.ErrDuplicateTask
	}
	r.tasks = append(r.tasks, domain.TaskRecord{Task: task, Added: r.nextAdded})
	r.nextAdded++
	return nil
}

// SetTask replaces target in place, keeping its position and added sequence.
func (r *Registry) SetTask(target, replacement domain.Task) error {
	i := r.indexOfTask(target)
	if i < 0 {
		return domain.ErrInvalidTaskIndex
	}
	if j := r.indexOfTask(replacement); j >= 0 && j != i {
		return domain.ErrDuplicateTask
	}
	r.tasks[i].Task = replacement
	return nil
}

func (r *Registry) DeleteTask(target domain.Task) error {
	i := r.indexOfTask(target)
	if i < 0 {
		return domain.ErrInvalidTaskIndex
	}
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return nil
}

func (r *Registry) FilteredTasks() []domain.Task {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, record := range r.tasks {
		if r.taskFilter(record.Task) {
			out = append(out, record.Task)
		}
	}
	return out
}

func (r *Registry) UpdateFilteredTaskList(predicate domain.TaskPredicate) {
	if predicate == nil {
		predicate = domain.ShowAllTasks
	}
	r.taskFilter = predicate
}

// SortTasks stably reorders the task collection itself, not only the view.
func (r *Registry) SortTasks(comparator domain.TaskComparator) {
	slices.SortStableFunc(r.tasks, comparator)
}

func (r *Registry) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Persons: slices.Clone(r.persons),
		Tasks:   slices.Clone(r.tasks),
	}
}

func (r *Registry) indexOfTask(task domain.Task) int {
	return slices.IndexFunc(r.tasks, func(record domain.TaskRecord) bool {
		return record.Task.Equal(task)
	})
}
