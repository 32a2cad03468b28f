// Package command implements the user-visible actions of the task book. Each
// command runs to completion against the registry it is given, and either
// applies all of its changes or none of them.
package command

import (
	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

type View int

const (
	ViewNone View = iota
	ViewTasks
	ViewPersons
)

// Result is the outcome of a successful command. Message is the English
// text; Key and Data select its translation.
type Result struct {
	Message string
	Key     string
	Data    map[string]any
	View    View
	Exit    bool
	// Mutated is set when the registry changed and should be saved.
	Mutated bool
}

type Command interface {
	Execute(m ports.Model) (Result, error)
}

func taskAt(m ports.Model, index domain.Index) (domain.Task, error) {
	tasks := m.FilteredTasks()
	if index.ZeroBased() >= len(tasks) {
		return domain.Task{}, domain.ErrInvalidTaskIndex
	}
	return tasks[index.ZeroBased()], nil
}

func personAt(m ports.Model, index domain.Index) (domain.Person, error) {
	persons := m.FilteredPersons()
	if index.ZeroBased() >= len(persons) {
		return domain.Person{}, domain.ErrInvalidPersonIndex
	}
	return persons[index.ZeroBased()], nil
}
