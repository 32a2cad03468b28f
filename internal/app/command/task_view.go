package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgTasksListed = "Listed all tasks"
	MsgTasksFound  = "%d tasks listed"
	MsgTasksSorted = "Sorted tasks by %s"

	KeyTasksListed = "tasksListed"
	KeyTasksFound  = "tasksFound"
)

var sortKeys = map[domain.SortMode]string{
	domain.SortDescriptionAlphabetical: "tasksSortedAlphabetical",
	domain.SortAddedChronological:      "tasksSortedChronological",
}

type ListTasksCommand struct{}

func (ListTasksCommand) Execute(m ports.Model) (Result, error) {
	m.UpdateFilteredTaskList(domain.ShowAllTasks)
	return Result{Message: MsgTasksListed, Key: KeyTasksListed, View: ViewTasks}, nil
}

// FindTasksCommand narrows the task view to tasks matching a query.
type FindTasksCommand struct {
	query string
}

func NewFindTasksCommand(query string) FindTasksCommand {
	return FindTasksCommand{query: query}
}

func (c FindTasksCommand) Execute(m ports.Model) (Result, error) {
	m.UpdateFilteredTaskList(domain.TaskMatchesQuery(c.query))
	count := len(m.FilteredTasks())
	return Result{
		Message: fmt.Sprintf(MsgTasksFound, count),
		Key:     KeyTasksFound,
		Data:    map[string]any{"Count": count},
		View:    ViewTasks,
	}, nil
}

// SortTasksCommand reorders the whole task collection.
type SortTasksCommand struct {
	mode domain.SortMode
}

func NewSortTasksCommand(mode domain.SortMode) SortTasksCommand {
	return SortTasksCommand{mode: mode}
}

func (c SortTasksCommand) Execute(m ports.Model) (Result, error) {
	m.SortTasks(c.mode.Comparator())
	return Result{
		Message: fmt.Sprintf(MsgTasksSorted, c.mode.Label()),
		Key:     sortKeys[c.mode],
		View:    ViewTasks,
		Mutated: true,
	}, nil
}
