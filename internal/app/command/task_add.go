package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgTodoAdded     = "New todo added: %s"
	MsgDeadlineAdded = "New deadline added: %s"
	MsgEventAdded    = "New event added: %s"

	KeyTodoAdded     = "todoAdded"
	KeyDeadlineAdded = "deadlineAdded"
	KeyEventAdded    = "eventAdded"
)

// AddTaskCommand adds a todo, deadline or event owned by an existing person.
type AddTaskCommand struct {
	kind        domain.Kind
	name        domain.Name
	assignment  domain.Assignment
	description domain.Description
	date        domain.Date
}

func NewTodoCommand(name domain.Name, assignment domain.Assignment, description domain.Description) AddTaskCommand {
	return AddTaskCommand{kind: domain.KindTodo, name: name, assignment: assignment, description: description}
}

func NewDeadlineCommand(name domain.Name, assignment domain.Assignment, description domain.Description, date domain.Date) AddTaskCommand {
	return AddTaskCommand{kind: domain.KindDeadline, name: name, assignment: assignment, description: description, date: date}
}

func NewEventCommand(name domain.Name, assignment domain.Assignment, description domain.Description, date domain.Date) AddTaskCommand {
	return AddTaskCommand{kind: domain.KindEvent, name: name, assignment: assignment, description: description, date: date}
}

func (c AddTaskCommand) Execute(m ports.Model) (Result, error) {
	if !m.HasPersonNamed(c.name) {
		return Result{}, domain.ErrPersonNotFound
	}

	var (
		task     domain.Task
		msg, key string
	)
	switch c.kind {
	case domain.KindTodo:
		task, msg, key = domain.NewTodo(c.name, c.assignment, c.description, false), MsgTodoAdded, KeyTodoAdded
	case domain.KindDeadline:
		task, msg, key = domain.NewDeadline(c.name, c.assignment, c.description, false, c.date), MsgDeadlineAdded, KeyDeadlineAdded
	case domain.KindEvent:
		task, msg, key = domain.NewEvent(c.name, c.assignment, c.description, false, c.date), MsgEventAdded, KeyEventAdded
	default:
		return Result{}, fmt.Errorf("add task of kind %d: %w", c.kind, domain.ErrInvalidParameter)
	}

	if err := m.AddTask(task); err != nil {
		return Result{}, err
	}
	return Result{
		Message: fmt.Sprintf(msg, task),
		Key:     key,
		Data:    map[string]any{"Task": task.String()},
		View:    ViewTasks,
		Mutated: true,
	}, nil
}
