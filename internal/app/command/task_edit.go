package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgTaskEdited = "Edited task: %s"
	KeyTaskEdited = "taskEdited"
)

// EditTaskInput holds the already parsed values of an edit request.
// AssignTo and AssignFrom are mutually exclusive.
type EditTaskInput struct {
	AssignTo    *domain.Name
	AssignFrom  *domain.Name
	Description *domain.Description
	Date        *domain.Date
}

// BuildEditDescriptor turns an edit request into a descriptor, rejecting
// requests that name both an assignee and an assignor or change nothing.
func BuildEditDescriptor(in EditTaskInput) (domain.EditTaskDescriptor, error) {
	var d domain.EditTaskDescriptor
	if in.AssignTo != nil && in.AssignFrom != nil {
		return d, domain.ErrAssignorAssignee
	}
	if in.AssignTo != nil {
		d.SetName(*in.AssignTo)
		d.SetAssignment(domain.AssignmentTo)
	}
	if in.AssignFrom != nil {
		d.SetName(*in.AssignFrom)
		d.SetAssignment(domain.AssignmentFrom)
	}
	if in.Description != nil {
		d.SetDescription(*in.Description)
	}
	if in.Date != nil {
		d.SetDate(*in.Date)
	}
	if !d.IsAnyFieldEdited() {
		return d, domain.ErrNotEdited
	}
	return d, nil
}

// EditTaskCommand edits the task at a displayed index.
type EditTaskCommand struct {
	index      domain.Index
	descriptor domain.EditTaskDescriptor
}

func NewEditTaskCommand(index domain.Index, descriptor domain.EditTaskDescriptor) EditTaskCommand {
	return EditTaskCommand{index: index, descriptor: descriptor.Clone()}
}

func (c EditTaskCommand) Execute(m ports.Model) (Result, error) {
	if !c.descriptor.IsAnyFieldEdited() {
		return Result{}, domain.ErrNotEdited
	}

	target, err := taskAt(m, c.index)
	if err != nil {
		return Result{}, err
	}

	if name, ok := c.descriptor.Name(); ok && !m.HasPersonNamed(name) {
		return Result{}, domain.ErrPersonNotFound
	}

	edited, err := target.EditedCopy(c.descriptor)
	if err != nil {
		return Result{}, err
	}
	// The owner may have been deleted since the task was added.
	if !m.HasPersonNamed(edited.Name()) {
		return Result{}, domain.ErrPersonNotFound
	}

	if err := m.SetTask(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredTaskList(domain.ShowAllTasks)
	return Result{
		Message: fmt.Sprintf(MsgTaskEdited, edited),
		Key:     KeyTaskEdited,
		Data:    map[string]any{"Task": edited.String()},
		View:    ViewTasks,
		Mutated: true,
	}, nil
}

// Equal reports whether both commands edit the same index the same way.
func (c EditTaskCommand) Equal(other EditTaskCommand) bool {
	return c.index == other.index && c.descriptor.Equal(other.descriptor)
}
