package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgTaskDeleted = "Deleted task: %s"
	KeyTaskDeleted = "taskDeleted"
)

type DeleteTaskCommand struct {
	index domain.Index
}

func NewDeleteTaskCommand(index domain.Index) DeleteTaskCommand {
	return DeleteTaskCommand{index: index}
}

func (c DeleteTaskCommand) Execute(m ports.Model) (Result, error) {
	target, err := taskAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTask(target); err != nil {
		return Result{}, err
	}
	return Result{
		Message: fmt.Sprintf(MsgTaskDeleted, target),
		Key:     KeyTaskDeleted,
		Data:    map[string]any{"Task": target.String()},
		View:    ViewTasks,
		Mutated: true,
	}, nil
}
