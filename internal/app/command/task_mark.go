package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgTaskMarked   = "Marked task as done: %s"
	MsgTaskUnmarked = "Marked task as not done: %s"

	KeyTaskMarked   = "taskMarked"
	KeyTaskUnmarked = "taskUnmarked"
)

// MarkTaskCommand sets the completion state of the task at a displayed index.
type MarkTaskCommand struct {
	index domain.Index
	done  bool
}

func NewMarkTaskCommand(index domain.Index) MarkTaskCommand {
	return MarkTaskCommand{index: index, done: true}
}

func NewUnmarkTaskCommand(index domain.Index) MarkTaskCommand {
	return MarkTaskCommand{index: index, done: false}
}

func (c MarkTaskCommand) Execute(m ports.Model) (Result, error) {
	target, err := taskAt(m, c.index)
	if err != nil {
		return Result{}, err
	}

	var d domain.EditTaskDescriptor
	d.SetIsDone(c.done)
	edited, err := target.EditedCopy(d)
	if err != nil {
		return Result{}, err
	}
	if !m.HasPersonNamed(edited.Name()) {
		return Result{}, domain.ErrPersonNotFound
	}
	if err := m.SetTask(target, edited); err != nil {
		return Result{}, err
	}

	msg, key := MsgTaskUnmarked, KeyTaskUnmarked
	if c.done {
		msg, key = MsgTaskMarked, KeyTaskMarked
	}
	return Result{
		Message: fmt.Sprintf(msg, edited),
		Key:     key,
		Data:    map[string]any{"Task": edited.String()},
		View:    ViewTasks,
		Mutated: true,
	}, nil
}
