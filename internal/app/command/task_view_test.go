package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskbook/internal/app/command"
	"taskbook/internal/app/service"
	"taskbook/internal/core/domain"
)

func TestSortTasks_ReordersAuthoritativeList(t *testing.T) {
	r := service.NewRegistry()
	require.NoError(t, r.AddPerson(alice))
	a := domain.NewTodo(alice.Name, domain.AssignmentTo, "zzz", false)
	b := domain.NewTodo(alice.Name, domain.AssignmentTo, "aaa", false)
	require.NoError(t, r.AddTask(a))
	require.NoError(t, r.AddTask(b))

	_, err := command.NewSortTasksCommand(domain.SortDescriptionAlphabetical).Execute(r)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{b, a}, r.FilteredTasks())

	_, err = command.NewSortTasksCommand(domain.SortAddedChronological).Execute(r)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{a, b}, r.FilteredTasks())

	_, err = command.NewSortTasksCommand(domain.SortDescriptionAlphabetical).Execute(r)
	require.NoError(t, err)
	result, err := command.ListTasksCommand{}.Execute(r)
	require.NoError(t, err)
	assert.Equal(t, command.MsgTasksListed, result.Message)
	assert.Equal(t, []domain.Task{b, a}, r.FilteredTasks())
}

func TestSortTasks_AppliesToHiddenTasks(t *testing.T) {
	r := typicalRegistry(t)
	_, err := command.NewFindTasksCommand("report").Execute(r)
	require.NoError(t, err)

	result, err := command.NewSortTasksCommand(domain.SortDescriptionAlphabetical).Execute(r)
	require.NoError(t, err)
	assert.True(t, result.Mutated)

	_, err = command.ListTasksCommand{}.Execute(r)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{birthday, eating, report}, r.FilteredTasks())
}

func TestFindTasks(t *testing.T) {
	r := typicalRegistry(t)

	result, err := command.NewFindTasksCommand("EAT").Execute(r)

	require.NoError(t, err)
	assert.Equal(t, "1 tasks listed", result.Message)
	assert.Equal(t, []domain.Task{eating}, r.FilteredTasks())
	assert.False(t, result.Mutated)
}

func TestDeleteTask(t *testing.T) {
	r := typicalRegistry(t)

	_, err := command.NewDeleteTaskCommand(index(t, 2)).Execute(r)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{eating, birthday}, r.FilteredTasks())

	assertCommandFailure(t, command.NewDeleteTaskCommand(index(t, 3)), r, domain.ErrInvalidTaskIndex)
}

func TestMarkAndUnmarkTask(t *testing.T) {
	r := typicalRegistry(t)

	_, err := command.NewMarkTaskCommand(index(t, 1)).Execute(r)
	require.NoError(t, err)
	assert.True(t, r.FilteredTasks()[0].IsDone())

	result, err := command.NewUnmarkTaskCommand(index(t, 3)).Execute(r)
	require.NoError(t, err)
	assert.Contains(t, result.Message, "not done")
	assert.False(t, r.FilteredTasks()[2].IsDone())

	assertCommandFailure(t, command.NewMarkTaskCommand(index(t, 4)), r, domain.ErrInvalidTaskIndex)
}

func TestMarkTask_CollisionWithCompletedTwin(t *testing.T) {
	r := typicalRegistry(t)
	require.NoError(t, r.AddTask(domain.NewTodo(alice.Name, domain.AssignmentFrom, "Eat with family", true)))

	assertCommandFailure(t, command.NewMarkTaskCommand(index(t, 1)), r, domain.ErrDuplicateTask)
}

func TestMarkTask_OwnerDeleted(t *testing.T) {
	r := typicalRegistry(t)
	_, err := command.NewDeletePersonCommand(index(t, 2)).Execute(r)
	require.NoError(t, err)

	assertCommandFailure(t, command.NewMarkTaskCommand(index(t, 2)), r, domain.ErrPersonNotFound)
	assertCommandFailure(t, command.NewUnmarkTaskCommand(index(t, 2)), r, domain.ErrPersonNotFound)
}
