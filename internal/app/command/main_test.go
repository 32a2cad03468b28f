package command_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskbook/internal/app/command"
	"taskbook/internal/app/service"
	"taskbook/internal/core/domain"
)

var (
	alice  = domain.NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6")
	benson = domain.NewPerson("Benson Meier", "98765432", "johnd@example.com", "311, Clementi Ave 2")

	eating   = domain.NewTodo(alice.Name, domain.AssignmentFrom, "Eat with family", false)
	report   = domain.NewDeadline(benson.Name, domain.AssignmentTo, "Submit report", false, domain.NewDate(2026, time.October, 20))
	birthday = domain.NewEvent(alice.Name, domain.AssignmentTo, "Birthday party", true, domain.NewDate(2026, time.November, 2))
)

// typicalRegistry holds two persons and three tasks, in that order.
func typicalRegistry(t *testing.T) *service.Registry {
	t.Helper()
	r := service.NewRegistry()
	for _, p := range []domain.Person{alice, benson} {
		require.NoError(t, r.AddPerson(p))
	}
	for _, task := range []domain.Task{eating, report, birthday} {
		require.NoError(t, r.AddTask(task))
	}
	return r
}

func index(t *testing.T, oneBased int) domain.Index {
	t.Helper()
	i, err := domain.IndexFromOneBased(oneBased)
	require.NoError(t, err)
	return i
}

// assertCommandFailure checks that c fails with want and leaves r untouched.
func assertCommandFailure(t *testing.T, c command.Command, r *service.Registry, want error) {
	t.Helper()
	before := r.Snapshot()
	beforeView := r.FilteredTasks()

	_, err := c.Execute(r)

	require.ErrorIs(t, err, want)
	require.Equal(t, before, r.Snapshot())
	require.Equal(t, beforeView, r.FilteredTasks())
}
