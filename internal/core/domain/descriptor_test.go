package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskbook/internal/core/domain"
)

func TestEditTaskDescriptor_IsAnyFieldEdited(t *testing.T) {
	var d domain.EditTaskDescriptor
	assert.False(t, d.IsAnyFieldEdited())

	d.SetIsDone(false)
	assert.True(t, d.IsAnyFieldEdited())
}

func TestEditTaskDescriptor_CloneIsIndependent(t *testing.T) {
	var d domain.EditTaskDescriptor
	d.SetName(alice)
	d.SetDate(oct20)

	c := d.Clone()
	assert.True(t, c.Equal(d))

	c.SetName(bob)
	name, _ := d.Name()
	assert.Equal(t, alice, name)
	assert.False(t, c.Equal(d))
}

func TestEditTaskDescriptor_Equal(t *testing.T) {
	var a, b domain.EditTaskDescriptor
	assert.True(t, a.Equal(b))

	a.SetDescription("x")
	assert.False(t, a.Equal(b))

	b.SetDescription("x")
	assert.True(t, a.Equal(b))

	b.SetAssignment(domain.AssignmentFrom)
	assert.False(t, a.Equal(b))
}
