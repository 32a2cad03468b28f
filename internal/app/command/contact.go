package command

import (
	"fmt"

	"taskbook/internal/core/domain"
	"taskbook/internal/core/ports"
)

const (
	MsgPersonAdded   = "New person added: %s"
	MsgPersonDeleted = "Deleted person: %s"
	MsgPersonsListed = "Listed all persons"
	MsgPersonsFound  = "%d persons listed"

	KeyPersonAdded   = "personAdded"
	KeyPersonDeleted = "personDeleted"
	KeyPersonsListed = "personsListed"
	KeyPersonsFound  = "personsFound"
)

type AddPersonCommand struct {
	person domain.Person
}

func NewAddPersonCommand(person domain.Person) AddPersonCommand {
	return AddPersonCommand{person: person}
}

func (c AddPersonCommand) Execute(m ports.Model) (Result, error) {
	if err := m.AddPerson(c.person); err != nil {
		return Result{}, err
	}
	return Result{
		Message: fmt.Sprintf(MsgPersonAdded, c.person),
		Key:     KeyPersonAdded,
		Data:    map[string]any{"Person": c.person.String()},
		View:    ViewPersons,
		Mutated: true,
	}, nil
}

// DeletePersonCommand removes a contact. Tasks referencing it stay.
type DeletePersonCommand struct {
	index domain.Index
}

func NewDeletePersonCommand(index domain.Index) DeletePersonCommand {
	return DeletePersonCommand{index: index}
}

func (c DeletePersonCommand) Execute(m ports.Model) (Result, error) {
	target, err := personAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	return Result{
		Message: fmt.Sprintf(MsgPersonDeleted, target),
		Key:     KeyPersonDeleted,
		Data:    map[string]any{"Person": target.String()},
		View:    ViewPersons,
		Mutated: true,
	}, nil
}

type ListPersonsCommand struct{}

func (ListPersonsCommand) Execute(m ports.Model) (Result, error) {
	m.UpdateFilteredPersonList(domain.ShowAllPersons)
	return Result{Message: MsgPersonsListed, Key: KeyPersonsListed, View: ViewPersons}, nil
}

type FindPersonsCommand struct {
	query string
}

func NewFindPersonsCommand(query string) FindPersonsCommand {
	return FindPersonsCommand{query: query}
}

func (c FindPersonsCommand) Execute(m ports.Model) (Result, error) {
	m.UpdateFilteredPersonList(domain.PersonMatchesQuery(c.query))
	count := len(m.FilteredPersons())
	return Result{
		Message: fmt.Sprintf(MsgPersonsFound, count),
		Key:     KeyPersonsFound,
		Data:    map[string]any{"Count": count},
		View:    ViewPersons,
	}, nil
}
