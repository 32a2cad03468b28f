package domain

// Snapshot is the plain data a store loads and saves. Tasks are kept in the
// registry's authoritative order.
type Snapshot struct {
	Persons []Person
	Tasks   []TaskRecord
}

// RestoreTask rebuilds a task from stored field values, validating each.
func RestoreTask(kind, name, assignment, description string, done bool, date string) (Task, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Task{}, err
	}
	n, err := ParseName(name)
	if err != nil {
		return Task{}, err
	}
	a, err := ParseAssignment(assignment)
	if err != nil {
		return Task{}, err
	}
	d, err := ParseDescription(description)
	if err != nil {
		return Task{}, err
	}

	if k == KindTodo {
		return NewTodo(n, a, d, done), nil
	}
	on, err := ParseDate(date)
	if err != nil {
		return Task{}, err
	}
	if k == KindDeadline {
		return NewDeadline(n, a, d, done, on), nil
	}
	return NewEvent(n, a, d, done, on), nil
}

// DateString is the stored form of the task date, empty for a todo.
func (t Task) DateString() string {
	if date, ok := t.Date(); ok {
		return date.String()
	}
	return ""
}
