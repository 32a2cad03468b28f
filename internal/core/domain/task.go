package domain

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Kind is the closed set of task variants.
type Kind int

const (
	KindTodo Kind = iota + 1
	KindDeadline
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "todo":
		return KindTodo, nil
	case "deadline":
		return KindDeadline, nil
	case "event":
		return KindEvent, nil
	default:
		return 0, fmt.Errorf("unknown task kind %q", value)
	}
}

// ParamDate is the user-facing name of the date field, reported when a
// variant does not own it.
const ParamDate = "o/DATE"

// Task is an immutable task value. The zero value is not a valid task; use
// NewTodo, NewDeadline or NewEvent.
//
// Task is comparable, and == is strong equality.
type Task struct {
	kind        Kind
	name        Name
	assignment  Assignment
	description Description
	done        bool
	date        Date
}

func NewTodo(name Name, assignment Assignment, description Description, done bool) Task {
	return Task{
		kind:        KindTodo,
		name:        name,
		assignment:  assignment,
		description: description,
		done:        done,
	}
}

func NewDeadline(name Name, assignment Assignment, description Description, done bool, date Date) Task {
	return Task{
		kind:        KindDeadline,
		name:        name,
		assignment:  assignment,
		description: description,
		done:        done,
		date:        date,
	}
}

func NewEvent(name Name, assignment Assignment, description Description, done bool, date Date) Task {
	return Task{
		kind:        KindEvent,
		name:        name,
		assignment:  assignment,
		description: description,
		done:        done,
		date:        date,
	}
}

func (t Task) Kind() Kind { return t.kind }
func (t Task) Name() Name { return t.name }
func (t Task) Assignment() Assignment { return t.assignment }
func (t Task) Description() Description { return t.description }
func (t Task) IsDone() bool { return t.done }

// Date returns the task date and whether the variant has one.
func (t Task) Date() (Date, bool) {
	if !t.kind.hasDate() {
		return Date{}, false
	}
	return t.date, true
}

func (k Kind) hasDate() bool {
	return k == KindDeadline || k == KindEvent
}

// Status is "[X]" for a done task and "[ ]" otherwise.
func (t Task) Status() string {
	if t.done {
		return "[X]"
	}
	return "[ ]"
}

// EditedCopy returns a task of the same variant with every field present in
// d applied. Setting a field the variant does not own is an error.
func (t Task) EditedCopy(d EditTaskDescriptor) (Task, error) {
	edited := t
	if name, ok := d.Name(); ok {
		edited.name = name
	}
	if assignment, ok := d.Assignment(); ok {
		edited.assignment = assignment
	}
	if description, ok := d.Description(); ok {
		edited.description = description
	}
	if done, ok := d.IsDone(); ok {
		edited.done = done
	}

	date, dateSet := d.Date()
	switch t.kind {
	case KindTodo:
		if dateSet {
			return Task{}, InvalidParameter(ParamDate)
		}
	case KindDeadline, KindEvent:
		if dateSet {
			edited.date = date
		}
	default:
		return Task{}, fmt.Errorf("edit task of kind %d: %w", t.kind, ErrInvalidParameter)
	}

	return edited, nil
}

// IsSameTask is the weak notion of equality: same variant, owner,
// assignment and description. Completion state and dates are ignored.
func (t Task) IsSameTask(other Task) bool {
	return t.kind == other.kind &&
		t.name == other.name &&
		t.assignment == other.assignment &&
		t.description == other.description
}

// Equal is the strong notion of equality.
func (t Task) Equal(other Task) bool {
	return t == other
}

// Hash is consistent with Equal.
func (t Task) Hash() uint64 {
	h := fnv.New64a()
	for _, part := range []string{
		strconv.Itoa(int(t.kind)),
		string(t.name),
		string(t.assignment),
		string(t.description),
		strconv.FormatBool(t.done),
		t.date.String(),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// CompareByDescriptionAlphabetical orders by description, case-sensitive.
func (t Task) CompareByDescriptionAlphabetical(other Task) int {
	return strings.Compare(string(t.description), string(other.description))
}

func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s][%s]\n%s", t.Status(), t.assignment, t.name, t.description)
	switch t.kind {
	case KindDeadline:
		fmt.Fprintf(&b, "\nBy: %s", t.date.Display())
	case KindEvent:
		fmt.Fprintf(&b, "\nOn: %s", t.date.Display())
	}
	return b.String()
}
