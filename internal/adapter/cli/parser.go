package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taskbook/internal/app/command"
	"taskbook/internal/core/domain"
)

var ErrUnknownCommand = errors.New("unknown command")

// ParseError reports a malformed request. Usage is the help line of the
// command the user attempted.
type ParseError struct {
	Usage string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "invalid command format\n" + e.Usage
	}
	return fmt.Sprintf("invalid command format: %v\n%s", e.Err, e.Usage)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var usages = map[string]string{
	"task todo":      "task todo t/NAME|f/NAME d/DESCRIPTION",
	"task deadline":  "task deadline t/NAME|f/NAME d/DESCRIPTION o/DATE",
	"task event":     "task event t/NAME|f/NAME d/DESCRIPTION o/DATE",
	"task edit":      "task edit i/INDEX [t/NAME|f/NAME] [d/DESCRIPTION] [o/DATE]",
	"task delete":    "task delete i/INDEX",
	"task mark":      "task mark i/INDEX",
	"task unmark":    "task unmark i/INDEX",
	"task list":      "task list",
	"task find":      "task find q/QUERY",
	"task sort":      "task sort s/a|ca",
	"contact add":    "contact add n/NAME [p/PHONE] [e/EMAIL] [a/ADDRESS]",
	"contact delete": "contact delete i/INDEX",
	"contact list":   "contact list",
	"contact find":   "contact find q/QUERY",
	"help":           "help",
	"exit":           "exit",
}

// CommandWord returns the one or two leading words that select a command.
func CommandWord(line string) string {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return ""
	case (fields[0] == "task" || fields[0] == "contact") && len(fields) > 1:
		return fields[0] + " " + fields[1]
	default:
		return fields[0]
	}
}

// ParseCommand turns one input line into a command with typed arguments.
func ParseCommand(line string) (command.Command, error) {
	word := CommandWord(line)
	args := strings.TrimSpace(line)
	for _, w := range strings.Fields(word) {
		args = strings.TrimSpace(strings.TrimPrefix(args, w))
	}

	switch word {
	case "task todo":
		return parseAddTask(word, args, domain.KindTodo)
	case "task deadline":
		return parseAddTask(word, args, domain.KindDeadline)
	case "task event":
		return parseAddTask(word, args, domain.KindEvent)
	case "task edit":
		return parseEditTask(word, args)
	case "task delete":
		index, err := parseIndexArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewDeleteTaskCommand(index), nil
	case "task mark":
		index, err := parseIndexArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewMarkTaskCommand(index), nil
	case "task unmark":
		index, err := parseIndexArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewUnmarkTaskCommand(index), nil
	case "task list":
		return command.ListTasksCommand{}, nil
	case "task find":
		query, err := parseQueryArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewFindTasksCommand(query), nil
	case "task sort":
		return parseSortTasks(word, args)
	case "contact add":
		return parseAddPerson(word, args)
	case "contact delete":
		index, err := parseIndexArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewDeletePersonCommand(index), nil
	case "contact list":
		return command.ListPersonsCommand{}, nil
	case "contact find":
		query, err := parseQueryArg(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewFindPersonsCommand(query), nil
	case "help":
		return helpCommand{}, nil
	case "exit":
		return exitCommand{}, nil
	default:
		return nil, ErrUnknownCommand
	}
}

func invalid(word string, err error) error {
	return &ParseError{Usage: usages[word], Err: err}
}

func parseAddTask(word, args string, kind domain.Kind) (command.Command, error) {
	m := Tokenize(args, PrefixAssignTo, PrefixAssignFrom, PrefixDescription, PrefixDate)
	if m.Preamble() != "" || !m.Has(PrefixDescription) || (m.Has(PrefixDate) != (kind != domain.KindTodo)) {
		return nil, invalid(word, nil)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixAssignTo, PrefixAssignFrom, PrefixDescription, PrefixDate); err != nil {
		return nil, invalid(word, err)
	}
	if m.Has(PrefixAssignTo) == m.Has(PrefixAssignFrom) {
		if m.Has(PrefixAssignTo) {
			return nil, domain.ErrAssignorAssignee
		}
		return nil, invalid(word, nil)
	}

	assignment, prefix := domain.AssignmentTo, PrefixAssignTo
	if m.Has(PrefixAssignFrom) {
		assignment, prefix = domain.AssignmentFrom, PrefixAssignFrom
	}
	rawName, _ := m.Value(prefix)
	name, err := domain.ParseName(rawName)
	if err != nil {
		return nil, invalid(word, err)
	}
	rawDescription, _ := m.Value(PrefixDescription)
	description, err := domain.ParseDescription(rawDescription)
	if err != nil {
		return nil, invalid(word, err)
	}

	if kind == domain.KindTodo {
		return command.NewTodoCommand(name, assignment, description), nil
	}
	rawDate, _ := m.Value(PrefixDate)
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, invalid(word, err)
	}
	if kind == domain.KindDeadline {
		return command.NewDeadlineCommand(name, assignment, description, date), nil
	}
	return command.NewEventCommand(name, assignment, description, date), nil
}

func parseEditTask(word, args string) (command.Command, error) {
	m := Tokenize(args, PrefixIndex, PrefixAssignTo, PrefixAssignFrom, PrefixDescription, PrefixDate)
	if m.Preamble() != "" || !m.Has(PrefixIndex) {
		return nil, invalid(word, nil)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixIndex, PrefixAssignTo, PrefixAssignFrom, PrefixDescription, PrefixDate); err != nil {
		return nil, invalid(word, err)
	}
	rawIndex, _ := m.Value(PrefixIndex)
	index, err := parseIndex(rawIndex)
	if err != nil {
		return nil, invalid(word, err)
	}

	var in command.EditTaskInput
	if raw, ok := m.Value(PrefixAssignTo); ok {
		name, err := domain.ParseName(raw)
		if err != nil {
			return nil, invalid(word, err)
		}
		in.AssignTo = &name
	}
	if raw, ok := m.Value(PrefixAssignFrom); ok {
		name, err := domain.ParseName(raw)
		if err != nil {
			return nil, invalid(word, err)
		}
		in.AssignFrom = &name
	}
	if raw, ok := m.Value(PrefixDescription); ok {
		description, err := domain.ParseDescription(raw)
		if err != nil {
			return nil, invalid(word, err)
		}
		in.Description = &description
	}
	if raw, ok := m.Value(PrefixDate); ok {
		date, err := domain.ParseDate(raw)
		if err != nil {
			return nil, invalid(word, err)
		}
		in.Date = &date
	}

	descriptor, err := command.BuildEditDescriptor(in)
	if err != nil {
		return nil, err
	}
	return command.NewEditTaskCommand(index, descriptor), nil
}

func parseSortTasks(word, args string) (command.Command, error) {
	m := Tokenize(args, PrefixSort)
	raw, ok := m.Value(PrefixSort)
	if m.Preamble() != "" || !ok {
		return nil, invalid(word, nil)
	}
	mode, err := domain.ParseSortMode(raw)
	if err != nil {
		return nil, invalid(word, err)
	}
	return command.NewSortTasksCommand(mode), nil
}

func parseAddPerson(word, args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress)
	if m.Preamble() != "" || !m.Has(PrefixName) {
		return nil, invalid(word, nil)
	}
	if err := m.VerifyNoDuplicatePrefixes(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, invalid(word, err)
	}
	rawName, _ := m.Value(PrefixName)
	name, err := domain.ParseName(rawName)
	if err != nil {
		return nil, invalid(word, err)
	}
	phone, _ := m.Value(PrefixPhone)
	email, _ := m.Value(PrefixEmail)
	address, _ := m.Value(PrefixAddress)
	return command.NewAddPersonCommand(domain.NewPerson(name, phone, email, address)), nil
}

func parseIndexArg(word, args string) (domain.Index, error) {
	m := Tokenize(args, PrefixIndex)
	raw, ok := m.Value(PrefixIndex)
	if m.Preamble() != "" || !ok {
		return domain.Index{}, invalid(word, nil)
	}
	index, err := parseIndex(raw)
	if err != nil {
		return domain.Index{}, invalid(word, err)
	}
	return index, nil
}

func parseQueryArg(word, args string) (string, error) {
	m := Tokenize(args, PrefixQuery)
	query, ok := m.Value(PrefixQuery)
	if m.Preamble() != "" || !ok || query == "" {
		return "", invalid(word, nil)
	}
	return query, nil
}

func parseIndex(raw string) (domain.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return domain.Index{}, domain.ErrInvalidIndex
	}
	return domain.IndexFromOneBased(n)
}
