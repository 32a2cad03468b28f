package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindPersonNotFound
	KindInvalidTaskIndex
	KindInvalidPersonIndex
	KindInvalidParameter
	KindNotEdited
	KindAssignorAssignee
	KindDuplicateTask
	KindDuplicatePerson
)

// Error is a recoverable command failure. The registry is never modified
// when one is returned.
type Error struct {
	Kind ErrorKind
	// Param names the offending field for KindInvalidParameter.
	Param string
}

var (
	ErrPersonNotFound     = &Error{Kind: KindPersonNotFound}
	ErrInvalidTaskIndex   = &Error{Kind: KindInvalidTaskIndex}
	ErrInvalidPersonIndex = &Error{Kind: KindInvalidPersonIndex}
	ErrInvalidParameter   = &Error{Kind: KindInvalidParameter}
	ErrNotEdited          = &Error{Kind: KindNotEdited}
	ErrAssignorAssignee   = &Error{Kind: KindAssignorAssignee}
	ErrDuplicateTask      = &Error{Kind: KindDuplicateTask}
	ErrDuplicatePerson    = &Error{Kind: KindDuplicatePerson}
)

func InvalidParameter(param string) error {
	return &Error{Kind: KindInvalidParameter, Param: param}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindPersonNotFound:
		return "person not found in the task book"
	case KindInvalidTaskIndex:
		return "the task index provided is invalid"
	case KindInvalidPersonIndex:
		return "the person index provided is invalid"
	case KindInvalidParameter:
		if e.Param == "" {
			return "invalid parameter for this task type"
		}
		return fmt.Sprintf("%s is an invalid parameter for this task type", e.Param)
	case KindNotEdited:
		return "at least one field to edit must be provided"
	case KindAssignorAssignee:
		return "a task can only have either an assignor or an assignee, not both"
	case KindDuplicateTask:
		return "this task already exists in the task book"
	case KindDuplicatePerson:
		return "this person already exists in the task book"
	default:
		return "unknown error"
	}
}

// Is matches on kind so that wrapped parameter errors satisfy
// errors.Is(err, ErrInvalidParameter).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Param == "" || t.Param == e.Param)
}

// KindOf reports the kind of a command error, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
