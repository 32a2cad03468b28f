package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidName        = errors.New("names should only contain alphanumeric characters and spaces, and it should not be blank")
	ErrInvalidDescription = errors.New("descriptions should not be blank")
	ErrInvalidDate        = errors.New("dates should be in the format yyyy-mm-dd")
	ErrInvalidAssignment  = errors.New("assignment should be TO or FROM")
	ErrInvalidIndex       = errors.New("index is not a non-zero unsigned integer")
)

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name identifies a person. Tasks reference their owner by Name.
type Name string

func ParseName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if !namePattern.MatchString(trimmed) {
		return "", ErrInvalidName
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}

type Description string

func ParseDescription(value string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrInvalidDescription
	}
	return Description(trimmed), nil
}

func (d Description) String() string {
	return string(d)
}

// Assignment tells whether a task was assigned to a person or by them.
type Assignment string

const (
	AssignmentTo   Assignment = "TO"
	AssignmentFrom Assignment = "FROM"
)

func ParseAssignment(value string) (Assignment, error) {
	switch Assignment(strings.ToUpper(strings.TrimSpace(value))) {
	case AssignmentTo:
		return AssignmentTo, nil
	case AssignmentFrom:
		return AssignmentFrom, nil
	default:
		return "", ErrInvalidAssignment
	}
}

// Date is a calendar day without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Display formats the date for task rendering.
func (d Date) Display() string {
	return d.Time().Format("Jan 2 2006")
}

// Index is a position in a displayed list. Users see it one-based.
type Index struct {
	zeroBased int
}

func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n - 1}, nil
}

func IndexFromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n}, nil
}

func (i Index) ZeroBased() int {
	return i.zeroBased
}

func (i Index) OneBased() int {
	return i.zeroBased + 1
}
