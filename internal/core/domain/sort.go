package domain

import (
	"cmp"
	"fmt"
)

// TaskRecord is a task together with the sequence number it was added with.
// The sequence survives edits and drives chronological sorting.
type TaskRecord struct {
	Task  Task
	Added uint64
}

type TaskComparator func(a, b TaskRecord) int

type SortMode string

const (
	SortDescriptionAlphabetical SortMode = "a"
	SortAddedChronological      SortMode = "ca"
)

func ByDescriptionAlphabetical(a, b TaskRecord) int {
	return a.Task.CompareByDescriptionAlphabetical(b.Task)
}

func ByAddedChronological(a, b TaskRecord) int {
	return cmp.Compare(a.Added, b.Added)
}

func ParseSortMode(token string) (SortMode, error) {
	switch SortMode(token) {
	case SortDescriptionAlphabetical, SortAddedChronological:
		return SortMode(token), nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", token)
	}
}

func (m SortMode) Comparator() TaskComparator {
	if m == SortAddedChronological {
		return ByAddedChronological
	}
	return ByDescriptionAlphabetical
}

func (m SortMode) Label() string {
	if m == SortAddedChronological {
		return "added chronological"
	}
	return "description alphabetical"
}
