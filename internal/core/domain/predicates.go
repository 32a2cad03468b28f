package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

type TaskPredicate func(Task) bool

type PersonPredicate func(Person) bool

func ShowAllTasks(Task) bool { return true }

func ShowAllPersons(Person) bool { return true }

// TaskMatchesQuery matches tasks whose description or owner name contains
// query, ignoring case.
func TaskMatchesQuery(query string) TaskPredicate {
	needle := fold(query)
	return func(t Task) bool {
		return strings.Contains(fold(string(t.Description())), needle) ||
			strings.Contains(fold(string(t.Name())), needle)
	}
}

// PersonMatchesQuery matches persons whose name contains query, ignoring case.
func PersonMatchesQuery(query string) PersonPredicate {
	needle := fold(query)
	return func(p Person) bool {
		return strings.Contains(fold(string(p.Name)), needle)
	}
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
