package query

import (
	"strings"
	"time"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

// Accepted layouts for a search term to count as a calendar date. The
// date portion is what matters; anything finer is truncated.
var searchDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02.01.2006",
	"01/02/2006",
}

// UserPredicate reports whether a user matches a search term.
type UserPredicate func(*domain.User) bool

// TaskPredicate reports whether a task matches a search term.
type TaskPredicate func(*domain.Task) bool

// ResolveUserFilter builds a predicate for the term: case-sensitive
// substring containment on login. An empty term accepts everything.
func ResolveUserFilter(searchTerm string) UserPredicate {
	if searchTerm == "" {
		return func(*domain.User) bool { return true }
	}
	return func(u *domain.User) bool {
		return strings.Contains(u.Login, searchTerm)
	}
}

// ResolveTaskFilter builds a predicate for the term. If the term parses
// as a calendar date, a task matches when its objective contains the
// term or its closing date falls on that day; otherwise only the
// objective substring applies. A task without a closing date never
// matches the date branch.
func ResolveTaskFilter(searchTerm string) TaskPredicate {
	if searchTerm == "" {
		return func(*domain.Task) bool { return true }
	}
	searchDate, isDate := parseSearchDate(searchTerm)
	return func(t *domain.Task) bool {
		if strings.Contains(t.Objective, searchTerm) {
			return true
		}
		if isDate && t.ClosingDate != nil {
			return sameDay(*t.ClosingDate, searchDate)
		}
		return false
	}
}

// FilterUsers returns the users accepted by the predicate, preserving
// input order.
func FilterUsers(users []domain.User, match UserPredicate) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		if match(&users[i]) {
			out = append(out, users[i])
		}
	}
	return out
}

// FilterTasks returns the tasks accepted by the predicate, preserving
// input order.
func FilterTasks(tasks []domain.Task, match TaskPredicate) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		if match(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

func parseSearchDate(term string) (time.Time, bool) {
	for _, layout := range searchDateLayouts {
		if d, err := time.Parse(layout, term); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
