package query

import (
	"sort"
	"time"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

// Field names an entity attribute an OrderingRule can order by.
type Field string

const (
	FieldLogin        Field = "login"
	FieldAdditionDate Field = "addition_date"
	FieldTaskCount    Field = "task_count"
	FieldObjective    Field = "objective"
	FieldClosingDate  Field = "closing_date"
	FieldFinished     Field = "finished"
)

// Clause is one (field, direction) pair of an ordering rule.
type Clause struct {
	Field Field
	Desc  bool
}

// OrderingRule is an ordered list of clauses applied lexicographically:
// later clauses only break ties left by earlier ones.
type OrderingRule []Clause

// ResolveUserSort maps a requested sort key to an ordering rule over
// users. Unknown or empty keys fall back to login descending; no key is
// ever an error.
func ResolveUserSort(sortKey string) OrderingRule {
	switch sortKey {
	case "login":
		return OrderingRule{{Field: FieldLogin}}
	case "date":
		return OrderingRule{{Field: FieldAdditionDate}}
	case "date_desc":
		return OrderingRule{{Field: FieldAdditionDate, Desc: true}}
	case "tasks":
		return OrderingRule{{Field: FieldTaskCount}}
	case "tasks_desc":
		return OrderingRule{{Field: FieldTaskCount, Desc: true}}
	default:
		return OrderingRule{{Field: FieldLogin, Desc: true}}
	}
}

// ResolveTaskSort maps a requested sort key to an ordering rule over
// tasks. The "finish" rule (unfinished first, then by closing date) is
// also the default.
func ResolveTaskSort(sortKey string) OrderingRule {
	switch sortKey {
	case "objective":
		return OrderingRule{{Field: FieldObjective}}
	case "objective_desc":
		return OrderingRule{{Field: FieldObjective, Desc: true}}
	case "date":
		return OrderingRule{{Field: FieldClosingDate}, {Field: FieldFinished, Desc: true}}
	case "date_desc":
		return OrderingRule{{Field: FieldClosingDate, Desc: true}, {Field: FieldFinished, Desc: true}}
	default: // "finish" and anything unrecognized
		return OrderingRule{{Field: FieldFinished}, {Field: FieldClosingDate}}
	}
}

// SortUsers orders users in place by the rule, stably.
func (r OrderingRule) SortUsers(users []domain.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return r.lessUser(&users[i], &users[j])
	})
}

// SortTasks orders tasks in place by the rule, stably.
func (r OrderingRule) SortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return r.lessTask(&tasks[i], &tasks[j])
	})
}

func (r OrderingRule) lessUser(a, b *domain.User) bool {
	for _, c := range r {
		var cmp int
		switch c.Field {
		case FieldLogin:
			cmp = compareStrings(a.Login, b.Login)
		case FieldAdditionDate:
			cmp = compareTimes(a.AdditionDate, b.AdditionDate)
		case FieldTaskCount:
			cmp = compareInts(len(a.Tasks), len(b.Tasks))
		}
		if c.Desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
	}
	return false
}

func (r OrderingRule) lessTask(a, b *domain.Task) bool {
	for _, c := range r {
		var cmp int
		switch c.Field {
		case FieldObjective:
			cmp = compareStrings(a.Objective, b.Objective)
		case FieldClosingDate:
			cmp = compareClosingDates(a.ClosingDate, b.ClosingDate)
		case FieldFinished:
			cmp = compareBools(a.Finished, b.Finished)
		}
		if c.Desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
	}
	return false
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// A missing closing date is the lowest value: first under ascending
// order, last under descending.
func compareClosingDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compareTimes(*a, *b)
}
