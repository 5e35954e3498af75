// Package query is the decision core of the app: it resolves sort keys
// and search terms, restricts task listings to what the caller may see,
// and pages the result. Everything here is a pure computation over a
// snapshot handed in by the repository; nothing logs or touches I/O.
package query

import "github.com/MajjK/ToDoAppReact/internal/domain"

// ListRequest carries the caller-controlled listing parameters.
//
// Search is nullable on purpose: a present term (even an empty one) is a
// new search and resets paging to page 1, while an absent term reuses
// CurrentFilter and honors the requested page.
type ListRequest struct {
	Caller        domain.Caller
	SortOrder     string
	Search        *string
	CurrentFilter string
	Page          int
}

// Term returns the effective filter term and the page number to use.
func (r ListRequest) Term() (string, int) {
	if r.Search != nil {
		return *r.Search, 1
	}
	return r.CurrentFilter, r.Page
}

// Tasks runs the task pipeline over a snapshot: filter, ownership scope,
// sort, paginate — in that fixed order. Scoping before sorting keeps the
// pagination counts limited to tasks the caller may see; non-admin
// callers never observe anyone else's tasks, not even as a total.
func Tasks(tasks []domain.Task, req ListRequest) Page[domain.Task] {
	term, page := req.Term()

	tasks = FilterTasks(tasks, ResolveTaskFilter(term))
	tasks = ScopeTasks(tasks, req.Caller)
	ResolveTaskSort(req.SortOrder).SortTasks(tasks)
	return Paginate(tasks, page, DefaultPageSize)
}

// Users runs the user pipeline: filter, sort, paginate. User listings
// have no ownership scope; access to them is gated upstream.
func Users(users []domain.User, req ListRequest) Page[domain.User] {
	term, page := req.Term()

	users = FilterUsers(users, ResolveUserFilter(term))
	ResolveUserSort(req.SortOrder).SortUsers(users)
	return Paginate(users, page, DefaultPageSize)
}

// ScopeTasks narrows tasks to those the caller owns. Admins see the
// whole set; this is a scope restriction on the collection, not a
// per-item policy check.
func ScopeTasks(tasks []domain.Task, caller domain.Caller) []domain.Task {
	if caller.IsAdmin() {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.UserID == caller.ID {
			out = append(out, t)
		}
	}
	return out
}
