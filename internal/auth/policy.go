// Package auth decides what a caller may do and extracts the caller
// identity from the request token.
package auth

import "github.com/MajjK/ToDoAppReact/internal/domain"

// Policy centralizes the ownership-or-admin rule. Every handler that
// needs an authorization decision asks here instead of branching inline.
type Policy struct{}

func NewPolicy() Policy {
	return Policy{}
}

// CanView reports whether the caller may read the task.
func (Policy) CanView(caller domain.Caller, task *domain.Task) bool {
	return caller.IsAdmin() || task.UserID == caller.ID
}

// CanMutate reports whether the caller may change or delete the task.
// The rule currently matches CanView; the operations stay separate so
// read-only sharing can diverge later without touching call sites.
func (Policy) CanMutate(caller domain.Caller, task *domain.Task) bool {
	return caller.IsAdmin() || task.UserID == caller.ID
}

// CanManageUser reports whether the caller may act on the given user's
// behalf, e.g. create a task under that user.
func (Policy) CanManageUser(caller domain.Caller, userID int) bool {
	return caller.IsAdmin() || userID == caller.ID
}
