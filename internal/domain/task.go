package domain

import "time"

const (
	MaxObjectiveLength   = 255
	MaxDescriptionLength = 50
)

// Task belongs to exactly one user. Ownership is set at creation and
// never reassigned afterwards.
type Task struct {
	TaskID       int        `json:"task_id"`
	UserID       int        `json:"user_id"`
	Objective    string     `json:"objective"`
	Description  string     `json:"description,omitempty"`
	AdditionDate time.Time  `json:"addition_date"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`
	Finished     bool       `json:"finished"`
}

func (t *Task) Validate() error {
	if t.UserID == 0 {
		return &ValidationError{Field: "user_id", Message: "owner is required"}
	}
	if t.Objective == "" {
		return &ValidationError{Field: "objective", Message: "objective is required"}
	}
	if len(t.Objective) > MaxObjectiveLength {
		return &ValidationError{Field: "objective", Message: "objective must be at most 255 characters"}
	}
	if len(t.Description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: "description must be at most 50 characters"}
	}
	return nil
}
