package domain

import "time"

const (
	MaxLoginLength    = 50
	MinPasswordLength = 5
	MaxPasswordLength = 50
)

// User owns zero or more tasks. Tasks is populated by the repository on
// list/get so that task-count ordering works without extra round trips.
type User struct {
	UserID       int       `json:"user_id"`
	Login        string    `json:"login"`
	Password     string    `json:"-"`
	AdditionDate time.Time `json:"addition_date"`
	Tasks        []Task    `json:"tasks,omitempty"`
}

func (u *User) Validate() error {
	if u.Login == "" {
		return &ValidationError{Field: "login", Message: "login is required"}
	}
	if len(u.Login) > MaxLoginLength {
		return &ValidationError{Field: "login", Message: "login must be at most 50 characters"}
	}
	if len(u.Password) < MinPasswordLength || len(u.Password) > MaxPasswordLength {
		return &ValidationError{Field: "password", Message: "password must be between 5 and 50 characters"}
	}
	return nil
}
