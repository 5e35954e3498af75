package domain

import "context"

// UserRepository is the persistence capability the query core reads
// from. List returns every user with owned tasks attached.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error
}

type TaskRepository interface {
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id int) (*Task, error)
	Create(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id int) error
}
