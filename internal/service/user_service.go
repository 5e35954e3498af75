package service

import (
	"context"
	"time"

	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/query"
)

type UserService interface {
	List(ctx context.Context, req query.ListRequest) (query.Page[domain.User], error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
}

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, req query.ListRequest) (query.Page[domain.User], error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return query.Page[domain.User]{}, err
	}
	return query.Users(users, req), nil
}

func (s *userService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if user.AdditionDate.IsZero() {
		user.AdditionDate = time.Now()
	}
	user.UserID = 0
	return s.repo.Create(ctx, user)
}

func (s *userService) Update(ctx context.Context, user *domain.User) error {
	current, err := s.repo.GetByID(ctx, user.UserID)
	if err != nil {
		return err
	}
	if user.AdditionDate.IsZero() {
		user.AdditionDate = current.AdditionDate
	}
	if err := user.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, user)
}

// Delete removes the user; owned tasks go with them, which is the
// store's cascade to enforce.
func (s *userService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
