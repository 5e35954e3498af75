package service

import (
	"context"
	"time"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/query"
)

type TaskService interface {
	List(ctx context.Context, req query.ListRequest) (query.Page[domain.Task], error)
	Get(ctx context.Context, caller domain.Caller, id int) (*domain.Task, error)
	Create(ctx context.Context, caller domain.Caller, task *domain.Task) error
	Update(ctx context.Context, caller domain.Caller, task *domain.Task) error
	Delete(ctx context.Context, caller domain.Caller, id int) error
	Export(ctx context.Context, caller domain.Caller) ([]domain.Task, error)
}

type taskService struct {
	repo   domain.TaskRepository
	policy auth.Policy
}

func NewTaskService(repo domain.TaskRepository, policy auth.Policy) TaskService {
	return &taskService{repo: repo, policy: policy}
}

func (s *taskService) List(ctx context.Context, req query.ListRequest) (query.Page[domain.Task], error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return query.Page[domain.Task]{}, err
	}
	return query.Tasks(tasks, req), nil
}

// Get hides denied tasks behind ErrNotFound so that callers cannot
// probe for the existence of other users' tasks.
func (s *taskService) Get(ctx context.Context, caller domain.Caller, id int) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanView(caller, task) {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (s *taskService) Create(ctx context.Context, caller domain.Caller, task *domain.Task) error {
	if !s.policy.CanManageUser(caller, task.UserID) {
		return domain.ErrNotFound
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if task.AdditionDate.IsZero() {
		task.AdditionDate = time.Now()
	}
	task.TaskID = 0
	return s.repo.Create(ctx, task)
}

func (s *taskService) Update(ctx context.Context, caller domain.Caller, task *domain.Task) error {
	current, err := s.repo.GetByID(ctx, task.TaskID)
	if err != nil {
		return err
	}
	if !s.policy.CanMutate(caller, current) {
		return domain.ErrNotFound
	}

	// Ownership never changes after creation.
	task.UserID = current.UserID
	if task.AdditionDate.IsZero() {
		task.AdditionDate = current.AdditionDate
	}
	if err := task.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, caller domain.Caller, id int) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.CanMutate(caller, current) {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Export returns every task the caller may see, in the default order,
// without pagination. Used by the xlsx report.
func (s *taskService) Export(ctx context.Context, caller domain.Caller) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks = query.ScopeTasks(tasks, caller)
	query.ResolveTaskSort("").SortTasks(tasks)
	return tasks, nil
}
