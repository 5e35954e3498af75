package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

// Memory is an in-process store used for local runs and tests. It hands
// out copies so callers always work on a consistent snapshot.
type Memory struct {
	mu         sync.RWMutex
	users      map[int]domain.User
	tasks      map[int]domain.Task
	lastUserID int
	lastTaskID int
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[int]domain.User),
		tasks: make(map[int]domain.Task),
	}
}

// Users returns the user-repository view of the store.
func (m *Memory) Users() domain.UserRepository { return (*memoryUsers)(m) }

// Tasks returns the task-repository view of the store.
func (m *Memory) Tasks() domain.TaskRepository { return (*memoryTasks)(m) }

type memoryUsers Memory

type memoryTasks Memory

func (m *memoryUsers) List(_ context.Context) ([]domain.User, error) {
	s := (*Memory)(m)
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		u.Tasks = s.tasksOfLocked(u.UserID)
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (m *memoryUsers) GetByID(_ context.Context, id int) (*domain.User, error) {
	s := (*Memory)(m)
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Tasks = s.tasksOfLocked(id)
	return &u, nil
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == user.Login {
			return domain.ErrConflict
		}
	}
	s.lastUserID++
	user.UserID = s.lastUserID
	s.users[user.UserID] = *user
	return nil
}

func (m *memoryUsers) Update(_ context.Context, user *domain.User) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; !ok {
		return domain.ErrNotFound
	}
	for _, u := range s.users {
		if u.Login == user.Login && u.UserID != user.UserID {
			return domain.ErrConflict
		}
	}
	stored := *user
	stored.Tasks = nil
	s.users[user.UserID] = stored
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id int) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	// Cascade: tasks cannot outlive their owner.
	for taskID, t := range s.tasks {
		if t.UserID == id {
			delete(s.tasks, taskID)
		}
	}
	return nil
}

func (m *memoryTasks) List(_ context.Context) ([]domain.Task, error) {
	s := (*Memory)(m)
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].TaskID < tasks[j].TaskID })
	return tasks, nil
}

func (m *memoryTasks) GetByID(_ context.Context, id int) (*domain.Task, error) {
	s := (*Memory)(m)
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memoryTasks) Create(_ context.Context, task *domain.Task) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[task.UserID]; !ok {
		return domain.ErrConflict
	}
	s.lastTaskID++
	task.TaskID = s.lastTaskID
	s.tasks[task.TaskID] = *task
	return nil
}

func (m *memoryTasks) Update(_ context.Context, task *domain.Task) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.TaskID]; !ok {
		return domain.ErrNotFound
	}
	s.tasks[task.TaskID] = *task
	return nil
}

func (m *memoryTasks) Delete(_ context.Context, id int) error {
	s := (*Memory)(m)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Memory) tasksOfLocked(userID int) []domain.Task {
	var tasks []domain.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].TaskID < tasks[j].TaskID })
	return tasks
}
