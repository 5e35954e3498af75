package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/query"
	"github.com/MajjK/ToDoAppReact/internal/repository"
)

func newTestService(t *testing.T) (TaskService, *repository.Memory) {
	t.Helper()
	mem := repository.NewMemory()
	for _, login := range []string{"userA", "userB"} {
		u := domain.User{Login: login, Password: "secret"}
		require.NoError(t, mem.Users().Create(context.Background(), &u))
	}
	return NewTaskService(mem.Tasks(), auth.NewPolicy()), mem
}

func seedTask(t *testing.T, mem *repository.Memory, userID int, objective string) domain.Task {
	t.Helper()
	task := domain.Task{UserID: userID, Objective: objective}
	require.NoError(t, mem.Tasks().Create(context.Background(), &task))
	return task
}

// A non-admin asking for someone else's task gets the same answer as
// for a task that does not exist.
func TestGetDeniedLooksLikeMissing(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	task := seedTask(t, mem, 1, "private task of A")

	_, errDenied := svc.Get(ctx, domain.Caller{ID: 2, Role: "user"}, task.TaskID)
	_, errMissing := svc.Get(ctx, domain.Caller{ID: 2, Role: "user"}, 99999)

	assert.ErrorIs(t, errDenied, domain.ErrNotFound)
	assert.ErrorIs(t, errMissing, domain.ErrNotFound)
	assert.Equal(t, errMissing.Error(), errDenied.Error())
}

func TestGetOwnerAndAdmin(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	task := seedTask(t, mem, 1, "task of A")

	got, err := svc.Get(ctx, domain.Caller{ID: 1, Role: "user"}, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskID, got.TaskID)

	got, err = svc.Get(ctx, domain.Caller{ID: 42, Role: domain.RoleAdmin}, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskID, got.TaskID)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	caller := domain.Caller{ID: 1, Role: "user"}

	tests := []struct {
		name  string
		task  domain.Task
		field string
	}{
		{"missing objective", domain.Task{UserID: 1}, "objective"},
		{"objective too long", domain.Task{UserID: 1, Objective: longString(256)}, "objective"},
		{"description too long", domain.Task{UserID: 1, Objective: "ok", Description: longString(51)}, "description"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, caller, &tc.task)
			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestCreateForOtherUserDenied(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task := domain.Task{UserID: 2, Objective: "sneaky"}
	err := svc.Create(ctx, domain.Caller{ID: 1, Role: "user"}, &task)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Admins may create tasks under any user.
	task = domain.Task{UserID: 2, Objective: "assigned by admin"}
	require.NoError(t, svc.Create(ctx, domain.Caller{ID: 9, Role: domain.RoleAdmin}, &task))
	assert.NotZero(t, task.TaskID)
	assert.False(t, task.AdditionDate.IsZero())
}

func TestUpdateKeepsOwnership(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	task := seedTask(t, mem, 1, "task of A")

	update := domain.Task{TaskID: task.TaskID, UserID: 2, Objective: "renamed", Finished: true}
	require.NoError(t, svc.Update(ctx, domain.Caller{ID: 1, Role: "user"}, &update))

	stored, err := mem.Tasks().GetByID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UserID, "ownership must not be reassigned")
	assert.Equal(t, "renamed", stored.Objective)
	assert.True(t, stored.Finished)
}

func TestUpdateAndDeleteDeniedForOthers(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	task := seedTask(t, mem, 1, "task of A")
	other := domain.Caller{ID: 2, Role: "user"}

	update := domain.Task{TaskID: task.TaskID, Objective: "hijack"}
	assert.ErrorIs(t, svc.Update(ctx, other, &update), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, other, task.TaskID), domain.ErrNotFound)

	// Still there.
	_, err := mem.Tasks().GetByID(ctx, task.TaskID)
	assert.NoError(t, err)
}

func TestListScopesToCaller(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		seedTask(t, mem, 1, "task of A")
	}
	seedTask(t, mem, 2, "task of B")

	page, err := svc.List(ctx, query.ListRequest{Caller: domain.Caller{ID: 1, Role: "user"}})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	for _, item := range page.Items {
		assert.Equal(t, 1, item.UserID)
	}

	page, err = svc.List(ctx, query.ListRequest{Caller: domain.Caller{ID: 9, Role: domain.RoleAdmin}})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
}

func TestExportScopedAndOrdered(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	seedTask(t, mem, 1, "b task")
	seedTask(t, mem, 1, "a task")
	seedTask(t, mem, 2, "foreign")

	tasks, err := svc.Export(ctx, domain.Caller{ID: 1, Role: "user"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, 1, task.UserID)
	}
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
