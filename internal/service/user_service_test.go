package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/query"
	"github.com/MajjK/ToDoAppReact/internal/repository"
)

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(repository.NewMemory().Users())
	ctx := context.Background()

	tests := []struct {
		name  string
		user  domain.User
		field string
	}{
		{"missing login", domain.User{Password: "secret"}, "login"},
		{"short password", domain.User{Login: "alice", Password: "abcd"}, "password"},
		{"long password", domain.User{Login: "alice", Password: longString(51)}, "password"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, &tc.user)
			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestUserCreateDuplicateLoginConflicts(t *testing.T) {
	svc := NewUserService(repository.NewMemory().Users())
	ctx := context.Background()

	first := domain.User{Login: "alice", Password: "secret"}
	require.NoError(t, svc.Create(ctx, &first))
	assert.NotZero(t, first.UserID)
	assert.False(t, first.AdditionDate.IsZero())

	second := domain.User{Login: "alice", Password: "secret"}
	assert.ErrorIs(t, svc.Create(ctx, &second), domain.ErrConflict)
}

func TestUserListWithTaskCounts(t *testing.T) {
	mem := repository.NewMemory()
	svc := NewUserService(mem.Users())
	ctx := context.Background()

	for _, login := range []string{"alice", "bob"} {
		u := domain.User{Login: login, Password: "secret"}
		require.NoError(t, mem.Users().Create(ctx, &u))
	}
	for i := 0; i < 2; i++ {
		task := domain.Task{UserID: 2, Objective: "task of bob"}
		require.NoError(t, mem.Tasks().Create(ctx, &task))
	}

	page, err := svc.List(ctx, query.ListRequest{SortOrder: "tasks_desc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "bob", page.Items[0].Login)
	assert.Len(t, page.Items[0].Tasks, 2)
}

func TestUserDeleteCascadesTasks(t *testing.T) {
	mem := repository.NewMemory()
	svc := NewUserService(mem.Users())
	ctx := context.Background()

	u := domain.User{Login: "alice", Password: "secret"}
	require.NoError(t, mem.Users().Create(ctx, &u))
	task := domain.Task{UserID: u.UserID, Objective: "doomed"}
	require.NoError(t, mem.Tasks().Create(ctx, &task))

	require.NoError(t, svc.Delete(ctx, u.UserID))

	_, err := mem.Tasks().GetByID(ctx, task.TaskID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserGetMissing(t *testing.T) {
	svc := NewUserService(repository.NewMemory().Users())
	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
