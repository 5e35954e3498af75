package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

func TestUserFilter(t *testing.T) {
	users := []domain.User{
		{UserID: 1, Login: "alice"},
		{UserID: 2, Login: "malice"},
		{UserID: 3, Login: "bob"},
	}

	got := FilterUsers(users, ResolveUserFilter("alice"))
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Login)
	assert.Equal(t, "malice", got[1].Login)

	all := FilterUsers(users, ResolveUserFilter(""))
	assert.Len(t, all, len(users))
}

func TestUserFilterCaseSensitive(t *testing.T) {
	users := []domain.User{{UserID: 1, Login: "Alice"}}

	assert.Empty(t, FilterUsers(users, ResolveUserFilter("alice")))
	assert.Len(t, FilterUsers(users, ResolveUserFilter("Alice")), 1)
}

func TestTaskFilterObjectiveSubstring(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, Objective: "buy milk"},
		{TaskID: 2, Objective: "wash car"},
		{TaskID: 3, Objective: "buy bread"},
	}

	got := FilterTasks(tasks, ResolveTaskFilter("buy"))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TaskID)
	assert.Equal(t, 3, got[1].TaskID)
}

// A date-shaped term matches on objective text OR the closing day.
func TestTaskFilterDateTerm(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, Objective: "buy milk", ClosingDate: datePtr("2024-01-15")},
		{TaskID: 2, Objective: "2024-01-15 report", ClosingDate: datePtr("2024-03-01")},
		{TaskID: 3, Objective: "wash car", ClosingDate: datePtr("2024-02-01")},
		{TaskID: 4, Objective: "no closing date"},
	}

	got := FilterTasks(tasks, ResolveTaskFilter("2024-01-15"))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TaskID)
	assert.Equal(t, 2, got[1].TaskID)
}

func TestTaskFilterNilClosingDateNeverMatchesDate(t *testing.T) {
	tasks := []domain.Task{{TaskID: 1, Objective: "buy milk"}}
	assert.Empty(t, FilterTasks(tasks, ResolveTaskFilter("2024-01-15")))
}

func TestTaskFilterIdempotent(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, Objective: "buy milk"},
		{TaskID: 2, Objective: "wash car"},
		{TaskID: 3, Objective: "buy bread", ClosingDate: datePtr("2024-01-15")},
	}

	for _, term := range []string{"", "buy", "2024-01-15", "nothing matches this"} {
		pred := ResolveTaskFilter(term)
		once := FilterTasks(tasks, pred)
		twice := FilterTasks(once, pred)
		assert.Equal(t, once, twice, "term %q", term)
	}
}

func TestTaskFilterEmptyTermAcceptsAll(t *testing.T) {
	tasks := []domain.Task{{TaskID: 1}, {TaskID: 2}}
	assert.Len(t, FilterTasks(tasks, ResolveTaskFilter("")), 2)
}
