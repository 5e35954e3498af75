package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestUserSortKeys(t *testing.T) {
	users := []domain.User{
		{UserID: 1, Login: "bob", AdditionDate: date("2024-03-01"), Tasks: make([]domain.Task, 3)},
		{UserID: 2, Login: "alice", AdditionDate: date("2024-01-01"), Tasks: make([]domain.Task, 1)},
		{UserID: 3, Login: "carol", AdditionDate: date("2024-02-01")},
	}

	tests := []struct {
		sortKey string
		want    []string
	}{
		{"login", []string{"alice", "bob", "carol"}},
		{"date", []string{"alice", "carol", "bob"}},
		{"date_desc", []string{"bob", "carol", "alice"}},
		{"tasks", []string{"carol", "alice", "bob"}},
		{"tasks_desc", []string{"bob", "alice", "carol"}},
		{"", []string{"carol", "bob", "alice"}},
		{"bogus", []string{"carol", "bob", "alice"}},
	}
	for _, tc := range tests {
		t.Run("key="+tc.sortKey, func(t *testing.T) {
			sorted := append([]domain.User(nil), users...)
			ResolveUserSort(tc.sortKey).SortUsers(sorted)
			got := make([]string, len(sorted))
			for i, u := range sorted {
				got[i] = u.Login
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTaskSortKeys(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, Objective: "wash car", ClosingDate: datePtr("2024-05-01"), Finished: true},
		{TaskID: 2, Objective: "buy milk", ClosingDate: datePtr("2024-04-01")},
		{TaskID: 3, Objective: "call mom", ClosingDate: datePtr("2024-06-01")},
	}

	tests := []struct {
		sortKey string
		want    []int
	}{
		{"objective", []int{2, 3, 1}},
		{"objective_desc", []int{1, 3, 2}},
		{"date", []int{2, 1, 3}},
		{"date_desc", []int{3, 1, 2}},
		{"finish", []int{2, 3, 1}},
		{"", []int{2, 3, 1}},
	}
	for _, tc := range tests {
		t.Run("key="+tc.sortKey, func(t *testing.T) {
			sorted := append([]domain.Task(nil), tasks...)
			ResolveTaskSort(tc.sortKey).SortTasks(sorted)
			got := make([]int, len(sorted))
			for i, task := range sorted {
				got[i] = task.TaskID
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

// Complementary keys must produce exactly reversed sequences when there
// are no ties.
func TestSortComplementaryKeysReverse(t *testing.T) {
	users := []domain.User{
		{UserID: 1, Login: "a", AdditionDate: date("2024-01-03")},
		{UserID: 2, Login: "b", AdditionDate: date("2024-01-01")},
		{UserID: 3, Login: "c", AdditionDate: date("2024-01-02")},
	}

	asc := append([]domain.User(nil), users...)
	desc := append([]domain.User(nil), users...)
	ResolveUserSort("date").SortUsers(asc)
	ResolveUserSort("date_desc").SortUsers(desc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].UserID, desc[len(desc)-1-i].UserID)
	}

	tasks := []domain.Task{
		{TaskID: 1, Objective: "b"},
		{TaskID: 2, Objective: "c"},
		{TaskID: 3, Objective: "a"},
	}
	ascT := append([]domain.Task(nil), tasks...)
	descT := append([]domain.Task(nil), tasks...)
	ResolveTaskSort("objective").SortTasks(ascT)
	ResolveTaskSort("objective_desc").SortTasks(descT)
	for i := range ascT {
		assert.Equal(t, ascT[i].TaskID, descT[len(descT)-1-i].TaskID)
	}
}

// A missing closing date is the lowest value: first ascending, last
// descending.
func TestTaskSortNilClosingDate(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, ClosingDate: datePtr("2024-05-01")},
		{TaskID: 2},
		{TaskID: 3, ClosingDate: datePtr("2024-04-01")},
	}

	asc := append([]domain.Task(nil), tasks...)
	ResolveTaskSort("date").SortTasks(asc)
	assert.Equal(t, 2, asc[0].TaskID)

	desc := append([]domain.Task(nil), tasks...)
	ResolveTaskSort("date_desc").SortTasks(desc)
	assert.Equal(t, 2, desc[len(desc)-1].TaskID)
}

func TestTaskSortFinishTieBreaks(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: 1, Finished: true, ClosingDate: datePtr("2024-01-01")},
		{TaskID: 2, Finished: false, ClosingDate: datePtr("2024-02-01")},
		{TaskID: 3, Finished: false, ClosingDate: datePtr("2024-01-15")},
		{TaskID: 4, Finished: true, ClosingDate: datePtr("2024-01-10")},
	}
	ResolveTaskSort("finish").SortTasks(tasks)

	got := make([]int, len(tasks))
	for i, task := range tasks {
		got[i] = task.TaskID
	}
	// Unfinished first by closing date, then finished by closing date.
	assert.Equal(t, []int{3, 2, 1, 4}, got)
}
