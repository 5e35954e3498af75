// Package repository provides the persistence backends behind the
// domain repository interfaces: postgres for deployments, Cloud
// Datastore as an alternative, and an in-memory store for local runs
// and tests.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

type PostgresUserRepository struct {
	db *sql.DB
}

type PostgresTaskRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

const taskColumns = "task_id, user_id, objective, description, addition_date, closing_date, finished"

func (r *PostgresUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, login, password, addition_date
		FROM users
		ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	index := map[int]int{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.UserID, &u.Login, &u.Password, &u.AdditionDate); err != nil {
			return nil, err
		}
		index[u.UserID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach owned tasks; task-count ordering depends on them.
	taskRows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY task_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for users: %w", err)
	}
	defer taskRows.Close()
	for taskRows.Next() {
		t, err := scanTask(taskRows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[t.UserID]; ok {
			users[i].Tasks = append(users[i].Tasks, t)
		}
	}
	return users, taskRows.Err()
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, login, password, addition_date
		FROM users
		WHERE user_id = $1`, id).
		Scan(&u.UserID, &u.Login, &u.Password, &u.AdditionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY task_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		u.Tasks = append(u.Tasks, t)
	}
	return &u, rows.Err()
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (login, password, addition_date)
		VALUES ($1, $2, $3)
		RETURNING user_id`,
		user.Login, user.Password, user.AdditionDate).
		Scan(&user.UserID)
	return wrapWriteError(err)
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET login = $2, password = $3, addition_date = $4
		WHERE user_id = $1`,
		user.UserID, user.Login, user.Password, user.AdditionDate)
	if err != nil {
		return wrapWriteError(err)
	}
	return requireRow(res)
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return wrapWriteError(err)
	}
	return requireRow(res)
}

func (r *PostgresTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY task_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepository) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE task_id = $1`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tasks (user_id, objective, description, addition_date, closing_date, finished)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id`,
		task.UserID, task.Objective, nullString(task.Description), task.AdditionDate, task.ClosingDate, task.Finished).
		Scan(&task.TaskID)
	return wrapWriteError(err)
}

func (r *PostgresTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET objective = $2, description = $3, addition_date = $4, closing_date = $5, finished = $6
		WHERE task_id = $1`,
		task.TaskID, task.Objective, nullString(task.Description), task.AdditionDate, task.ClosingDate, task.Finished)
	if err != nil {
		return wrapWriteError(err)
	}
	return requireRow(res)
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		return wrapWriteError(err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var t domain.Task
	var description sql.NullString
	err := row.Scan(&t.TaskID, &t.UserID, &t.Objective, &description, &t.AdditionDate, &t.ClosingDate, &t.Finished)
	if err != nil {
		return domain.Task{}, err
	}
	t.Description = description.String
	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// wrapWriteError maps driver constraint violations to the generic
// conflict error; the cause is deliberately not classified further.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return domain.ErrConflict
	}
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
