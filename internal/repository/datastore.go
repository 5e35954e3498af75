package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/datastore"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

const (
	kindUser = "User"
	kindTask = "Task"
)

// Datastore backs the repositories with Google Cloud Datastore. Entity
// IDs are datastore-allocated int64 keys truncated to int, matching the
// integer identities of the relational schema.
type Datastore struct {
	ds *datastore.Client
}

// NewDatastore creates the client. DATASTORE_EMULATOR_HOST is honored
// automatically by the official client; printed here for visibility
// during development.
func NewDatastore(ctx context.Context, projectID string) (*Datastore, error) {
	if emulatorHost := os.Getenv("DATASTORE_EMULATOR_HOST"); emulatorHost != "" {
		fmt.Printf("Initializing Datastore client against emulator at %s\n", emulatorHost)
	}
	ds, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}
	return &Datastore{ds: ds}, nil
}

func (d *Datastore) Close() error {
	return d.ds.Close()
}

func (d *Datastore) Users() domain.UserRepository { return &datastoreUsers{ds: d.ds} }

func (d *Datastore) Tasks() domain.TaskRepository { return &datastoreTasks{ds: d.ds} }

type dsUser struct {
	Login        string    `datastore:"login"`
	Password     string    `datastore:"password,noindex"`
	AdditionDate time.Time `datastore:"addition_date"`
}

type dsTask struct {
	UserID       int64      `datastore:"user_id"`
	Objective    string     `datastore:"objective"`
	Description  string     `datastore:"description,noindex"`
	AdditionDate time.Time  `datastore:"addition_date"`
	ClosingDate  *time.Time `datastore:"closing_date"`
	Finished     bool       `datastore:"finished"`
}

type datastoreUsers struct {
	ds *datastore.Client
}

type datastoreTasks struct {
	ds *datastore.Client
}

func (r *datastoreUsers) List(ctx context.Context) ([]domain.User, error) {
	var entities []dsUser
	keys, err := r.ds.GetAll(ctx, datastore.NewQuery(kindUser), &entities)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(entities))
	index := map[int]int{}
	for i, e := range entities {
		users[i] = e.toDomain(keys[i].ID)
		index[users[i].UserID] = i
	}

	var taskEntities []dsTask
	taskKeys, err := r.ds.GetAll(ctx, datastore.NewQuery(kindTask), &taskEntities)
	if err != nil {
		return nil, err
	}
	for i, e := range taskEntities {
		t := e.toDomain(taskKeys[i].ID)
		if j, ok := index[t.UserID]; ok {
			users[j].Tasks = append(users[j].Tasks, t)
		}
	}
	return users, nil
}

func (r *datastoreUsers) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var e dsUser
	if err := r.ds.Get(ctx, datastore.IDKey(kindUser, int64(id), nil), &e); err != nil {
		return nil, mapDatastoreError(err)
	}
	user := e.toDomain(int64(id))

	var taskEntities []dsTask
	q := datastore.NewQuery(kindTask).Filter("user_id =", int64(id))
	taskKeys, err := r.ds.GetAll(ctx, q, &taskEntities)
	if err != nil {
		return nil, err
	}
	for i, te := range taskEntities {
		user.Tasks = append(user.Tasks, te.toDomain(taskKeys[i].ID))
	}
	return &user, nil
}

func (r *datastoreUsers) Create(ctx context.Context, user *domain.User) error {
	key, err := r.ds.Put(ctx, datastore.IncompleteKey(kindUser, nil), fromDomainUser(user))
	if err != nil {
		return mapDatastoreError(err)
	}
	user.UserID = int(key.ID)
	return nil
}

func (r *datastoreUsers) Update(ctx context.Context, user *domain.User) error {
	key := datastore.IDKey(kindUser, int64(user.UserID), nil)
	var existing dsUser
	if err := r.ds.Get(ctx, key, &existing); err != nil {
		return mapDatastoreError(err)
	}
	_, err := r.ds.Put(ctx, key, fromDomainUser(user))
	return mapDatastoreError(err)
}

func (r *datastoreUsers) Delete(ctx context.Context, id int) error {
	key := datastore.IDKey(kindUser, int64(id), nil)
	var existing dsUser
	if err := r.ds.Get(ctx, key, &existing); err != nil {
		return mapDatastoreError(err)
	}
	if err := r.ds.Delete(ctx, key); err != nil {
		return mapDatastoreError(err)
	}

	// Cascade owned tasks; datastore has no foreign keys to do it.
	q := datastore.NewQuery(kindTask).Filter("user_id =", int64(id)).KeysOnly()
	taskKeys, err := r.ds.GetAll(ctx, q, nil)
	if err != nil {
		return err
	}
	return r.ds.DeleteMulti(ctx, taskKeys)
}

func (r *datastoreTasks) List(ctx context.Context) ([]domain.Task, error) {
	var entities []dsTask
	keys, err := r.ds.GetAll(ctx, datastore.NewQuery(kindTask), &entities)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, len(entities))
	for i, e := range entities {
		tasks[i] = e.toDomain(keys[i].ID)
	}
	return tasks, nil
}

func (r *datastoreTasks) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	var e dsTask
	if err := r.ds.Get(ctx, datastore.IDKey(kindTask, int64(id), nil), &e); err != nil {
		return nil, mapDatastoreError(err)
	}
	task := e.toDomain(int64(id))
	return &task, nil
}

func (r *datastoreTasks) Create(ctx context.Context, task *domain.Task) error {
	key, err := r.ds.Put(ctx, datastore.IncompleteKey(kindTask, nil), fromDomainTask(task))
	if err != nil {
		return mapDatastoreError(err)
	}
	task.TaskID = int(key.ID)
	return nil
}

func (r *datastoreTasks) Update(ctx context.Context, task *domain.Task) error {
	key := datastore.IDKey(kindTask, int64(task.TaskID), nil)
	var existing dsTask
	if err := r.ds.Get(ctx, key, &existing); err != nil {
		return mapDatastoreError(err)
	}
	_, err := r.ds.Put(ctx, key, fromDomainTask(task))
	return mapDatastoreError(err)
}

func (r *datastoreTasks) Delete(ctx context.Context, id int) error {
	key := datastore.IDKey(kindTask, int64(id), nil)
	var existing dsTask
	if err := r.ds.Get(ctx, key, &existing); err != nil {
		return mapDatastoreError(err)
	}
	return mapDatastoreError(r.ds.Delete(ctx, key))
}

func (e dsUser) toDomain(id int64) domain.User {
	return domain.User{
		UserID:       int(id),
		Login:        e.Login,
		Password:     e.Password,
		AdditionDate: e.AdditionDate,
	}
}

func fromDomainUser(u *domain.User) *dsUser {
	return &dsUser{
		Login:        u.Login,
		Password:     u.Password,
		AdditionDate: u.AdditionDate,
	}
}

func (e dsTask) toDomain(id int64) domain.Task {
	return domain.Task{
		TaskID:       int(id),
		UserID:       int(e.UserID),
		Objective:    e.Objective,
		Description:  e.Description,
		AdditionDate: e.AdditionDate,
		ClosingDate:  e.ClosingDate,
		Finished:     e.Finished,
	}
}

func fromDomainTask(t *domain.Task) *dsTask {
	return &dsTask{
		UserID:       int64(t.UserID),
		Objective:    t.Objective,
		Description:  t.Description,
		AdditionDate: t.AdditionDate,
		ClosingDate:  t.ClosingDate,
		Finished:     t.Finished,
	}
}

func mapDatastoreError(err error) error {
	if errors.Is(err, datastore.ErrNoSuchEntity) {
		return domain.ErrNotFound
	}
	return err
}
