package service

import (
	"context"
	"strings"
	"sync"

	"github.com/tododb/tododb-go/internal/model"
	"github.com/tododb/tododb-go/internal/repository"
)

// fakeTodoStore is an in-memory TodoStore that records how often it was called.
type fakeTodoStore struct {
	mu     sync.Mutex
	nextID int64
	todos  []model.Todo
	err    error
	calls  int
}

func (f *fakeTodoStore) List(_ context.Context, search string) ([]model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var out []model.Todo
	for _, t := range f.todos {
		if search == "" || strings.Contains(t.Task, search) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTodoStore) Create(_ context.Context, todo *model.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}

	f.nextID++
	todo.ID = f.nextID
	f.todos = append(f.todos, *todo)
	return nil
}

func (f *fakeTodoStore) Update(_ context.Context, id int64, task *string, completed *bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}

	for i := range f.todos {
		if f.todos[i].ID != id {
			continue
		}
		if task != nil {
			f.todos[i].Task = *task
		}
		if completed != nil {
			f.todos[i].Completed = *completed
		}
		return nil
	}
	return repository.ErrTodoNotFound
}

func (f *fakeTodoStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}

	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return repository.ErrTodoNotFound
}

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	mu        sync.Mutex
	nextID    int64
	users     map[string]model.User
	err       error
	createErr error
	creates   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}
