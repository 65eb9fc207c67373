package service

import (
	"context"
	"errors"

	"github.com/tododb/tododb-go/internal/model"
	"github.com/tododb/tododb-go/internal/repository"
)

var (
	ErrTaskRequired   = errors.New("task is required")
	ErrNoUpdateFields = errors.New("task or completed status is required for update")
	ErrTodoNotFound   = errors.New("todo not found")
)

// TodoService handles todo business logic.
type TodoService struct {
	store TodoStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(store TodoStore) *TodoService {
	return &TodoService{store: store}
}

// ListTodos returns every todo, filtered to tasks containing search when it is non-empty.
func (s *TodoService) ListTodos(ctx context.Context, search string) (model.TodoListResponse, error) {
	todos, err := s.store.List(ctx, search)
	if err != nil {
		return model.TodoListResponse{}, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}

	return model.TodoListResponse{Todos: todos}, nil
}

// CreateTodo inserts a new, not yet completed todo.
func (s *TodoService) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.Todo, error) {
	if req.Task == "" {
		return model.Todo{}, ErrTaskRequired
	}

	todo := model.Todo{Task: req.Task, Completed: false}
	if err := s.store.Create(ctx, &todo); err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}

// UpdateTodo applies every supplied field of req to the todo in one statement.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, req model.UpdateTodoRequest) error {
	if req.Task == nil && req.Completed == nil {
		return ErrNoUpdateFields
	}
	if req.Task != nil && *req.Task == "" {
		return ErrTaskRequired
	}

	err := s.store.Update(ctx, id, req.Task, req.Completed)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return err
}

// DeleteTodo removes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return err
}
