package service

import (
	"context"

	"github.com/tododb/tododb-go/internal/model"
)

// TodoStore is the persistence capability the todo service needs.
// *repository.TodoRepository satisfies it.
type TodoStore interface {
	List(ctx context.Context, search string) ([]model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) error
	Update(ctx context.Context, id int64, task *string, completed *bool) error
	Delete(ctx context.Context, id int64) error
}

// UserStore is the persistence capability the auth service needs.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
