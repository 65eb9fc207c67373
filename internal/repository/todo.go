package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tododb/tododb-go/internal/model"
)

var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)

const (
	listTodosQuery       = `SELECT id, task, completed FROM todos ORDER BY id`
	searchTodosQuery     = `SELECT id, task, completed FROM todos WHERE task LIKE ? ESCAPE '!' ORDER BY id`
	insertTodoQuery      = `INSERT INTO todos (task, completed) VALUES (?, ?)`
	updateTaskQuery      = `UPDATE todos SET task = ? WHERE id = ?`
	updateCompletedQuery = `UPDATE todos SET completed = ? WHERE id = ?`
	updateTodoQuery      = `UPDATE todos SET task = ?, completed = ? WHERE id = ?`
	deleteTodoQuery      = `DELETE FROM todos WHERE id = ?`
)

// likeEscaper escapes LIKE wildcards so a search term matches literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// TodoRepository handles todo persistence operations.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns all todos, or only those whose task contains search when it is non-empty.
func (r *TodoRepository) List(ctx context.Context, search string) ([]model.Todo, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if search == "" {
		rows, err = r.db.QueryContext(ctx, listTodosQuery)
	} else {
		rows, err = r.db.QueryContext(ctx, searchTodosQuery, "%"+likeEscaper.Replace(search)+"%")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Task, &t.Completed); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Create inserts a new todo and sets the generated ID on the todo struct.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	result, err := r.db.ExecContext(ctx, insertTodoQuery, todo.Task, todo.Completed)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	todo.ID = id
	return nil
}

// Update sets the supplied fields of a todo in a single statement.
// Nil arguments are left untouched.
func (r *TodoRepository) Update(ctx context.Context, id int64, task *string, completed *bool) error {
	var (
		query string
		args  []any
	)
	switch {
	case task != nil && completed != nil:
		query, args = updateTodoQuery, []any{*task, *completed, id}
	case task != nil:
		query, args = updateTaskQuery, []any{*task, id}
	case completed != nil:
		query, args = updateCompletedQuery, []any{*completed, id}
	default:
		return ErrNothingToUpdate
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

// Delete removes a todo by ID.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteTodoQuery, id)
	if err != nil {
		return err
	}

	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
