package model

// Todo represents a task record in the database.
type Todo struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// CreateTodoRequest represents a todo creation request.
type CreateTodoRequest struct {
	Task string `json:"task"`
}

// UpdateTodoRequest represents a partial todo update.
// Nil pointers mark fields the client did not send; an explicit false for
// Completed is still an update.
type UpdateTodoRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

// TodoListResponse wraps the todo list returned by GET /api/todos.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
