package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tododb/tododb-go/internal/model"
	"github.com/tododb/tododb-go/internal/service"
)

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleList handles GET /api/todos requests.
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	resp, err := h.service.ListTodos(r.Context(), search)
	if err != nil {
		internalError(w, "listing todos", err)
		return
	}

	slog.Debug("listed todos", "search", search, "count", len(resp.Todos))
	writeJSON(w, http.StatusOK, resp)
}

// HandleCreate handles POST /api/todos requests.
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.service.CreateTodo(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrTaskRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, "creating todo", err)
		return
	}

	slog.Info("todo created", "id", todo.ID)
	writeJSON(w, http.StatusCreated, todo)
}

// HandleUpdate handles PUT /api/todos/{id} requests.
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrTodoNotFound.Error()))
		return
	}

	var req model.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.service.UpdateTodo(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdateFields), errors.Is(err, service.ErrTaskRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrTodoNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			internalError(w, "updating todo", err)
		}
		return
	}

	slog.Info("todo updated", "id", id)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Todo updated successfully"})
}

// HandleDelete handles DELETE /api/todos/{id} requests.
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrTodoNotFound.Error()))
		return
	}

	err := h.service.DeleteTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, "deleting todo", err)
		return
	}

	slog.Info("todo deleted", "id", id)
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Todo deleted successfully"})
}

// todoID parses the {id} URL parameter. Anything that is not a positive
// integer cannot name a row.
func todoID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
