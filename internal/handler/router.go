package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/tododb/tododb-go/internal/middleware"
)

// NewRouter wires the todo and auth routes. authLimit, when non-nil, wraps the
// /auth group.
func NewRouter(todos *TodoHandler, auth *AuthHandler, authLimit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "ok")
	})

	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", todos.HandleList)
		r.Post("/", todos.HandleCreate)
		r.Put("/{id}", todos.HandleUpdate)
		r.Delete("/{id}", todos.HandleDelete)
	})

	r.Route("/auth", func(r chi.Router) {
		if authLimit != nil {
			r.Use(authLimit)
		}
		r.Post("/register", auth.HandleRegister)
		r.Post("/login", auth.HandleLogin)
	})

	// A known path hit with the wrong method is still an unmatched route.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, "404 - Page Not Found")
}
