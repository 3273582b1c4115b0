package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const healthMessage = "Project & Task Management API is running..."

func (s *Server) routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.receive)
	r.Use(s.recoverer)

	if len(allowedOrigins) != 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/", s.instrument("health", s.health))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.instrument("register", s.register))
		r.Post("/auth/login", s.instrument("login", s.login))
		r.Post("/auth/logout", s.instrument("logout", s.logout))

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/auth/me", s.instrument("me", s.me))

			r.Get("/users", s.instrument("list-users", s.listUsers))
			r.Get("/users/{id}", s.instrument("get-user", s.getUser))
			r.Put("/users/{id}/role", s.instrument("update-user-role", s.updateUserRole))

			r.Get("/projects", s.instrument("list-projects", s.listProjects))
			r.Post("/projects", s.instrument("create-project", s.createProject))
			r.Get("/projects/{id}", s.instrument("get-project", s.getProject))
			r.Put("/projects/{id}", s.instrument("update-project", s.updateProject))
			r.Delete("/projects/{id}", s.instrument("delete-project", s.deleteProject))

			r.Get("/tasks", s.instrument("list-tasks", s.listTasks))
			r.Post("/tasks", s.instrument("create-task", s.createTask))
			r.Get("/tasks/{id}", s.instrument("get-task", s.getTask))
			r.Put("/tasks/{id}", s.instrument("update-task", s.updateTask))
			r.Delete("/tasks/{id}", s.instrument("delete-task", s.deleteTask))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.logger, http.StatusNotFound, errorResponse{Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.logger, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(healthMessage))
}
