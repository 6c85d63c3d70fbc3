package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quilljot/quilljot-be/internal/api/handlers"
	"github.com/quilljot/quilljot-be/internal/auth"
	"github.com/quilljot/quilljot-be/internal/services"
)

// NewRouter creates and configures a new Chi router. The user endpoint group
// is intentionally unauthenticated; the note endpoint group sits behind the
// token middleware.
func NewRouter(tokens *auth.TokenService, userService services.UserServiceProvider, noteService services.NoteServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	noteHandler := handlers.NewNoteHandler(noteService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Home Page"))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAll)
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())
			r.Get("/me", userHandler.GetMe)
		})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Use(tokens.Middleware())
		r.Get("/", noteHandler.GetAll)
		r.Post("/create", noteHandler.Create)
		r.Patch("/update/{id}", noteHandler.Update)
		r.Delete("/delete/{id}", noteHandler.Delete)
	})

	return r
}
