// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"spendtrack/internal/api/handler"
	"spendtrack/internal/api/middleware"
)

// NewRouter sets up and returns a new HTTP router. Registration and login
// are public; every other /api route runs behind token authentication and
// only ever operates on the caller's own rows.
func NewRouter(
	authHandler *handler.AuthHandler,
	expenseHandler *handler.ExpenseHandler,
	profileHandler *handler.ProfileHandler,
	authenticator middleware.Authenticator,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected group: requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(middleware.TokenAuth(authenticator, logger))

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", expenseHandler.List)
				r.Post("/", expenseHandler.Create)
				r.Route("/{expenseID}", func(r chi.Router) {
					r.Get("/", expenseHandler.Get)
					r.Put("/", expenseHandler.Update)
					r.Patch("/", expenseHandler.Update)
					r.Delete("/", expenseHandler.Delete)
				})
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
				r.Patch("/", profileHandler.Update)
			})
		})
	})

	return r
}
