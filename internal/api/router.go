package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/contacts-api/internal/api/middleware"
	"github.com/phrazzld/contacts-api/internal/platform/metrics"
)

// RouterDeps holds everything NewRouter wires into the route tree.
type RouterDeps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Resolver apiMiddleware.TokenResolver
	Auth     AuthService
	Users    UserService
	Contacts ContactService

	// BasePath prefixes every API route. Empty mounts them at the root.
	BasePath string
	// TokenHeader names the header carrying the session token.
	TokenHeader string
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.HTTPMiddleware)
	}

	authHandler := NewAuthHandler(deps.Auth)
	userHandler := NewUserHandler(deps.Users)
	contactHandler := NewContactHandler(deps.Contacts)
	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.Resolver, deps.TokenHeader)

	routes := func(r chi.Router) {
		// Public
		r.Post("/users", userHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.UpdateCurrent)
			r.Delete("/auth/logout", authHandler.Logout)

			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts/{contactID}", contactHandler.Get)
			r.Put("/contacts/{contactID}", contactHandler.Update)
			r.Delete("/contacts/{contactID}", contactHandler.Delete)
		})
	}

	if deps.BasePath == "" || deps.BasePath == "/" {
		r.Group(routes)
	} else {
		r.Route(deps.BasePath, routes)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.Logger.Error("failed to write health check response", "error", err)
		}
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	return r
}
