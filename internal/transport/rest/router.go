package rest

import (
	"database/sql"
	"log/slog"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"
	"github.com/kitchenops/admin-api/internal/auth"
	"github.com/kitchenops/admin-api/internal/permission"
	"github.com/kitchenops/admin-api/internal/role"
	"github.com/kitchenops/admin-api/internal/transport/middleware"
	"github.com/kitchenops/admin-api/internal/user"
)

// RegisterAllRoutes wires the full API surface under /api. Everything beyond
// login and health sits behind the auth middleware; the management endpoints
// additionally require the "access" permission server-side — the SPA's menu
// gating alone is advisory.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	permissionHandler *permission.Handler,
	roleHandler *role.Handler,
	userHandler *user.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)
	rbac := auth.NewRBACAuthorization(logger)

	origins := []string{"*"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.Middleware)
				ar.Get("/me", authHandler.Me)
			})
		})

		// Management endpoints: authenticated + "access" permission.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.Middleware)
			pr.Use(rbac.RequireAccess())

			pr.Route("/permissions", func(er chi.Router) {
				er.Get("/", permissionHandler.List)
				er.Post("/", permissionHandler.Create)
				er.Put("/{id}", permissionHandler.Update)
				er.Delete("/{id}", permissionHandler.Delete)
			})

			pr.Route("/roles", func(er chi.Router) {
				er.Get("/", roleHandler.List)
				er.Post("/", roleHandler.Create)
				er.Put("/{id}", roleHandler.Update)
				er.Delete("/{id}", roleHandler.Delete)
			})

			pr.Route("/users", func(er chi.Router) {
				er.Get("/", userHandler.List)
				er.Post("/", userHandler.Create)
				er.Put("/{id}", userHandler.Update)
				er.Delete("/{id}", userHandler.Delete)
			})
		})
	})
}
