package auth

import (
	"log/slog"
	"net/http"

	"github.com/kitchenops/admin-api/internal/transport"
)

// RBACAuthorization gates endpoints on permission codes server-side. The SPA's
// menu gating is advisory only; this is the enforcement that actually counts.
type RBACAuthorization struct {
	*transport.BaseHandler
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		BaseHandler: transport.NewBaseHandler(logger),
		logger:      logger,
	}
}

// RequirePermission rejects requests whose context user lacks the code.
func (ra *RBACAuthorization) RequirePermission(code string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if !user.Permissions.Can(code) {
				ra.logger.WarnContext(r.Context(), "access denied: insufficient permissions",
					"user_id", user.ID,
					"required_permission", code,
					"user_permissions", user.Permissions)
				ra.WriteError(w, http.StatusForbidden, "Forbidden: insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAccess guards the role/permission/user management endpoints.
func (ra *RBACAuthorization) RequireAccess() func(http.Handler) http.Handler {
	return ra.RequirePermission("access")
}
