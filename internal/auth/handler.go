package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kitchenops/admin-api/internal/transport"
	"github.com/kitchenops/admin-api/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bundle, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("login rejected", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("login succeeded", "user_id", bundle.User.ID)
	h.WriteJSON(w, http.StatusOK, bundle)
}

// Me handles GET /auth/me, rebuilding the session for the bearer of a valid token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bundle, err := h.Service.CurrentSession(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	// no need to re-mint here, the caller already holds a valid token
	bundle.Token = ""
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":        bundle.User,
		"permissions": bundle.Permissions,
	})
}

// Middleware authenticates the bearer token and loads the user with resolved
// permissions into the request context.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "Missing authorization token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		bundle, err := h.Service.CurrentSession(claims.ID)
		if err != nil {
			h.Logger.Warn("session rebuild failed", "user_id", claims.ID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ContextUserKey, bundle.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
