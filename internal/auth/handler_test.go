package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		mockRepo *mockRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		tokenGen := NewJWTTokenGenerator("test-secret-that-is-long-enough-to-sign", 48*time.Hour)
		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = NewHandler(NewService(mockRepo, tokenGen, log))
	})

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the token, user and permissions on success", func() {
			rec := login(`{"email": "a@x.com", "password": "secret"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var resp struct {
				Token string `json:"token"`
				User  struct {
					ID        int64   `json:"id"`
					Name      string  `json:"name"`
					Email     string  `json:"email"`
					RoleID    *int64  `json:"role_id"`
					RoleTitle *string `json:"role_title"`
				} `json:"user"`
				Permissions []string `json:"permissions"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(resp.User.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(*resp.User.RoleTitle).To(gomega.Equal("Administrator"))
			gomega.Expect(resp.Permissions).To(gomega.ConsistOf("dashboard", "access"))
		})

		ginkgo.It("should never leak sensitive user columns in the response body", func() {
			rec := login(`{"email": "a@x.com", "password": "secret"}`)

			body := rec.Body.String()
			gomega.Expect(body).ToNot(gomega.ContainSubstring("password"))
			gomega.Expect(body).ToNot(gomega.ContainSubstring("remember_token"))
			gomega.Expect(body).ToNot(gomega.ContainSubstring("deleted_at"))
		})

		ginkgo.It("should reject wrong credentials with 401 and no token", func() {
			rec := login(`{"email": "a@x.com", "password": "wrong"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))

			var resp map[string]interface{}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp["message"]).To(gomega.Equal("Invalid credentials"))
			gomega.Expect(resp).ToNot(gomega.HaveKey("token"))
		})

		ginkgo.It("should answer unknown email identically to a wrong password", func() {
			unknown := login(`{"email": "nobody@x.com", "password": "secret"}`)
			wrong := login(`{"email": "a@x.com", "password": "wrong"}`)

			gomega.Expect(unknown.Code).To(gomega.Equal(wrong.Code))
			gomega.Expect(unknown.Body.String()).To(gomega.Equal(wrong.Body.String()))
		})

		ginkgo.It("should return 400 when fields are missing", func() {
			rec := login(`{"email": "a@x.com"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 400 on a malformed body", func() {
			rec := login(`{not json`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should hide storage failures behind an opaque 500", func() {
			mockRepo.setError(os.ErrDeadlineExceeded)

			rec := login(`{"email": "a@x.com", "password": "secret"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusInternalServerError))

			var resp map[string]interface{}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp["message"]).To(gomega.Equal("Server error"))
		})
	})

	ginkgo.Describe("Middleware", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := UserFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				w.Header().Set("X-User-Email", user.Email)
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("should load the user into context for a valid token", func() {
			rec := login(`{"email": "a@x.com", "password": "secret"}`)
			var resp struct {
				Token string `json:"token"`
			}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())

			req := httptest.NewRequest("GET", "/api/users", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			out := httptest.NewRecorder()
			protected.ServeHTTP(out, req)

			gomega.Expect(out.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(out.Header().Get("X-User-Email")).To(gomega.Equal("a@x.com"))
		})

		ginkgo.It("should reject requests without a token", func() {
			req := httptest.NewRequest("GET", "/api/users", nil)
			out := httptest.NewRecorder()
			protected.ServeHTTP(out, req)

			gomega.Expect(out.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should reject a garbage token", func() {
			req := httptest.NewRequest("GET", "/api/users", nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			out := httptest.NewRecorder()
			protected.ServeHTTP(out, req)

			gomega.Expect(out.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RBAC", func() {
		route := func(user *User, code string) *httptest.ResponseRecorder {
			log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			rbac := NewRBACAuthorization(log)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest("GET", "/api/users", nil)
			if user != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextUserKey, user))
			}
			out := httptest.NewRecorder()
			rbac.RequirePermission(code)(next).ServeHTTP(out, req)
			return out
		}

		ginkgo.It("should allow a user holding the required code", func() {
			user := &User{ID: 1, Permissions: NewPermissionSet([]string{"access"})}
			gomega.Expect(route(user, "access").Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should forbid a user without the code using the JSON error shape", func() {
			user := &User{ID: 1, Permissions: NewPermissionSet([]string{"dashboard"})}
			rec := route(user, "access")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))

			var resp map[string]interface{}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp["message"]).To(gomega.Equal("Forbidden: insufficient permissions"))
		})

		ginkgo.It("should reject an unauthenticated request with the JSON error shape", func() {
			rec := route(nil, "access")

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))

			var resp map[string]interface{}
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp["message"]).To(gomega.Equal("Unauthorized"))
		})
	})
})
