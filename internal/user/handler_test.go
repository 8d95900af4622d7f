package user_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	roleDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/role"
	userDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/user"
	"github.com/kitchenops/admin-api/internal/user"
	userRepo "github.com/kitchenops/admin-api/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// The suite is bootstrapped by TestUser in service_test.go.
var _ = Describe("UserHandler", func() {
	var (
		db     *gorm.DB
		router chi.Router
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).ToNot(HaveOccurred())

		err = db.AutoMigrate(&roleDatamodel.Role{}, &userDatamodel.User{})
		Expect(err).ToNot(HaveOccurred())

		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := user.NewService(userRepo.NewUserRepository(db), bcrypt.MinCost, log)
		handler := user.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/users", handler.List)
		router.Post("/users", handler.Create)
		router.Put("/users/{id}", handler.Update)
		router.Delete("/users/{id}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("should create a user and never echo the password back", func() {
		rec := do("POST", "/users", `{"name": "Alice", "email": "a@x.com", "password": "secret"}`)

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(rec.Body.String()).ToNot(ContainSubstring("password"))
		Expect(rec.Body.String()).ToNot(ContainSubstring("secret"))
	})

	It("should list users inside a data envelope", func() {
		Expect(do("POST", "/users", `{"name": "Alice", "email": "a@x.com", "password": "s"}`).Code).
			To(Equal(http.StatusCreated))

		rec := do("GET", "/users", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var list user.ListResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Data).To(HaveLen(1))
		Expect(list.Data[0].Email).To(Equal("a@x.com"))
	})

	It("should honor limit and offset query parameters", func() {
		for _, name := range []string{"Alice", "Bob", "Carol"} {
			body := fmt.Sprintf(`{"name": %q, "email": %q, "password": "s"}`,
				name, strings.ToLower(name)+"@x.com")
			Expect(do("POST", "/users", body).Code).To(Equal(http.StatusCreated))
		}

		rec := do("GET", "/users?limit=1&offset=1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var list user.ListResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Data).To(HaveLen(1))
		Expect(list.Data[0].Name).To(Equal("Bob"))
	})

	It("should return 409 for a duplicate email", func() {
		Expect(do("POST", "/users", `{"name": "Alice", "email": "a@x.com", "password": "s"}`).Code).
			To(Equal(http.StatusCreated))

		rec := do("POST", "/users", `{"name": "Other", "email": "A@X.com", "password": "s"}`)
		Expect(rec.Code).To(Equal(http.StatusConflict))
	})

	It("should soft delete so the user vanishes from listings", func() {
		rec := do("POST", "/users", `{"name": "Alice", "email": "a@x.com", "password": "s"}`)
		var created user.User
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())

		Expect(do("DELETE", fmt.Sprintf("/users/%d", created.ID), "").Code).
			To(Equal(http.StatusNoContent))

		var list user.ListResponse
		rec = do("GET", "/users", "")
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Data).To(BeEmpty())
	})
})
