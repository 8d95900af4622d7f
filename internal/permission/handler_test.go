package permission_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	permissionDatamodel "github.com/kitchenops/admin-api/internal/core/datamodel/permission"
	"github.com/kitchenops/admin-api/internal/permission"
	permissionRepo "github.com/kitchenops/admin-api/internal/permission/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// The suite is bootstrapped by TestPermission in service_test.go.
var _ = Describe("PermissionHandler", func() {
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

		err = db.AutoMigrate(&permissionDatamodel.Permission{})
		Expect(err).ToNot(HaveOccurred())

		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := permission.NewService(permissionRepo.NewPermissionRepository(db), log)
		handler := permission.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/permissions", handler.List)
		router.Post("/permissions", handler.Create)
		router.Put("/permissions/{id}", handler.Update)
		router.Delete("/permissions/{id}", handler.Delete)
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

	It("should create, list, update and delete a permission", func() {
		rec := do("POST", "/permissions", `{"title": "dashboard"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var created permission.Permission
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))

		rec = do("GET", "/permissions", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var list permission.ListResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Data).To(HaveLen(1))
		Expect(list.Data[0].Title).To(Equal("dashboard"))

		rec = do("PUT", fmt.Sprintf("/permissions/%d", created.ID), `{"title": "reporting"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = do("DELETE", fmt.Sprintf("/permissions/%d", created.ID), "")
		Expect(rec.Code).To(Equal(http.StatusNoContent))

		rec = do("GET", "/permissions", "")
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Data).To(BeEmpty())
	})

	It("should return 409 for a duplicate title", func() {
		Expect(do("POST", "/permissions", `{"title": "access"}`).Code).
			To(Equal(http.StatusCreated))

		rec := do("POST", "/permissions", `{"title": "access"}`)
		Expect(rec.Code).To(Equal(http.StatusConflict))

		var resp map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["message"]).To(Equal("Title is already in use"))
	})

	It("should return 400 for a blank title", func() {
		Expect(do("POST", "/permissions", `{"title": "  "}`).Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should return 400 for a non-numeric id", func() {
		Expect(do("PUT", "/permissions/abc", `{"title": "x"}`).Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should return 404 when updating a missing permission", func() {
		Expect(do("PUT", "/permissions/999", `{"title": "x"}`).Code).
			To(Equal(http.StatusNotFound))
	})

	It("should return 404 when deleting a missing permission", func() {
		Expect(do("DELETE", "/permissions/999", "").Code).
			To(Equal(http.StatusNotFound))
	})
})
