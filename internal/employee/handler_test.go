package employee_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	apperrors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	employeePostgres "github.com/Jaychaware/hrms-lite/internal/employee/postgres"
	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(database.AutoMigrate(db)).To(Succeed())

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, events.NewEventBus(slogger), slogger)
		handler := employee.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Route("/employees", handler.Routes)
	})

	AfterEach(func() {
		Expect(database.Close(db)).To(Succeed())
	})

	It("creates an employee and returns 201", func() {
		w := do(http.MethodPost, "/employees", validDTO())
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var created employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.EmployeeID).To(Equal("EMP001"))
		Expect(created.CreatedAt).NotTo(BeZero())
	})

	It("lists employees as a JSON array", func() {
		w := do(http.MethodGet, "/employees", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(bytes.TrimSpace(w.Body.Bytes())).To(Equal([]byte("[]")))

		do(http.MethodPost, "/employees", validDTO())

		w = do(http.MethodGet, "/employees", nil)
		var employees []employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&employees)).To(Succeed())
		Expect(employees).To(HaveLen(1))
		Expect(employees[0].Department).To(Equal("Engineering"))
	})

	It("returns 409 with a detail message for duplicate ids", func() {
		Expect(do(http.MethodPost, "/employees", validDTO()).Code).To(Equal(http.StatusCreated))

		dto := validDTO()
		dto.Email = "someone@example.com"
		w := do(http.MethodPost, "/employees", dto)
		Expect(w.Code).To(Equal(http.StatusConflict))

		var raw map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &raw)).To(Succeed())
		Expect(raw["detail"]).To(Equal(apperrors.ErrEmployeeIDExists.Message))
		Expect(raw["error"]).To(HaveKeyWithValue("code", "EMPLOYEE_ID_EXISTS"))
	})

	It("returns 400 for a malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 with field details for an empty form", func() {
		w := do(http.MethodPost, "/employees", employee.CreateEmployeeDTO{})
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var raw map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &raw)).To(Succeed())
		Expect(raw["detail"]).To(HavePrefix("Employee ID required"))
	})

	It("gets and deletes an employee", func() {
		do(http.MethodPost, "/employees", validDTO())

		w := do(http.MethodGet, "/employees/EMP001", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		w = do(http.MethodDelete, "/employees/EMP001", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		var resp employee.DeleteEmployeeResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Message).To(Equal("Deleted"))

		Expect(do(http.MethodGet, "/employees/EMP001", nil).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodDelete, "/employees/EMP001", nil).Code).To(Equal(http.StatusNotFound))
	})
})
