package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	attendancePostgres "github.com/Jaychaware/hrms-lite/internal/attendance/postgres"
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

var _ = Describe("Attendance Handler Integration", func() {
	var (
		db     *gorm.DB
		bus    *events.EventBus
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

	detailOf := func(w *httptest.ResponseRecorder) interface{} {
		var raw map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &raw)).To(Succeed())
		return raw["detail"]
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(database.AutoMigrate(db)).To(Succeed())

		bus = events.NewEventBus(slogger)
		base := &transport.BaseHandler{Logger: slogger}

		employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), bus, slogger)
		attendanceService := attendance.NewService(attendancePostgres.NewAttendanceRepository(db), employeeService, bus, slogger)
		attendanceService.RegisterEventHandlers(bus)

		router = chi.NewRouter()
		router.Route("/employees", employee.NewHandler(base, employeeService).Routes)
		router.Route("/attendance", attendance.NewHandler(base, attendanceService).Routes)

		for _, id := range []string{"EMP001", "EMP002"} {
			_, err := employeeService.Create(context.Background(), employee.CreateEmployeeDTO{
				EmployeeID: id,
				FullName:   "Person " + id,
				Email:      id + "@example.com",
				Department: "Engineering",
			})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		bus.Wait()
		Expect(database.Close(db)).To(Succeed())
	})

	markBody := func(id, date, status string) attendance.MarkAttendanceDTO {
		return attendance.MarkAttendanceDTO{EmployeeID: id, Date: date, Status: status}
	}

	It("marks attendance and returns 201 with the date as a string", func() {
		w := do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present"))
		Expect(w.Code).To(Equal(http.StatusCreated))

		var raw map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &raw)).To(Succeed())
		Expect(raw).To(HaveKeyWithValue("date", "2026-01-05"))
		Expect(raw).To(HaveKeyWithValue("status", "Present"))
		Expect(raw).To(HaveKeyWithValue("employee_id", "EMP001"))
	})

	It("returns the documented status codes", func() {
		w := do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Late"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(detailOf(w)).To(Equal("Invalid status"))

		w = do(http.MethodPost, "/attendance", markBody("NOPE", "2026-01-05", "Present"))
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(detailOf(w)).To(Equal("Employee not found"))

		w = do(http.MethodPost, "/attendance", markBody("", "2026-01-05", "Present"))
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(detailOf(w)).To(Equal("Employee not found"))

		w = do(http.MethodPost, "/attendance", markBody("EMP001", "", "Present"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(detailOf(w)).To(Equal("Invalid date format"))

		w = do(http.MethodPost, "/attendance", markBody("EMP001", "05/01/2026", "Present"))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(detailOf(w)).To(Equal("Invalid date format"))

		Expect(do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present")).Code).To(Equal(http.StatusCreated))
		w = do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Absent"))
		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(detailOf(w)).To(Equal("Already marked for this date"))
	})

	It("lists and filters records", func() {
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present"))
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-06", "Absent"))
		do(http.MethodPost, "/attendance", markBody("EMP002", "2026-01-07", "Present"))

		var records []attendance.Record
		w := do(http.MethodGet, "/attendance", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
		Expect(records).To(HaveLen(3))
		Expect(records[0].Date).To(Equal("2026-01-07"))

		w = do(http.MethodGet, "/attendance?status=Present&from=2026-01-06", nil)
		records = nil
		Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
		Expect(records).To(HaveLen(1))
		Expect(records[0].EmployeeID).To(Equal("EMP002"))

		Expect(do(http.MethodGet, "/attendance?to=tomorrow", nil).Code).To(Equal(http.StatusBadRequest))
	})

	It("lists one employee's records", func() {
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present"))
		do(http.MethodPost, "/attendance", markBody("EMP002", "2026-01-05", "Absent"))

		var records []attendance.Record
		w := do(http.MethodGet, "/attendance/employee/EMP002", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Status).To(Equal("Absent"))

		Expect(do(http.MethodGet, "/attendance/employee/NOPE", nil).Code).To(Equal(http.StatusNotFound))
	})

	It("removes an employee's records when the employee is deleted", func() {
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present"))
		do(http.MethodPost, "/attendance", markBody("EMP002", "2026-01-05", "Present"))

		Expect(do(http.MethodDelete, "/employees/EMP001", nil).Code).To(Equal(http.StatusOK))

		var records []attendance.Record
		w := do(http.MethodGet, "/attendance", nil)
		Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
		Expect(records).To(HaveLen(1))
		Expect(records[0].EmployeeID).To(Equal("EMP002"))
	})

	It("restores the purged records when the delete is rolled back", func() {
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-05", "Present"))
		do(http.MethodPost, "/attendance", markBody("EMP001", "2026-01-06", "Absent"))
		bus.Subscribe(events.EventTypeEmployeeDeleted, func(ctx context.Context, e events.Event) error {
			return errors.New("audit log unavailable")
		})

		Expect(do(http.MethodDelete, "/employees/EMP001", nil).Code).To(Equal(http.StatusInternalServerError))

		var records []attendance.Record
		w := do(http.MethodGet, "/attendance/employee/EMP001", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(json.NewDecoder(w.Body).Decode(&records)).To(Succeed())
		Expect(records).To(HaveLen(2))
	})
})
