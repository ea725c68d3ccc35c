package report_test

import (
	"context"
	"encoding/json"
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
	"github.com/Jaychaware/hrms-lite/internal/report"
	reportPostgres "github.com/Jaychaware/hrms-lite/internal/report/postgres"
	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Report Handler Integration", func() {
	var (
		db                *gorm.DB
		bus               *events.EventBus
		router            *chi.Mux
		employeeService   *employee.Service
		attendanceService *attendance.Service
		ctx               context.Context
	)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	addEmployee := func(id, name string) {
		_, err := employeeService.Create(ctx, employee.CreateEmployeeDTO{
			EmployeeID: id, FullName: name, Email: id + "@example.com", Department: "Ops",
		})
		Expect(err).NotTo(HaveOccurred())
	}

	mark := func(id, date, status string) {
		_, err := attendanceService.Mark(ctx, attendance.MarkAttendanceDTO{EmployeeID: id, Date: date, Status: status})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
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
		employeeService = employee.NewService(employeePostgres.NewEmployeeRepository(db), bus, slogger)
		attendanceService = attendance.NewService(attendancePostgres.NewAttendanceRepository(db), employeeService, bus, slogger)

		reportService := report.NewService(reportPostgres.NewReportRepository(sqlx.NewDb(sqlDB, "sqlite3")), slogger)
		router = chi.NewRouter()
		router.Route("/reports", report.NewHandler(&transport.BaseHandler{Logger: slogger}, reportService).Routes)
	})

	AfterEach(func() {
		bus.Wait()
		Expect(database.Close(db)).To(Succeed())
	})

	It("reports zeros for an empty database", func() {
		w := get("/reports/dashboard")
		Expect(w.Code).To(Equal(http.StatusOK))

		var d report.Dashboard
		Expect(json.NewDecoder(w.Body).Decode(&d)).To(Succeed())
		Expect(d).To(Equal(report.Dashboard{}))

		w = get("/reports/summary")
		Expect(w.Body.String()).To(MatchJSON("[]"))
	})

	It("computes the same numbers as the client-side aggregation", func() {
		addEmployee("E1", "Al")
		addEmployee("E2", "Bea")
		addEmployee("E3", "Cy")
		mark("E1", "2026-01-05", "Present")
		mark("E1", "2026-01-06", "Present")
		mark("E1", "2026-01-07", "Absent")
		mark("E2", "2026-01-05", "Absent")

		employees, err := employeeService.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		records, err := attendanceService.List(ctx, attendance.Filter{})
		Expect(err).NotTo(HaveOccurred())

		var d report.Dashboard
		Expect(json.NewDecoder(get("/reports/dashboard").Body).Decode(&d)).To(Succeed())
		Expect(d).To(Equal(report.ComputeDashboard(employees, records)))
		Expect(d.PresentRate).To(Equal(50.0))

		var rows []report.EmployeeSummary
		Expect(json.NewDecoder(get("/reports/summary").Body).Decode(&rows)).To(Succeed())
		Expect(rows).To(Equal(report.ComputeSummary(employees, records)))
		Expect(rows[0].Rate).To(Equal(66.7))
		Expect(rows[2].Total).To(BeZero())
	})

	It("serves the summary as a workbook", func() {
		addEmployee("E1", "Al")
		mark("E1", "2026-01-05", "Present")

		w := get("/reports/summary.xlsx")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal(report.XLSXContentType))
		Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring("attendance-summary.xlsx"))
		Expect(w.Body.Len()).To(BeNumerically(">", 0))
	})
})
