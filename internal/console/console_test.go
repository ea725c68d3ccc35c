package console_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"

	"github.com/Jaychaware/hrms-lite/internal/apiclient"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	attendancePostgres "github.com/Jaychaware/hrms-lite/internal/attendance/postgres"
	"github.com/Jaychaware/hrms-lite/internal/console"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	employeePostgres "github.com/Jaychaware/hrms-lite/internal/employee/postgres"
	"github.com/Jaychaware/hrms-lite/internal/report"
	reportPostgres "github.com/Jaychaware/hrms-lite/internal/report/postgres"
	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/Jaychaware/hrms-lite/internal/transport/rest"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var _ = Describe("Console against a live server", func() {
	var (
		db     *gorm.DB
		bus    *events.EventBus
		server *httptest.Server
		out    *bytes.Buffer
		in     *strings.Reader
		c      *console.Console
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		slogger := logger.Discard()

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(database.AutoMigrate(db)).To(Succeed())

		bus = events.NewEventBus(slogger)
		base := transport.NewBaseHandler(slogger)
		employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), bus, slogger)
		attendanceService := attendance.NewService(attendancePostgres.NewAttendanceRepository(db), employeeService, bus, slogger)
		attendanceService.RegisterEventHandlers(bus)
		reportService := report.NewService(reportPostgres.NewReportRepository(sqlx.NewDb(sqlDB, "sqlite3")), slogger)

		router := chi.NewRouter()
		rest.RegisterAllRoutes(router, sqlDB, rest.Handlers{
			Employees:  employee.NewHandler(base, employeeService),
			Attendance: attendance.NewHandler(base, attendanceService),
			Reports:    report.NewHandler(base, reportService),
		}, rest.Options{}, slogger)
		server = httptest.NewServer(router)

		out = &bytes.Buffer{}
		in = strings.NewReader("")
		client := apiclient.NewClient(apiclient.Config{BaseURL: server.URL}, slogger)
		c = console.New(client, in, out)
	})

	AfterEach(func() {
		server.Close()
		bus.Wait()
		Expect(database.Close(db)).To(Succeed())
	})

	addJane := func() {
		Expect(c.AddEmployee(ctx, console.EmployeeForm{
			EmployeeID: "EMP001", FullName: "Jane Roe", Email: "jane@example.com", Department: "HR",
		})).To(Succeed())
	}

	It("shows empty states", func() {
		Expect(c.ListEmployees(ctx)).To(Succeed())
		Expect(c.ListAttendance(ctx, "", attendance.FilterQuery{})).To(Succeed())
		Expect(out.String()).To(Equal("No employees found\nNo records found\n"))
	})

	It("adds an employee and refreshes the list", func() {
		addJane()
		Expect(out.String()).To(ContainSubstring("Employee added!"))
		Expect(out.String()).To(ContainSubstring("jane@example.com"))
	})

	It("stops invalid forms before calling the server", func() {
		err := c.AddEmployee(ctx, console.EmployeeForm{})
		Expect(console.IsReported(err)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("Employee ID required"))

		Expect(c.ListEmployees(ctx)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("No employees found"))
	})

	It("shows server conflicts as error banners", func() {
		addJane()
		err := c.AddEmployee(ctx, console.EmployeeForm{
			EmployeeID: "EMP001", FullName: "Other", Email: "other@example.com", Department: "HR",
		})
		Expect(console.IsReported(err)).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("Employee ID already exists"))
	})

	It("marks attendance and rejects a second mark for the day", func() {
		addJane()
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-05"})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Marked!"))
		Expect(out.String()).To(MatchRegexp(`EMP001\s+2026-01-05\s+Present`))

		err := c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-05", Status: "Absent"})
		Expect(err).To(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Already marked for this date"))

		err = c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001"})
		Expect(err).To(MatchError("All fields required"))
	})

	It("filters attendance by employee on the client", func() {
		addJane()
		Expect(c.AddEmployee(ctx, console.EmployeeForm{
			EmployeeID: "EMP002", FullName: "Joe Doe", Email: "joe@example.com", Department: "Ops",
		})).To(Succeed())
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-05"})).To(Succeed())
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP002", Date: "2026-01-05", Status: "Absent"})).To(Succeed())

		out.Reset()
		Expect(c.ListAttendance(ctx, "EMP002", attendance.FilterQuery{})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("EMP002"))
		Expect(out.String()).NotTo(ContainSubstring("EMP001"))

		out.Reset()
		Expect(c.ListAttendance(ctx, "EMP009", attendance.FilterQuery{})).To(Succeed())
		Expect(out.String()).To(Equal("No records found\n"))
	})

	It("renders dashboard and summary from a snapshot", func() {
		addJane()
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-05"})).To(Succeed())
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-06"})).To(Succeed())
		Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-07", Status: "Absent"})).To(Succeed())

		out.Reset()
		Expect(c.Dashboard(ctx)).To(Succeed())
		Expect(out.String()).To(MatchRegexp(`Present Rate\s+66\.7%`))

		out.Reset()
		Expect(c.Summary(ctx)).To(Succeed())
		Expect(out.String()).To(MatchRegexp(`EMP001\s+Jane Roe\s+2\s+1\s+3\s+66\.7%`))
	})

	It("exports a workbook", func() {
		addJane()
		var buf bytes.Buffer
		Expect(c.Export(ctx, &buf)).To(Succeed())

		f, err := excelize.OpenReader(&buf)
		Expect(err).NotTo(HaveOccurred())
		rows, err := f.GetRows(report.SummarySheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
	})

	Describe("DeleteEmployee", func() {
		BeforeEach(func() {
			addJane()
			Expect(c.MarkAttendance(ctx, console.AttendanceForm{EmployeeID: "EMP001", Date: "2026-01-05"})).To(Succeed())
			out.Reset()
		})

		It("does nothing when the prompt is declined", func() {
			in.Reset("n\n")
			Expect(c.DeleteEmployee(ctx, "EMP001", false)).To(Succeed())
			Expect(out.String()).To(Equal("Delete this employee? [y/N] "))
		})

		It("deletes after confirmation and purges attendance", func() {
			in.Reset("y\n")
			Expect(c.DeleteEmployee(ctx, "EMP001", false)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Employee deleted!"))
			Expect(out.String()).To(ContainSubstring("No employees found"))

			out.Reset()
			Expect(c.ListAttendance(ctx, "", attendance.FilterQuery{})).To(Succeed())
			Expect(out.String()).To(Equal("No records found\n"))
		})

		It("skips the prompt with assumeYes and reports unknown ids", func() {
			err := c.DeleteEmployee(ctx, "NOPE", true)
			Expect(console.IsReported(err)).To(BeTrue())
			Expect(out.String()).To(ContainSubstring("Employee not found"))
		})
	})

	It("reports an unreachable server with the fallback", func() {
		server.Close()
		err := c.ListEmployees(ctx)
		Expect(err).To(HaveOccurred())
		Expect(out.String()).To(ContainSubstring(apiclient.MsgLoadEmployees))
	})
})
