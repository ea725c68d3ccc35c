package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	apperrors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample employees and a week of attendance for development and testing purposes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		lg := logger.Configure(os.Stdout, cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

		db, err := openDatabase(cfg, lg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if clearData {
			lg.Info("clearing existing data")
			if err := db.Exec("DELETE FROM attendance").Error; err != nil {
				return fmt.Errorf("failed to clear attendance: %w", err)
			}
			if err := db.Exec("DELETE FROM employees").Error; err != nil {
				return fmt.Errorf("failed to clear employees: %w", err)
			}
		}

		bus := events.NewEventBus(lg)
		svc, err := buildServices(db, cfg.Database, bus, lg)
		if err != nil {
			return err
		}
		defer bus.Wait()

		ctx := context.Background()
		today := time.Now().UTC()
		created, marked := 0, 0

		for i, emp := range sampleEmployees {
			if _, err := svc.Employees.Create(ctx, emp); err != nil {
				if !isConflict(err) {
					return fmt.Errorf("failed to seed employee %s: %w", emp.EmployeeID, err)
				}
				lg.Info("employee already exists, skipping", "employee_id", emp.EmployeeID)
			} else {
				created++
			}

			for day := 6; day >= 0; day-- {
				status := attendance.StatusPresent
				if (day+i)%4 == 0 {
					status = attendance.StatusAbsent
				}
				dto := attendance.MarkAttendanceDTO{
					EmployeeID: emp.EmployeeID,
					Date:       today.AddDate(0, 0, -day).Format(validation.DateLayout),
					Status:     status,
				}
				if _, err := svc.Attendance.Mark(ctx, dto); err != nil {
					if !isConflict(err) {
						return fmt.Errorf("failed to seed attendance for %s on %s: %w", dto.EmployeeID, dto.Date, err)
					}
					continue
				}
				marked++
			}
		}

		lg.Info("seeding complete", "employees", created, "attendance", marked)
		fmt.Printf("Seeded %d employees and %d attendance records\n", created, marked)
		return nil
	},
}

var sampleEmployees = []employee.CreateEmployeeDTO{
	{EmployeeID: "EMP001", FullName: "Aisha Khan", Email: "aisha.khan@example.com", Department: "Engineering"},
	{EmployeeID: "EMP002", FullName: "Rahul Mehta", Email: "rahul.mehta@example.com", Department: "Engineering"},
	{EmployeeID: "EMP003", FullName: "Priya Nair", Email: "priya.nair@example.com", Department: "Human Resources"},
	{EmployeeID: "EMP004", FullName: "Daniel Brooks", Email: "daniel.brooks@example.com", Department: "Finance"},
	{EmployeeID: "EMP005", FullName: "Sofia Alvarez", Email: "sofia.alvarez@example.com", Department: "Operations"},
}

func isConflict(err error) bool {
	appErr, ok := apperrors.IsAppError(err)
	return ok && appErr.Type == apperrors.ErrorTypeConflict
}
