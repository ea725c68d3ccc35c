package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	attendancePostgres "github.com/Jaychaware/hrms-lite/internal/attendance/postgres"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	employeePostgres "github.com/Jaychaware/hrms-lite/internal/employee/postgres"
	"github.com/Jaychaware/hrms-lite/internal/report"
	reportPostgres "github.com/Jaychaware/hrms-lite/internal/report/postgres"
	"github.com/Jaychaware/hrms-lite/internal/transport"
	"github.com/Jaychaware/hrms-lite/internal/transport/middleware"
	"github.com/Jaychaware/hrms-lite/internal/transport/rest"
	"github.com/Jaychaware/hrms-lite/internal/transport/swagger"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Bus    *events.EventBus
	Router *chi.Mux
	Logger *slog.Logger
}

type services struct {
	Employees  *employee.Service
	Attendance *attendance.Service
	Reports    *report.Service
}

func startHTTPServer() error {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server",
		"address", addr,
		"database", deps.Config.Database.Driver,
		"validate_requests", deps.Config.Server.ValidateRequests)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	var runErr error
	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := internal.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	deps.Bus.Wait()
	if err := database.Close(deps.DB); err != nil {
		deps.Logger.Error("Database close error", "error", err)
	}

	deps.Logger.Info("Server stopped")
	return runErr
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.Configure(os.Stdout, cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	db, err := openDatabase(cfg, lg)
	if err != nil {
		return nil, err
	}

	bus := events.NewEventBus(lg)
	svc, err := buildServices(db, cfg.Database, bus, lg)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	opts := rest.Options{
		AllowedOrigins: cfg.Server.Origins(),
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if cfg.Server.ValidateRequests {
		doc, err := swagger.Load(ctx)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
		opts.Validator, err = middleware.ValidateRequests(doc, lg)
		if err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to build request validator: %w", err)
		}
	}

	base := transport.NewBaseHandler(lg)
	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, sqlDB, rest.Handlers{
		Employees:  employee.NewHandler(base, svc.Employees),
		Attendance: attendance.NewHandler(base, svc.Attendance),
		Reports:    report.NewHandler(base, svc.Reports),
	}, opts, lg)

	return &Dependencies{
		Config: cfg,
		DB:     db,
		Bus:    bus,
		Router: router,
		Logger: lg,
	}, nil
}

func openDatabase(cfg *internal.Config, lg *slog.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg.Database, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, nil
}

// buildServices wires the domain services and their event subscriptions.
func buildServices(db *gorm.DB, dbCfg internal.DatabaseConfig, bus *events.EventBus, lg *slog.Logger) (*services, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(db), bus, lg)
	attendanceService := attendance.NewService(attendancePostgres.NewAttendanceRepository(db), employeeService, bus, lg)
	reportService := report.NewService(reportPostgres.NewReportRepository(sqlx.NewDb(sqlDB, dbCfg.SQLDriverName())), lg)

	attendanceService.RegisterEventHandlers(bus)
	bus.Subscribe(events.EventTypeEmployeeCreated, events.LogHandler(lg))
	bus.Subscribe(events.EventTypeAttendanceMarked, events.LogHandler(lg))

	return &services{
		Employees:  employeeService,
		Attendance: attendanceService,
		Reports:    reportService,
	}, nil
}
