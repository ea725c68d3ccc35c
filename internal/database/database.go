package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Jaychaware/hrms-lite/internal"
	attendanceDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/employee"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects gorm to the configured dialect and applies the pool limits.
func Open(cfg internal.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case internal.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case internal.DriverSQLite:
		dialector = sqlite.Open(DSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// DSN is the connection string handed to the driver for cfg.
func DSN(cfg internal.DatabaseConfig) string {
	if cfg.Driver == internal.DriverSQLite {
		return sqliteDSN(cfg.GetDSN())
	}
	return cfg.GetDSN()
}

// sqliteDSN enables foreign keys, which sqlite leaves off per connection.
func sqliteDSN(source string) string {
	if strings.Contains(source, "_foreign_keys") || strings.Contains(source, "_fk") {
		return source
	}
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + "_foreign_keys=on"
}

// AutoMigrate creates the schema from the datamodels. Production databases
// use the goose migrations in db/migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsUniqueViolation reports whether err came from a unique index.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger != nil && logger.Enabled(context.Background(), slog.LevelDebug) {
		level = gormlogger.Info
	}
	return gormlogger.New(
		slogWriter{logger: logger},
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// slogWriter adapts gorm's printf logger to slog.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	if w.logger == nil {
		return
	}
	w.logger.Debug("gorm", "message", strings.TrimSpace(fmt.Sprintf(format, args...)))
}
