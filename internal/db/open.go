package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/terraincognita07/endotrack/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

type Config struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string
	// DSN is a file path for sqlite and a connection string for postgres.
	DSN string
}

// Open connects to the configured store, applies the embedded migrations for
// its dialect and seeds the professional catalog.
func Open(config Config) (*gorm.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(config.Driver))
	switch driver {
	case "", DriverSQLite:
		return OpenSQLite(config.DSN)
	case DriverPostgres, "postgresql":
		return OpenPostgres(config.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newGormLogger(), NowFunc: utcNow})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return prepare(database, DriverSQLite)
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("open postgres: empty DATABASE_URL")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: newGormLogger(), NowFunc: utcNow})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return prepare(database, DriverPostgres)
}

func prepare(database *gorm.DB, dialect string) (*gorm.DB, error) {
	if err := applyEmbeddedMigrations(database, dialect); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	if err := seedProfessionals(database); err != nil {
		return nil, fmt.Errorf("seed professionals: %w", err)
	}
	return database, nil
}

// utcNow keeps created_at and updated_at comparable with the UTC day
// boundaries used in range filters.
func utcNow() time.Time {
	return time.Now().UTC()
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func seedProfessionals(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Professional{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	professionals := models.DefaultProfessionals()
	return database.Create(&professionals).Error
}
