package config

import (
	"fmt"
	"strings"
	"time"

	"lumber-inventory/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		Path:     getEnv("DB_PATH", "inventory.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "lumber_inventory"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
	}
}

// GetDSN returns the connection string for the configured driver.
func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	return c.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// InitDB opens the database and creates any missing tables.
func InitDB(c DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(c.GetDSN())
	case DriverPostgres:
		dialector = postgres.Open(c.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel(c.LogLevel)),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if c.Driver == DriverSQLite {
		// sqlite serializes writers; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the inventory tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Location{}, &models.Tag{}, &models.Lumber{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
