package database

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fgexport/logger"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeMySQL    = "mysql"
)

// DefaultConnectTimeout bounds connection establishment. Nothing else in a run has a timeout.
const DefaultConnectTimeout = 30 * time.Second

// Config holds database configuration
type Config struct {
	Type           string // "postgres" or "mysql"
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string        // require, verify-ca or verify-full
	ConnectTimeout time.Duration // zero means DefaultConnectTimeout
}

func (c Config) connectTimeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}

// Dialector returns the gorm dialector for the configured database type
func Dialector(config Config) (gorm.Dialector, error) {
	dsn, err := DSN(config)
	if err != nil {
		return nil, err
	}

	switch config.Type {
	case TypePostgres:
		return postgres.Open(dsn), nil
	case TypeMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s (supported types: %s, %s)",
			config.Type, TypePostgres, TypeMySQL)
	}
}

// Connect establishes a single database connection using GORM
func Connect(config Config) (*gorm.DB, error) {
	dialector, err := Dialector(config)
	if err != nil {
		return nil, err
	}
	return Open(dialector, config.connectTimeout())
}

// Open opens the dialector, limits the pool to one connection and checks it
// with a ping bounded by timeout.
func Open(dialector gorm.Dialector, timeout time.Duration) (*gorm.DB, error) {
	gormLogger := gormlogger.New(
		stdlog.New(logger.WithComponent("gorm"), "", 0),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error accessing underlying SQL DB: %w", err)
	}

	// One run, one connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("error accessing SQL DB: %w", err)
		}
		return sqlDB.Close()
	}
	return nil
}
