// Package config reads the exporter's settings from the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"fgexport/database"
)

// Environment variable names
const (
	EnvDBType     = "DB_TYPE"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBName     = "DB_NAME"
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBSSLMode  = "DB_SSLMODE"
	EnvExportDir  = "EXPORT_DIR"
	EnvLogLevel   = "LOG_LEVEL"
	EnvEnv        = "ENV"
)

const (
	DefaultPostgresPort = 5432
	DefaultMySQLPort    = 3306
	DefaultSSLMode      = "require"
)

var (
	ErrInvalidPort     = errors.New("invalid DB_PORT")
	ErrUnsupportedType = errors.New("unsupported DB_TYPE")
	ErrInsecureSSLMode = errors.New("DB_SSLMODE must enforce encryption")
)

// Config holds everything the exporter needs for one run
type Config struct {
	Database    database.Config
	ExportDir   string
	LogLevel    string
	Development bool
}

// LoadEnvFile populates the environment from a .env file. Variables that are
// already set win over the file.
func LoadEnvFile(paths ...string) error {
	return godotenv.Load(paths...)
}

// Load builds the Config from the current environment
func Load() (*Config, error) {
	dbType := strings.ToLower(getEnv(EnvDBType, database.TypePostgres))
	if dbType != database.TypePostgres && dbType != database.TypeMySQL {
		return nil, fmt.Errorf("%w: %q (supported types: %s, %s)",
			ErrUnsupportedType, dbType, database.TypePostgres, database.TypeMySQL)
	}

	port := DefaultPostgresPort
	if dbType == database.TypeMySQL {
		port = DefaultMySQLPort
	}
	if portStr := os.Getenv(EnvDBPort); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPort, portStr)
		}
		port = p
	}

	sslMode := strings.ToLower(getEnv(EnvDBSSLMode, DefaultSSLMode))
	switch sslMode {
	case "require", "verify-ca", "verify-full":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInsecureSSLMode, sslMode)
	}

	return &Config{
		Database: database.Config{
			Type:     dbType,
			Host:     os.Getenv(EnvDBHost),
			Port:     port,
			User:     os.Getenv(EnvDBUser),
			Password: os.Getenv(EnvDBPassword),
			Database: os.Getenv(EnvDBName),
			SSLMode:  sslMode,
		},
		ExportDir:   getEnv(EnvExportDir, "."),
		LogLevel:    getEnv(EnvLogLevel, "info"),
		Development: os.Getenv(EnvEnv) == "development",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
