package database

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// DSN builds the driver connection string for config. Both dialects get the
// connect timeout and an encrypted transport.
func DSN(config Config) (string, error) {
	switch config.Type {
	case TypePostgres:
		return postgresDSN(config), nil
	case TypeMySQL:
		return mysqlDSN(config), nil
	default:
		return "", fmt.Errorf("unsupported database type: %s (supported types: %s, %s)",
			config.Type, TypePostgres, TypeMySQL)
	}
}

func postgresDSN(config Config) string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	pairs := []struct{ key, value string }{
		{"host", config.Host},
		{"port", strconv.Itoa(config.Port)},
		{"user", config.User},
		{"password", config.Password},
		{"dbname", config.Database},
		{"sslmode", sslMode},
		{"connect_timeout", strconv.Itoa(int(config.connectTimeout() / time.Second))},
		{"TimeZone", "UTC"},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+quoteValue(p.value))
	}
	return strings.Join(parts, " ")
}

// quoteValue quotes a keyword/value DSN value when libpq would otherwise misread it
func quoteValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

func mysqlDSN(config Config) string {
	cfg := mysqldriver.NewConfig()
	cfg.User = config.User
	cfg.Passwd = config.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	cfg.DBName = config.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Timeout = config.connectTimeout()
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	// "require" encrypts without verifying the server certificate
	switch config.SSLMode {
	case "verify-ca", "verify-full":
		cfg.TLSConfig = "true"
	default:
		cfg.TLSConfig = "skip-verify"
	}

	return cfg.FormatDSN()
}
