package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fgexport/database"
)

var allVars = []string{
	EnvDBType, EnvDBHost, EnvDBPort, EnvDBName, EnvDBUser, EnvDBPassword,
	EnvDBSSLMode, EnvExportDir, EnvLogLevel, EnvEnv,
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDBHost, "db.example.com")
	t.Setenv(EnvDBName, "itc_warehouse")
	t.Setenv(EnvDBUser, "itcadmin")
	t.Setenv(EnvDBPassword, "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, database.Config{
		Type:     database.TypePostgres,
		Host:     "db.example.com",
		Port:     DefaultPostgresPort,
		User:     "itcadmin",
		Password: "secret",
		Database: "itc_warehouse",
		SSLMode:  DefaultSSLMode,
	}, cfg.Database)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Development)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDBPort, "6432")
	t.Setenv(EnvDBSSLMode, "verify-full")
	t.Setenv(EnvExportDir, "/tmp/exports")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvEnv, "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "verify-full", cfg.Database.SSLMode)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Development)
}

func TestLoadMySQLDefaultPort(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDBType, "MySQL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, database.TypeMySQL, cfg.Database.Type)
	assert.Equal(t, DefaultMySQLPort, cfg.Database.Port)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want error
	}{
		{"non-numeric port", EnvDBPort, "postgres", ErrInvalidPort},
		{"port out of range", EnvDBPort, "70000", ErrInvalidPort},
		{"unknown type", EnvDBType, "oracle", ErrUnsupportedType},
		{"ssl disabled", EnvDBSSLMode, "disable", ErrInsecureSSLMode},
		{"ssl prefer", EnvDBSSLMode, "prefer", ErrInsecureSSLMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			cfg, err := Load()
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDBUser, "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=file-host\nDB_PORT=5433\nDB_USER=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-host", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	// process environment wins over the file
	assert.Equal(t, "from-process", cfg.Database.User)
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
