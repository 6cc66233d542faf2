package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          "8080",
			MaxBodySizeMB: 1,
		},
		Database: DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: "test.db",
		},
		Auth: AuthConfig{
			JWTSecret: "0123456789abcdef0123456789abcdef",
		},
		Environment: "development",
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "too-short"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 characters")
}

func TestValidate_PostgresRequiresURL(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"
	cfg.Database.URL = ""
	require.Error(t, cfg.Validate())

	cfg.Database.URL = "postgres://localhost:5432/codementor"
	require.NoError(t, cfg.Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "mysql"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestValidate_ObjectStorageEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.ObjectStorage.Enabled = true
	require.Error(t, cfg.Validate())

	cfg.ObjectStorage.Endpoint = "https://storage.example.com"
	cfg.ObjectStorage.Bucket = "avatars"
	require.NoError(t, cfg.Validate())
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
