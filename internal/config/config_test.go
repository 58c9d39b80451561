package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "stranded", cfg.DBName)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, ConfigPathItems, cfg.ItemsPath)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "stranded",
	}

	assert.Equal(t, "postgres://u:p@db:5432/stranded?sslmode=disable", cfg.GetDBConnString())
}

func TestValidateEnv_Missing(t *testing.T) {
	for _, v := range RequiredEnvVars {
		t.Setenv(v, "")
	}

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	for _, v := range RequiredEnvVars {
		t.Setenv(v, "set")
	}
	t.Setenv("DB_PASSWORD", "postgres")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
}
