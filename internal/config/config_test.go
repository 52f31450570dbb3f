package config

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GATEWAY_AUDIT__ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.AVI.IsLive)
	assert.Equal(t, "rest", cfg.AVI.Protocol)
	assert.Equal(t, 15*time.Second, cfg.AVI.Timeout)
	assert.Equal(t, "ENGLISH", cfg.AVI.OutputLanguage)
	assert.Equal(t, 720*time.Hour, cfg.Audit.Retention)
	assert.Equal(t, 500, cfg.Worker.BatchSize)
	assert.False(t, cfg.Audit.Enabled)
	assert.GreaterOrEqual(t, cfg.Server.AttemptBudget(), 60*time.Second)
	assert.Less(t, cfg.Server.RequestTimeout, cfg.Server.WriteTimeout)
}

func TestServerConfig_AttemptBudget(t *testing.T) {
	server := ServerConfig{RequestTimeout: 40 * time.Second}

	budget := server.AttemptBudget()

	assert.Equal(t, 18*time.Second, budget)
	assert.Less(t, 2*budget, server.RequestTimeout)
}

func TestLoadConfig_TimeoutComposition(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"attempt timeout beyond request budget", map[string]string{
			"GATEWAY_SERVER__REQUEST_TIMEOUT": "35s",
			"GATEWAY_SERVER__WRITE_TIMEOUT":   "40s",
			"GATEWAY_AVI__TIMEOUT":            "20s",
		}},
		{"request timeout not below write timeout", map[string]string{
			"GATEWAY_SERVER__REQUEST_TIMEOUT": "60s",
			"GATEWAY_SERVER__WRITE_TIMEOUT":   "60s",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GATEWAY_AUDIT__ENABLED", "false")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GATEWAY_AUDIT__ENABLED", "true")
	t.Setenv("GATEWAY_DATABASE__USER", "avi")
	t.Setenv("GATEWAY_DATABASE__PASSWORD", "secret")
	t.Setenv("GATEWAY_AVI__PROTOCOL", "soap")
	t.Setenv("GATEWAY_AVI__IS_LIVE", "false")
	t.Setenv("GATEWAY_AVI__TIMEOUT", "3s")
	t.Setenv("GATEWAY_AVI__LICENSE_KEY", "WS77-ABCD-EFGH")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "soap", cfg.AVI.Protocol)
	assert.False(t, cfg.AVI.IsLive)
	assert.Equal(t, 3*time.Second, cfg.AVI.Timeout)
	assert.Equal(t, "WS77-ABCD-EFGH", cfg.AVI.LicenseKey)
	assert.Equal(t, "avi", cfg.Database.User)
}

func TestLoadConfig_RejectsUnknownProtocol(t *testing.T) {
	t.Setenv("GATEWAY_AUDIT__ENABLED", "false")
	t.Setenv("GATEWAY_AVI__PROTOCOL", "grpc")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_AuditNeedsDatabaseCredentials(t *testing.T) {
	t.Setenv("GATEWAY_AUDIT__ENABLED", "true")
	t.Setenv("GATEWAY_DATABASE__USER", "")
	t.Setenv("GATEWAY_DATABASE__PASSWORD", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: 5433, User: "avi", Password: "secret", Name: "audit", SSLMode: "disable",
		MaxOpenConns: 8, MaxIdleConns: 1, ConnMaxLifetime: time.Hour, ConnMaxIdleTime: time.Minute,
	}

	pgxCfg, err := db.PgxConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "db", pgxCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pgxCfg.ConnConfig.Port)
	assert.Equal(t, "audit", pgxCfg.ConnConfig.Database)
	assert.Equal(t, int32(8), pgxCfg.MaxConns)
	assert.Equal(t, int32(1), pgxCfg.MinConns)
	assert.Equal(t, "avi-gateway", pgxCfg.ConnConfig.RuntimeParams["application_name"])
}

func TestDatabaseConfig_DSNEscapesPassword(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: 5432, User: "avi", Password: "p@ss/w:rd", Name: "audit", SSLMode: "disable",
		MaxOpenConns: 2, MaxIdleConns: 1, ConnMaxLifetime: time.Hour, ConnMaxIdleTime: time.Minute,
	}

	pgxCfg, err := db.PgxConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p@ss/w:rd", pgxCfg.ConnConfig.Password)
	assert.Equal(t, "audit", pgxCfg.ConnConfig.Database)
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := LoggerConfig{Level: "warn"}.newLogger(&buf, "prod")
	logger.Info("dropped")
	logger.Warn("kept", "protocol", "soap")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "soap", entry["protocol"])

	buf.Reset()
	LoggerConfig{Level: "debug"}.newLogger(&buf, "dev").Debug("text output")
	assert.Contains(t, buf.String(), "msg=\"text output\"")
}
