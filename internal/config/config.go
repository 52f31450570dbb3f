package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	AVI      AVIConfig      `koanf:"avi"`
	Audit    AuditConfig    `koanf:"audit"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required,min=1"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	// RequestTimeout bounds a whole request, both lookup attempts included.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// AttemptBudget is the longest per-attempt timeout that still leaves a
// backup attempt its full timeout inside RequestTimeout. A tenth of the
// request is kept for validation, the audit write and the response.
func (s ServerConfig) AttemptBudget() time.Duration {
	return s.RequestTimeout * 9 / 20
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// AVIConfig holds the lookup defaults. LicenseKey is used when a request does
// not carry its own key. Endpoint addresses are fixed and not configurable.
type AVIConfig struct {
	LicenseKey     string        `koanf:"license_key"`
	IsLive         bool          `koanf:"is_live"`
	Protocol       string        `koanf:"protocol" validate:"required,oneof=rest soap"`
	Timeout        time.Duration `koanf:"timeout" validate:"required"`
	OutputLanguage string        `koanf:"output_language" validate:"required"`
}

type AuditConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Retention time.Duration `koanf:"retention" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

var defaults = map[string]interface{}{
	"primary.env":                 "dev",
	"server.port":                 "8080",
	"server.read_timeout":         "10s",
	"server.write_timeout":        "140s",
	"server.idle_timeout":         "60s",
	"server.request_timeout":      "135s",
	"database.host":               "localhost",
	"database.port":               5432,
	"database.name":               "avi_gateway",
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     10,
	"database.max_idle_conns":     2,
	"database.conn_max_lifetime":  "1h",
	"database.conn_max_idle_time": "10m",
	"avi.is_live":                 true,
	"avi.protocol":                "rest",
	"avi.timeout":                 "15s",
	"avi.output_language":         "ENGLISH",
	"audit.enabled":               true,
	"audit.retention":             "720h",
	"worker.interval":             "1h",
	"worker.batch_size":           500,
	"logger.level":                "info",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks every section. The database section is only required when
// the audit trail is enabled.
func (c *Config) Validate() error {
	validate := validator.New()

	sections := []interface{}{c.Primary, c.Server, c.AVI, c.Audit, c.Logger, c.Worker}
	if c.Audit.Enabled {
		sections = append(sections, c.Database)
	}

	for _, section := range sections {
		if err := validate.Struct(section); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	if c.Server.RequestTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("invalid configuration: server.request_timeout (%s) must be shorter than server.write_timeout (%s)",
			c.Server.RequestTimeout, c.Server.WriteTimeout)
	}
	if budget := c.Server.AttemptBudget(); c.AVI.Timeout > budget {
		return fmt.Errorf("invalid configuration: avi.timeout (%s) exceeds the per-attempt budget of server.request_timeout (%s)",
			c.AVI.Timeout, budget)
	}
	return nil
}
