package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configuración completa del servicio
type Config struct {
	Server  ServerConfig     `yaml:"server"`
	Backend BackendConfig    `yaml:"backend"`
	Metrics MetricsConfig    `yaml:"metrics"`
	Logging LoggingConfig    `yaml:"logging"`
	Order   OrderConfig      `yaml:"order"`
	Report  ReportConfig     `yaml:"report"`
	Gzip    GzipSharedConfig `yaml:"gzip"`
	Version string           `yaml:"version"`
}

// ServerConfig servidor HTTP
type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"` // debug, release, test
}

// BackendConfig backend REST de la tienda
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// MetricsConfig métricas Prometheus
type MetricsConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
}

// LoggingConfig logger
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// PaymentMethodConfig método de pago aceptado
type PaymentMethodConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// OrderConfig políticas del ciclo de vida de órdenes
type OrderConfig struct {
	CompleteSkippedSteps bool                  `yaml:"complete_skipped_steps"`
	PaymentMethods       []PaymentMethodConfig `yaml:"payment_methods"`
}

// ReportConfig reportes de administración
type ReportConfig struct {
	Timezone string `yaml:"timezone"`
}

// DefaultConfig devuelve la configuración por defecto
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "release",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Order: OrderConfig{
			PaymentMethods: []PaymentMethodConfig{
				{Code: "card", Name: "Credit Card"},
				{Code: "paypal", Name: "PayPal"},
				{Code: "upi", Name: "UPI"},
			},
		},
		Report: ReportConfig{
			Timezone: "UTC",
		},
		Gzip:    DefaultSharedConfig(),
		Version: "1.0.0",
	}
}

// Load lee la configuración desde un archivo YAML. Si path está vacío o el
// archivo no existe se usan los valores por defecto. Las variables de
// entorno se aplican siempre al final.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.GinMode = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("BACKEND_TIMEOUT"); v != "" {
		c.Backend.Timeout = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("REPORT_TIMEZONE"); v != "" {
		c.Report.Timezone = v
	}

	for key, dst := range map[string]*bool{
		"PROMETHEUS_ENABLED":           &c.Metrics.PrometheusEnabled,
		"ORDER_COMPLETE_SKIPPED_STEPS": &c.Order.CompleteSkippedSteps,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = b
	}
	return nil
}

// Validate verifica los valores que se parsean al arrancar
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if _, err := c.BackendTimeout(); err != nil {
		return err
	}
	if _, err := c.ReportLocation(); err != nil {
		return err
	}
	return nil
}

// BackendTimeout timeout de las llamadas al backend
func (c *Config) BackendTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Backend.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid backend.timeout %q: %w", c.Backend.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("backend.timeout must be positive, got %s", d)
	}
	return d, nil
}

// ReportLocation zona horaria que define el inicio del día en los reportes
func (c *Config) ReportLocation() (*time.Location, error) {
	if c.Report.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report.timezone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}
