// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	API       APIConfig       `mapstructure:"api"`
	Period    PeriodConfig    `mapstructure:"period"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Export    ExportConfig    `mapstructure:"export"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// APIConfig holds seller statistics API configuration.
type APIConfig struct {
	Key                string        `mapstructure:"key"`
	BaseURL            string        `mapstructure:"base_url"`
	AnalyticsBaseURL   string        `mapstructure:"analytics_base_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute"`
	Reports            []string      `mapstructure:"reports"`
}

// PeriodConfig holds the default reporting period.
type PeriodConfig struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// FromTime parses the period start date.
func (c *PeriodConfig) FromTime() (time.Time, error) {
	return time.Parse(dateLayout, c.From)
}

// ToTime parses the period end date.
func (c *PeriodConfig) ToTime() (time.Time, error) {
	return time.Parse(dateLayout, c.To)
}

// AnalyticsConfig holds profitability calculation settings.
type AnalyticsConfig struct {
	ClampNegativeCogs      bool    `mapstructure:"clamp_negative_cogs"`
	DivergenceThresholdPct float64 `mapstructure:"divergence_threshold_pct"`
}

// DivergenceThresholdDecimal returns the divergence threshold as decimal.Decimal.
func (c *AnalyticsConfig) DivergenceThresholdDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.DivergenceThresholdPct)
}

// ExportConfig holds report export settings.
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	TraceProvider  string `mapstructure:"trace_provider"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPHeaders    string `mapstructure:"otlp_headers"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
	HealthPort     int    `mapstructure:"health_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("WBA")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "WBA_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "WBA_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "WBA_LOG_LEVEL", "LOG_LEVEL")

	// API
	v.BindEnv("api.key", "WBA_API_KEY", "WB_API_KEY")
	v.BindEnv("api.base_url", "WBA_API_BASE_URL")
	v.BindEnv("api.analytics_base_url", "WBA_API_ANALYTICS_BASE_URL")
	v.BindEnv("api.rate_limit_per_minute", "WBA_API_RATE_LIMIT")
	v.BindEnv("api.reports", "WBA_API_REPORTS")

	// Period
	v.BindEnv("period.from", "WBA_PERIOD_FROM", "DATE_FROM")
	v.BindEnv("period.to", "WBA_PERIOD_TO", "DATE_TO")

	// Analytics
	v.BindEnv("analytics.clamp_negative_cogs", "WBA_CLAMP_NEGATIVE_COGS")
	v.BindEnv("analytics.divergence_threshold_pct", "WBA_DIVERGENCE_THRESHOLD_PCT")

	// Export
	v.BindEnv("export.dir", "WBA_EXPORT_DIR")
	v.BindEnv("export.format", "WBA_EXPORT_FORMAT")

	// Telemetry
	v.BindEnv("telemetry.enabled", "WBA_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "WBA_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.trace_provider", "WBA_OTEL_TRACE_PROVIDER")
	v.BindEnv("telemetry.otlp_endpoint", "WBA_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "seller-analytics")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// API defaults
	v.SetDefault("api.base_url", "https://statistics-api.wildberries.ru")
	v.SetDefault("api.analytics_base_url", "https://seller-analytics-api.wildberries.ru")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.rate_limit_per_minute", 60)
	v.SetDefault("api.reports", []string{"report_detail", "sales", "orders", "stocks", "incomes"})

	// Period defaults: the trailing 30 days
	v.SetDefault("period.from", time.Now().AddDate(0, 0, -30).Format(dateLayout))
	v.SetDefault("period.to", time.Now().Format(dateLayout))

	// Analytics defaults
	v.SetDefault("analytics.clamp_negative_cogs", false)
	v.SetDefault("analytics.divergence_threshold_pct", 5.0)

	// Export defaults
	v.SetDefault("export.dir", "reports")
	v.SetDefault("export.format", "json")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "seller-analytics")
	v.SetDefault("telemetry.trace_provider", "EMPTY_PROVIDER")
	v.SetDefault("telemetry.prometheus_port", 9090)
	v.SetDefault("telemetry.health_port", 8081)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.RateLimitPerMinute <= 0 {
		return fmt.Errorf("api.rate_limit_per_minute must be positive")
	}
	if _, err := c.Period.FromTime(); err != nil {
		return fmt.Errorf("invalid period.from: %s", c.Period.From)
	}
	if _, err := c.Period.ToTime(); err != nil {
		return fmt.Errorf("invalid period.to: %s", c.Period.To)
	}
	if c.Analytics.DivergenceThresholdPct < 0 {
		return fmt.Errorf("analytics.divergence_threshold_pct cannot be negative")
	}
	switch c.Export.Format {
	case "json", "csv", "both":
	default:
		return fmt.Errorf("invalid export.format: %s", c.Export.Format)
	}
	return nil
}
