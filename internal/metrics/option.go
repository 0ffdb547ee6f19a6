package metrics

// ProviderKind selects a metrics export backend.
type ProviderKind string

const (
	PrometheusProvider ProviderKind = "prometheus"
	OtelCollector      ProviderKind = "otel"
)

// ProviderCfg configures a single metrics export backend.
type ProviderCfg struct {
	Provider ProviderKind
	Endpoint string
	Headers  map[string]string
	Insecure bool
}

// Config holds metric provider configuration.
type Config struct {
	ServiceName string
	Provider    []ProviderCfg
}

// OptionFn mutates the metric provider Config.
type OptionFn func(Config) Config

// WithServiceName sets the service name attached to exported metrics.
func WithServiceName(name string) OptionFn {
	return func(cfg Config) Config {
		cfg.ServiceName = name
		return cfg
	}
}

// WithProviderConfig appends an export backend.
func WithProviderConfig(provider ProviderCfg) OptionFn {
	return func(cfg Config) Config {
		cfg.Provider = append(cfg.Provider, provider)
		return cfg
	}
}

// PromServerConfig configures the Prometheus scrape endpoint.
type PromServerConfig struct {
	port string
}

// PromOptionFn mutates the PromServerConfig.
type PromOptionFn func(PromServerConfig) PromServerConfig

// WithPort sets the port the scrape endpoint listens on.
func WithPort(port string) PromOptionFn {
	return func(cfg PromServerConfig) PromServerConfig {
		cfg.port = port
		return cfg
	}
}
