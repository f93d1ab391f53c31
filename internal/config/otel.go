package config

// Otel configures trace export. An empty CollectorURL disables export; spans
// are still created so trace ids reach logs and outgoing headers.
type Otel struct {
	ServiceName   string  `env:"OTEL_SERVICE_NAME" envDefault:"catalog-e2e"`
	CollectorURL  string  `env:"OTEL_COLLECTOR_URL"`
	Insecure      bool    `env:"OTEL_INSECURE"`
	TraceIDRatio  float64 `env:"OTEL_TRACE_ID_RATIO" envDefault:"1"`
	CollectorAuth string  `env:"OTEL_COLLECTOR_AUTH"`
}
