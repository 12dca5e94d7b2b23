package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Store         StoreConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port           int
	MetricsEnabled bool
}

// StoreConfig selects the document store. URL and Name are connection
// secrets and are never logged or reported, only their presence.
type StoreConfig struct {
	URL       string
	Name      string
	Disabled  bool
	TimeoutMS int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ObservabilityConfig struct {
	Enabled          bool
	OTLPEndpoint     string
	OTLPTraceHeaders map[string]string
	ServiceName      string
	ServiceVer       string
	SamplingRatio    float64
}

// StorePresence reports whether the store settings are set.
type StorePresence struct {
	DatabaseURL  bool
	DatabaseName bool
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("port", 8000)
	v.SetDefault("database_url", "")
	v.SetDefault("database_name", "")
	v.SetDefault("intake_store_disabled", false)
	v.SetDefault("intake_store_timeout_ms", 5000)
	v.SetDefault("intake_metrics_enabled", true)
	v.SetDefault("intake_log_level", "info")
	v.SetDefault("intake_log_format", "text")
	v.SetDefault("intake_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_service_name", "freedaiy-intake")
	v.SetDefault("intake_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("intake_otel_sampling_ratio", 1.0)

	env := resolveEnvironment(v)
	port := v.GetInt("port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT: %d", port)
	}

	samplingRatio := v.GetFloat64("intake_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	timeoutMS := v.GetInt("intake_store_timeout_ms")
	if timeoutMS < 100 {
		timeoutMS = 100
	}
	if timeoutMS > 60000 {
		timeoutMS = 60000
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "freedaiy-intake"
	}

	serviceVersion := strings.TrimSpace(v.GetString("intake_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	logFormat := strings.ToLower(strings.TrimSpace(v.GetString("intake_log_format")))
	if logFormat != "json" {
		logFormat = "text"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otelEnabled := v.GetBool("intake_otel_enabled") || otlpEndpoint != ""

	return Config{
		Environment: env,
		Server: ServerConfig{
			Port:           port,
			MetricsEnabled: v.GetBool("intake_metrics_enabled"),
		},
		Store: StoreConfig{
			URL:       strings.TrimSpace(v.GetString("database_url")),
			Name:      strings.TrimSpace(v.GetString("database_name")),
			Disabled:  v.GetBool("intake_store_disabled"),
			TimeoutMS: timeoutMS,
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("intake_log_level"))),
			Format: logFormat,
		},
		Observability: ObservabilityConfig{
			Enabled:          otelEnabled,
			OTLPEndpoint:     otlpEndpoint,
			OTLPTraceHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			ServiceName:      serviceName,
			ServiceVer:       serviceVersion,
			SamplingRatio:    samplingRatio,
		},
	}, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pair := strings.SplitN(part, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.TrimSpace(pair[0])
		value := strings.TrimSpace(pair[1])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// StorePresence reports which store settings are present without exposing
// their values.
func (c Config) StorePresence() StorePresence {
	return StorePresence{
		DatabaseURL:  c.Store.URL != "",
		DatabaseName: c.Store.Name != "",
	}
}

// StoreTimeout is the per-operation store timeout.
func (c StoreConfig) StoreTimeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
