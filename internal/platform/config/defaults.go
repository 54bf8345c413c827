package config

const (
	defaultServerPort = 8080

	defaultBulkMaxWorkers = 4
	defaultBulkMaxItems   = 50

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":    DriverMemory,
		"storage.path":      "",
		"storage.seed_file": "",

		"story.bulk_max_workers": defaultBulkMaxWorkers,
		"story.bulk_max_items":   defaultBulkMaxItems,

		"notifier.enabled":                         false,
		"notifier.base_url":                        "http://localhost:8081",
		"notifier.timeout":                         "5s",
		"notifier.retry.max_attempts":              defaultRetryMaxAttempts,
		"notifier.retry.initial_interval":          "100ms",
		"notifier.retry.max_interval":              "2s",
		"notifier.retry.multiplier":                defaultRetryMultiplier,
		"notifier.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notifier.circuit_breaker.timeout":         "30s",
		"notifier.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notifier.rate_limit.requests_per_second":  0,
		"notifier.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "story-editor",
	}
}
